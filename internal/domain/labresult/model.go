package labresult

import (
	"io"
	"time"
)

type LabResult struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     int64     `gorm:"not null;index"`
	Filename   string    `gorm:"size:255;not null"`
	StorageKey string    `gorm:"size:512;not null"`
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

// Upload is an incoming document. Size is the declared length of Content.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}
