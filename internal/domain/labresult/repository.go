package labresult

import (
	"context"
	"io"
)

type Repository interface {
	Create(ctx context.Context, result *LabResult) error
	Latest(ctx context.Context, userID int64) (*LabResult, error)
}

// BlobStore persists uploaded documents under a key.
type BlobStore interface {
	Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}
