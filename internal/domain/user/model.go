package user

import "time"

type User struct {
	ID                  int64     `gorm:"primaryKey"`
	FullName            string    `gorm:"size:100"`
	Email               string    `gorm:"size:100;not null;uniqueIndex"`
	Password            string    `gorm:"size:255;not null"`
	OnboardingCompleted bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
}

type SignUpInput struct {
	FullName string
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        User
}
