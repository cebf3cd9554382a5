package user

import (
	"context"
	"time"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetOnboardingCompleted(ctx context.Context, id int64) error
}

// PasswordHasher is the credential store used for signup and login.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenCodec issues access tokens for a subject and reads the subject back.
type TokenCodec interface {
	Issue(subject string) (string, time.Time, error)
	Subject(token string) (string, error)
}
