package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const TokenTypeBearer = "bearer"

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

type Service struct {
	repo   Repository
	hasher PasswordHasher
	tokens TokenCodec
}

func NewService(repo Repository, hasher PasswordHasher, tokens TokenCodec) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*User, error) {
	email := NormalizeEmail(input.Email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if input.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if len(input.Password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created := User{
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
		Password: hashed,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailTaken
		}
		return tx.Create(ctx, &created)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	found, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, found.Password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(found.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        *found,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// CompleteOnboarding marks the user as onboarded. Repeating the call is a no-op.
func (s *Service) CompleteOnboarding(ctx context.Context, id int64) error {
	found, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if found.OnboardingCompleted {
		return nil
	}
	return s.repo.SetOnboardingCompleted(ctx, id)
}
