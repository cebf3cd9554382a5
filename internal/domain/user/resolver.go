package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Resolve maps a bearer token to the user it was issued for. It performs a
// single read and keeps no state between calls.
func (s *Service) Resolve(ctx context.Context, token string) (*User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	subject, err := s.tokens.Subject(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	found, err := s.repo.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return found, nil
}
