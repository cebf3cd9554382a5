package serving

import (
	"context"
	"errors"
	"fmt"

	"diet-profile-go/internal/domain/catalog"
)

type Service struct {
	repo    Repository
	catalog CatalogReader
}

func NewService(repo Repository, catalog CatalogReader) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Set stores the user's serving preference, replacing any previous one.
func (s *Service) Set(ctx context.Context, userID, servingID int64, familyCount *int) (*UserServing, error) {
	option, err := s.catalog.Get(ctx, catalog.KindServings, servingID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			return nil, ErrInvalidServing
		}
		return nil, err
	}

	count, err := DeriveFamilyCount(option.Name, familyCount)
	if err != nil {
		return nil, err
	}

	selection := UserServing{
		UserID:      userID,
		ServingID:   option.ID,
		FamilyCount: count,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return tx.Create(ctx, &selection)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return &selection, nil
}

// Get returns the user's serving preference with its display name applied.
func (s *Service) Get(ctx context.Context, userID int64) (*Selection, error) {
	selection, err := s.repo.GetSelection(ctx, userID)
	if err != nil {
		return nil, err
	}
	selection.Name = DisplayName(selection.Name, selection.FamilyCount)
	return selection, nil
}
