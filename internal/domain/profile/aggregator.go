package profile

import (
	"context"
	"errors"
	"fmt"

	"diet-profile-go/internal/domain/catalog"
	"diet-profile-go/internal/domain/labresult"
	"diet-profile-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

type PreferenceLister interface {
	ListForUser(ctx context.Context, userID int64) ([]catalog.Item, error)
}

type LabResultReader interface {
	Latest(ctx context.Context, userID int64) (*labresult.LabResult, error)
}

type Aggregator struct {
	users     UserReader
	dietary   PreferenceLister
	allergies PreferenceLister
	labs      LabResultReader
}

func NewAggregator(users UserReader, dietary, allergies PreferenceLister, labs LabResultReader) *Aggregator {
	return &Aggregator{users: users, dietary: dietary, allergies: allergies, labs: labs}
}

// GetFullProfile assembles the profile. The user must exist; missing
// preferences or lab results produce empty lists and a nil filename.
func (a *Aggregator) GetFullProfile(ctx context.Context, userID int64) (*Profile, error) {
	if _, err := a.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	result := Profile{UserID: userID}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		items, err := a.dietary.ListForUser(groupCtx, userID)
		if err != nil {
			return fmt.Errorf("dietary restrictions: %w", err)
		}
		result.DietaryRestrictions = nonNil(items)
		return nil
	})

	group.Go(func() error {
		items, err := a.allergies.ListForUser(groupCtx, userID)
		if err != nil {
			return fmt.Errorf("allergies: %w", err)
		}
		result.Allergies = nonNil(items)
		return nil
	})

	group.Go(func() error {
		latest, err := a.labs.Latest(groupCtx, userID)
		if err != nil {
			if errors.Is(err, labresult.ErrLabResultNotFound) {
				return nil
			}
			return fmt.Errorf("lab result: %w", err)
		}
		filename := latest.Filename
		result.LabResultFilename = &filename
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func nonNil(items []catalog.Item) []catalog.Item {
	if items == nil {
		return []catalog.Item{}
	}
	return items
}
