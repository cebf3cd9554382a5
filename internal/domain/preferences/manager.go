package preferences

import (
	"context"
	"errors"
	"fmt"

	"diet-profile-go/internal/domain/catalog"
)

// Manager keeps a user's associations for one Set. Writes replace the whole
// set inside a single transaction.
type Manager struct {
	repo Repository
	set  Set
}

func NewManager(repo Repository, set Set) *Manager {
	return &Manager{repo: repo, set: set}
}

func (m *Manager) Set() Set {
	return m.set
}

// ReplaceAll makes itemIDs the user's complete set. Duplicates collapse to one
// row. Either the full replacement or the prior state is visible, never a mix.
func (m *Manager) ReplaceAll(ctx context.Context, userID int64, itemIDs []int64) error {
	ids := uniqueIDs(itemIDs)
	for _, id := range ids {
		if id <= 0 {
			return ErrItemNotFound
		}
	}

	err := m.repo.Transaction(ctx, func(tx Repository) error {
		if len(ids) > 0 {
			count, err := tx.CountCatalogItems(ctx, m.set, ids)
			if err != nil {
				return err
			}
			if count != int64(len(ids)) {
				return ErrItemNotFound
			}
		}

		if err := tx.DeleteAll(ctx, m.set, userID); err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Insert(ctx, m.set, userID, ids)
	})
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return err
		}
		return fmt.Errorf("%w: replace %s: %w", ErrPersistence, m.set.Kind, err)
	}
	return nil
}

// RemoveOne deletes the user's association with itemID only.
func (m *Manager) RemoveOne(ctx context.Context, userID, itemID int64) error {
	affected, err := m.repo.Delete(ctx, m.set, userID, itemID)
	if err != nil {
		return fmt.Errorf("%w: remove %s: %w", ErrPersistence, m.set.Kind, err)
	}
	if affected == 0 {
		return ErrAssociationNotFound
	}
	return nil
}

func (m *Manager) ListForUser(ctx context.Context, userID int64) ([]catalog.Item, error) {
	items, err := m.repo.List(ctx, m.set, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []catalog.Item{}
	}
	return items, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
