package preferences

import (
	"context"

	"diet-profile-go/internal/domain/catalog"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CountCatalogItems(ctx context.Context, set Set, itemIDs []int64) (int64, error)
	DeleteAll(ctx context.Context, set Set, userID int64) error
	Insert(ctx context.Context, set Set, userID int64, itemIDs []int64) error
	Delete(ctx context.Context, set Set, userID, itemID int64) (int64, error)
	List(ctx context.Context, set Set, userID int64) ([]catalog.Item, error)
}
