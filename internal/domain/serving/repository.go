package serving

import (
	"context"

	"diet-profile-go/internal/domain/catalog"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	DeleteByUser(ctx context.Context, userID int64) error
	Create(ctx context.Context, selection *UserServing) error
	GetSelection(ctx context.Context, userID int64) (*Selection, error)
}

// CatalogReader resolves serving options from the catalog.
type CatalogReader interface {
	Get(ctx context.Context, kind catalog.Kind, id int64) (*catalog.Item, error)
}
