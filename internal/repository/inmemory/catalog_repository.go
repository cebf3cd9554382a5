package inmemory

import (
	"context"

	catalogdomain "diet-profile-go/internal/domain/catalog"
)

type CatalogRepository struct {
	store *Store
}

func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) List(ctx context.Context, kind catalogdomain.Kind) ([]catalogdomain.Item, error) {
	if !kind.Valid() {
		return nil, catalogdomain.ErrUnknownKind
	}

	var items []catalogdomain.Item
	r.store.locked(false, func() {
		items = cloneItems(r.store.data.catalogs[kind])
	})
	return items, nil
}

func (r *CatalogRepository) Get(ctx context.Context, kind catalogdomain.Kind, id int64) (*catalogdomain.Item, error) {
	if !kind.Valid() {
		return nil, catalogdomain.ErrUnknownKind
	}

	var (
		found catalogdomain.Item
		ok    bool
	)
	r.store.locked(false, func() {
		found, ok = findItem(r.store.data.catalogs[kind], id)
	})
	if !ok {
		return nil, catalogdomain.ErrItemNotFound
	}
	return &found, nil
}

func findItem(items []catalogdomain.Item, id int64) (catalogdomain.Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return cloneItems([]catalogdomain.Item{item})[0], true
		}
	}
	return catalogdomain.Item{}, false
}
