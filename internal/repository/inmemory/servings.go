package inmemory

import (
	"context"

	catalogdomain "diet-profile-go/internal/domain/catalog"
	servingdomain "diet-profile-go/internal/domain/serving"
)

type ServingRepository struct {
	store *Store
	inTx  bool
}

func NewServingRepository(store *Store) *ServingRepository {
	return &ServingRepository{store: store}
}

func (r *ServingRepository) Transaction(ctx context.Context, fn func(servingdomain.Repository) error) error {
	return r.store.transaction(func() error {
		return fn(&ServingRepository{store: r.store, inTx: true})
	})
}

func (r *ServingRepository) DeleteByUser(ctx context.Context, userID int64) error {
	r.store.locked(r.inTx, func() {
		delete(r.store.data.servings, userID)
	})
	return nil
}

func (r *ServingRepository) Create(ctx context.Context, selection *servingdomain.UserServing) error {
	var err error
	r.store.locked(r.inTx, func() {
		if _, exists := r.store.data.servings[selection.UserID]; exists {
			err = errDuplicateKey
			return
		}
		r.store.data.servings[selection.UserID] = *selection
	})
	return err
}

func (r *ServingRepository) GetSelection(ctx context.Context, userID int64) (*servingdomain.Selection, error) {
	var (
		selection servingdomain.UserServing
		item      catalogdomain.Item
		ok        bool
	)
	r.store.locked(r.inTx, func() {
		selection, ok = r.store.data.servings[userID]
		if ok {
			item, ok = findItem(r.store.data.catalogs[catalogdomain.KindServings], selection.ServingID)
		}
	})
	if !ok {
		return nil, servingdomain.ErrServingNotSet
	}

	return &servingdomain.Selection{
		ID:          item.ID,
		Name:        item.Name,
		LogoPath:    item.LogoPath,
		FamilyCount: selection.FamilyCount,
	}, nil
}
