package inmemory

import (
	"context"
	"sort"

	catalogdomain "diet-profile-go/internal/domain/catalog"
	prefdomain "diet-profile-go/internal/domain/preferences"
)

type PreferenceRepository struct {
	store *Store
	inTx  bool
}

func NewPreferenceRepository(store *Store) *PreferenceRepository {
	return &PreferenceRepository{store: store}
}

func (r *PreferenceRepository) Transaction(ctx context.Context, fn func(prefdomain.Repository) error) error {
	return r.store.transaction(func() error {
		return fn(&PreferenceRepository{store: r.store, inTx: true})
	})
}

// rows returns the association table, creating it on first use. Caller holds the lock.
func (r *PreferenceRepository) rows(set prefdomain.Set) map[association]struct{} {
	rows, ok := r.store.data.associations[set.AssociationTable]
	if !ok {
		rows = make(map[association]struct{})
		r.store.data.associations[set.AssociationTable] = rows
	}
	return rows
}

func (r *PreferenceRepository) CountCatalogItems(ctx context.Context, set prefdomain.Set, itemIDs []int64) (int64, error) {
	var count int64
	r.store.locked(r.inTx, func() {
		for _, id := range itemIDs {
			if _, ok := findItem(r.store.data.catalogs[set.Kind], id); ok {
				count++
			}
		}
	})
	return count, nil
}

func (r *PreferenceRepository) DeleteAll(ctx context.Context, set prefdomain.Set, userID int64) error {
	r.store.locked(r.inTx, func() {
		rows := r.rows(set)
		for key := range rows {
			if key.userID == userID {
				delete(rows, key)
			}
		}
	})
	return nil
}

func (r *PreferenceRepository) Insert(ctx context.Context, set prefdomain.Set, userID int64, itemIDs []int64) error {
	var err error
	r.store.locked(r.inTx, func() {
		rows := r.rows(set)
		for _, id := range itemIDs {
			key := association{userID: userID, itemID: id}
			if _, exists := rows[key]; exists {
				err = errDuplicateKey
				return
			}
			rows[key] = struct{}{}
		}
	})
	return err
}

func (r *PreferenceRepository) Delete(ctx context.Context, set prefdomain.Set, userID, itemID int64) (int64, error) {
	var affected int64
	r.store.locked(r.inTx, func() {
		rows := r.rows(set)
		key := association{userID: userID, itemID: itemID}
		if _, ok := rows[key]; ok {
			delete(rows, key)
			affected = 1
		}
	})
	return affected, nil
}

func (r *PreferenceRepository) List(ctx context.Context, set prefdomain.Set, userID int64) ([]catalogdomain.Item, error) {
	var items []catalogdomain.Item
	r.store.locked(r.inTx, func() {
		for key := range r.rows(set) {
			if key.userID != userID {
				continue
			}
			if item, ok := findItem(r.store.data.catalogs[set.Kind], key.itemID); ok {
				items = append(items, item)
			}
		}
	})
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
