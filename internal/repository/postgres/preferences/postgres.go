package preferences

import (
	"context"

	"diet-profile-go/internal/domain/catalog"
	domain "diet-profile-go/internal/domain/preferences"
	"gorm.io/gorm"
)

// PostgresRepository serves every preference Set. Table and column names come
// from the Set definitions, never from request input.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CountCatalogItems(ctx context.Context, set domain.Set, itemIDs []int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table(set.CatalogTable()).
		Where("id IN ?", itemIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context, set domain.Set, userID int64) error {
	return r.db.WithContext(ctx).
		Table(set.AssociationTable).
		Where(map[string]interface{}{"user_id": userID}).
		Delete(map[string]interface{}{}).Error
}

func (r *PostgresRepository) Insert(ctx context.Context, set domain.Set, userID int64, itemIDs []int64) error {
	rows := make([]map[string]interface{}, 0, len(itemIDs))
	for _, id := range itemIDs {
		rows = append(rows, map[string]interface{}{
			"user_id":      userID,
			set.ItemColumn: id,
		})
	}
	return r.db.WithContext(ctx).Table(set.AssociationTable).Create(&rows).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, set domain.Set, userID, itemID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Table(set.AssociationTable).
		Where(map[string]interface{}{"user_id": userID, set.ItemColumn: itemID}).
		Delete(map[string]interface{}{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *PostgresRepository) List(ctx context.Context, set domain.Set, userID int64) ([]catalog.Item, error) {
	db := r.db.WithContext(ctx)
	selected := db.
		Table(set.AssociationTable).
		Select(set.ItemColumn).
		Where(map[string]interface{}{"user_id": userID})

	var items []catalog.Item
	if err := db.
		Table(set.CatalogTable()).
		Select("id", "name", "logo_path").
		Where("id IN (?)", selected).
		Order("id asc").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
