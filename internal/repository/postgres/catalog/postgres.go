package catalog

import (
	"context"
	"errors"

	domain "diet-profile-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, kind domain.Kind) ([]domain.Item, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownKind
	}

	var items []domain.Item
	if err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Select("id, name, logo_path").
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) Get(ctx context.Context, kind domain.Kind, id int64) (*domain.Item, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownKind
	}

	var item domain.Item
	if err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Select("id, name, logo_path").
		Where("id = ?", id).
		Take(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}
