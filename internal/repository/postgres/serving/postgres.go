package serving

import (
	"context"
	"errors"

	domain "diet-profile-go/internal/domain/serving"
	"gorm.io/gorm"
)

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

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.UserServing{}).Error
}

func (r *PostgresRepository) Create(ctx context.Context, selection *domain.UserServing) error {
	return r.db.WithContext(ctx).Create(selection).Error
}

func (r *PostgresRepository) GetSelection(ctx context.Context, userID int64) (*domain.Selection, error) {
	type selectionRow struct {
		ID          int64   `gorm:"column:id"`
		Name        string  `gorm:"column:name"`
		LogoPath    *string `gorm:"column:logo_path"`
		FamilyCount *int    `gorm:"column:family_count"`
	}

	var row selectionRow
	err := r.db.WithContext(ctx).
		Table("user_servings").
		Select("servings.id, servings.name, servings.logo_path, user_servings.family_count").
		Joins("join servings on servings.id = user_servings.serving_id").
		Where("user_servings.user_id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrServingNotSet
	}
	if err != nil {
		return nil, err
	}

	return &domain.Selection{
		ID:          row.ID,
		Name:        row.Name,
		LogoPath:    row.LogoPath,
		FamilyCount: row.FamilyCount,
	}, nil
}
