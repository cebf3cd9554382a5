package labresult

import (
	"context"
	"errors"

	domain "diet-profile-go/internal/domain/labresult"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, result *domain.LabResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *PostgresRepository) Latest(ctx context.Context, userID int64) (*domain.LabResult, error) {
	var result domain.LabResult
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at desc, id desc").
		Take(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrLabResultNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
