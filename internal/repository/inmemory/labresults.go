package inmemory

import (
	"context"
	"errors"

	labresultdomain "diet-profile-go/internal/domain/labresult"
)

var errDuplicateKey = errors.New("inmemory: duplicate key")

type LabResultRepository struct {
	store *Store
}

func NewLabResultRepository(store *Store) *LabResultRepository {
	return &LabResultRepository{store: store}
}

func (r *LabResultRepository) Create(ctx context.Context, result *labresultdomain.LabResult) error {
	r.store.locked(false, func() {
		result.ID = r.store.data.nextLabID
		r.store.data.nextLabID++
		if result.UploadedAt.IsZero() {
			result.UploadedAt = r.store.now().UTC()
		}
		r.store.data.labResults = append(r.store.data.labResults, *result)
	})
	return nil
}

func (r *LabResultRepository) Latest(ctx context.Context, userID int64) (*labresultdomain.LabResult, error) {
	var (
		latest labresultdomain.LabResult
		found  bool
	)
	r.store.locked(false, func() {
		for _, row := range r.store.data.labResults {
			if row.UserID != userID {
				continue
			}
			if !found || row.UploadedAt.After(latest.UploadedAt) ||
				(row.UploadedAt.Equal(latest.UploadedAt) && row.ID > latest.ID) {
				latest, found = row, true
			}
		}
	})
	if !found {
		return nil, labresultdomain.ErrLabResultNotFound
	}
	return &latest, nil
}
