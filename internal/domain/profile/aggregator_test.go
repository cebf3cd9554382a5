package profile

import (
	"context"
	"errors"
	"testing"

	"diet-profile-go/internal/domain/catalog"
	"diet-profile-go/internal/domain/labresult"
	"diet-profile-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[int64]bool

func (f fakeUsers) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if !f[id] {
		return nil, user.ErrUserNotFound
	}
	return &user.User{ID: id}, nil
}

type fakeLister struct {
	items map[int64][]catalog.Item
	err   error
}

func (f fakeLister) ListForUser(ctx context.Context, userID int64) ([]catalog.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[userID], nil
}

type fakeLabs map[int64]string

func (f fakeLabs) Latest(ctx context.Context, userID int64) (*labresult.LabResult, error) {
	name, ok := f[userID]
	if !ok {
		return nil, labresult.ErrLabResultNotFound
	}
	return &labresult.LabResult{UserID: userID, Filename: name}, nil
}

func TestGetCombinesSources(t *testing.T) {
	agg := NewAggregator(
		fakeUsers{1: true},
		fakeLister{items: map[int64][]catalog.Item{1: {{ID: 1, Name: "Vegan"}, {ID: 4, Name: "Keto"}}}},
		fakeLister{items: map[int64][]catalog.Item{1: {{ID: 3, Name: "Dairy"}}}},
		fakeLabs{1: "panel.pdf"},
	)

	got, err := agg.GetFullProfile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.UserID)
	require.Len(t, got.DietaryRestrictions, 2)
	assert.Equal(t, "Vegan", got.DietaryRestrictions[0].Name)
	assert.Equal(t, int64(4), got.DietaryRestrictions[1].ID)
	require.Len(t, got.Allergies, 1)
	assert.Equal(t, "Dairy", got.Allergies[0].Name)
	require.NotNil(t, got.LabResultFilename)
	assert.Equal(t, "panel.pdf", *got.LabResultFilename)
}

func TestGetEmptyProfile(t *testing.T) {
	agg := NewAggregator(fakeUsers{2: true}, fakeLister{}, fakeLister{}, fakeLabs{})

	got, err := agg.GetFullProfile(context.Background(), 2)
	require.NoError(t, err)

	assert.NotNil(t, got.DietaryRestrictions)
	assert.Empty(t, got.DietaryRestrictions)
	assert.NotNil(t, got.Allergies)
	assert.Empty(t, got.Allergies)
	assert.Nil(t, got.LabResultFilename)
}

func TestGetUnknownUser(t *testing.T) {
	agg := NewAggregator(fakeUsers{}, fakeLister{}, fakeLister{}, fakeLabs{})

	_, err := agg.GetFullProfile(context.Background(), 9)
	require.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetPropagatesListFailure(t *testing.T) {
	boom := errors.New("db down")
	agg := NewAggregator(fakeUsers{1: true}, fakeLister{}, fakeLister{err: boom}, fakeLabs{})

	_, err := agg.GetFullProfile(context.Background(), 1)
	require.ErrorIs(t, err, boom)
}
