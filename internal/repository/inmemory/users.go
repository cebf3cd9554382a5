package inmemory

import (
	"context"
	"errors"

	userdomain "diet-profile-go/internal/domain/user"
)

type UserRepository struct {
	store *Store
	inTx  bool
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Transaction(ctx context.Context, fn func(userdomain.Repository) error) error {
	return r.store.transaction(func() error {
		return fn(&UserRepository{store: r.store, inTx: true})
	})
}

func (r *UserRepository) Create(ctx context.Context, user *userdomain.User) error {
	var err error
	r.store.locked(r.inTx, func() {
		for _, existing := range r.store.data.users {
			if existing.Email == user.Email {
				err = userdomain.ErrEmailTaken
				return
			}
		}
		user.ID = r.store.data.nextUserID
		user.CreatedAt = r.store.now().UTC()
		r.store.data.nextUserID++
		r.store.data.users[user.ID] = *user
	})
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*userdomain.User, error) {
	var (
		found userdomain.User
		ok    bool
	)
	r.store.locked(r.inTx, func() {
		found, ok = r.store.data.users[id]
	})
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &found, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var (
		found userdomain.User
		ok    bool
	)
	r.store.locked(r.inTx, func() {
		for _, user := range r.store.data.users {
			if user.Email == email {
				found, ok = user, true
				return
			}
		}
	})
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &found, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if errors.Is(err, userdomain.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *UserRepository) SetOnboardingCompleted(ctx context.Context, id int64) error {
	var ok bool
	r.store.locked(r.inTx, func() {
		var user userdomain.User
		user, ok = r.store.data.users[id]
		if ok {
			user.OnboardingCompleted = true
			r.store.data.users[id] = user
		}
	})
	if !ok {
		return userdomain.ErrUserNotFound
	}
	return nil
}
