package store

import (
	"errors"
	"fmt"
	"sync"

	"volunteerhub/internal/localstore"
	"volunteerhub/internal/utils"
	"volunteerhub/pkg/types"
)

// UserRepository owns the user and userType keys. The role is stored twice
// (inside the user record and as a plain string) to match the storage schema;
// SaveCurrent keeps the two in sync.
type UserRepository struct {
	store *localstore.Store

	mu sync.Mutex
}

func NewUserRepository(store *localstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Current returns nil without error when nobody is logged in.
func (r *UserRepository) Current() (*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var user types.User
	err := r.store.Get(localstore.KeyUser, &user)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) SaveCurrent(user types.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Put(localstore.KeyUser, user); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	return utils.ErrorWrapOrNil(
		r.store.Put(localstore.KeyUserType, user.UserType),
		"failed to persist user type",
	)
}

// CurrentType reads the plain userType key, falling back to the user record.
func (r *UserRepository) CurrentType() (types.UserType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var userType types.UserType
	err := r.store.Get(localstore.KeyUserType, &userType)
	if err == nil {
		return userType, nil
	}
	if !errors.Is(err, types.ErrKeyNotFound) {
		return "", fmt.Errorf("failed to load user type: %w", err)
	}

	var user types.User
	err = r.store.Get(localstore.KeyUser, &user)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	return user.UserType, nil
}

// Clear logs the session out by removing both keys.
func (r *UserRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(localstore.KeyUser); err != nil {
		return fmt.Errorf("failed to clear user: %w", err)
	}

	return utils.ErrorWrapOrNil(
		r.store.Delete(localstore.KeyUserType),
		"failed to clear user type",
	)
}
