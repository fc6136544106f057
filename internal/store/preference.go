package store

import (
	"errors"
	"fmt"
	"sync"

	"volunteerhub/internal/localstore"
	"volunteerhub/internal/utils"
	"volunteerhub/pkg/types"
)

// PreferenceRepository holds the single volunteer preferences record, replaced
// wholesale on every update.
type PreferenceRepository struct {
	store *localstore.Store

	mu sync.Mutex
}

func NewPreferenceRepository(store *localstore.Store) *PreferenceRepository {
	return &PreferenceRepository{store: store}
}

// Get returns nil without error when no preferences have been saved yet; the
// caller redirects to onboarding in that case.
func (r *PreferenceRepository) Get() (*types.VolunteerPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var prefs types.VolunteerPreferences
	err := r.store.Get(localstore.KeyPreferences, &prefs)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load volunteer preferences: %w", err)
	}

	return &prefs, nil
}

func (r *PreferenceRepository) Save(prefs types.VolunteerPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return utils.ErrorWrapOrNil(
		r.store.Put(localstore.KeyPreferences, prefs),
		"failed to persist volunteer preferences",
	)
}

func (r *PreferenceRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return utils.ErrorWrapOrNil(
		r.store.Delete(localstore.KeyPreferences),
		"failed to clear volunteer preferences",
	)
}
