package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"volunteerhub/internal/localstore"
	"volunteerhub/internal/utils"
	"volunteerhub/pkg/types"
)

// OrganizationRepository owns the organizationData key written by the
// organization onboarding flow.
type OrganizationRepository struct {
	store *localstore.Store

	mu sync.Mutex
}

func NewOrganizationRepository(store *localstore.Store) *OrganizationRepository {
	return &OrganizationRepository{store: store}
}

// Get returns nil without error when no organization profile exists.
func (r *OrganizationRepository) Get() (*types.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var org types.Organization
	err := r.store.Get(localstore.KeyOrganizationData, &org)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load organization profile: %w", err)
	}

	return &org, nil
}

func (r *OrganizationRepository) Save(org types.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if org.CreatedAt.IsZero() {
		org.CreatedAt = now
	}
	org.UpdatedAt = now

	return utils.ErrorWrapOrNil(
		r.store.Put(localstore.KeyOrganizationData, org),
		"failed to persist organization profile",
	)
}
