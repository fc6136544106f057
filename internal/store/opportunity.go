package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"volunteerhub/internal/localstore"
	"volunteerhub/internal/utils"
	"volunteerhub/pkg/types"
)

// OpportunityRepository merges the fixed seed set with the persisted submitted
// set and is the sole writer of the opportunities key. Seed records are
// immutable; all mutations operate on the submitted set and persist it back in
// full immediately.
type OpportunityRepository struct {
	store *localstore.Store
	seed  []types.Opportunity

	mu sync.Mutex
}

func NewOpportunityRepository(store *localstore.Store, seed []types.Opportunity) *OpportunityRepository {
	return &OpportunityRepository{store: store, seed: seed}
}

// All returns seed opportunities followed by submitted ones in append order.
// A submitted record reusing a seed ID is skipped: the first occurrence of an
// ID wins, so the merged set never carries duplicates.
func (r *OpportunityRepository) All() ([]types.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	submitted, err := r.loadSubmitted()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(r.seed)+len(submitted))
	merged := make([]types.Opportunity, 0, len(r.seed)+len(submitted))
	for _, opp := range r.seed {
		seen[opp.ID] = true
		merged = append(merged, opp)
	}
	for _, opp := range submitted {
		if seen[opp.ID] {
			continue
		}
		seen[opp.ID] = true
		merged = append(merged, opp)
	}

	return merged, nil
}

// Submitted returns only the persisted user-submitted set, in append order.
func (r *OpportunityRepository) Submitted() ([]types.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadSubmitted()
}

func (r *OpportunityRepository) ByID(id string) (*types.Opportunity, error) {
	all, err := r.All()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}

	return nil, types.ErrOpportunityNotFound
}

// ByOwner returns submitted opportunities whose owner email matches,
// case-insensitively.
func (r *OpportunityRepository) ByOwner(email string) ([]types.Opportunity, error) {
	submitted, err := r.Submitted()
	if err != nil {
		return nil, err
	}

	owned := make([]types.Opportunity, 0)
	for _, opp := range submitted {
		if strings.EqualFold(opp.OrganizationEmail, email) {
			owned = append(owned, opp)
		}
	}

	return owned, nil
}

// Create assigns a fresh unique ID, zeroes the signup count, stamps creation
// time, and appends the record to the persisted submitted set. A caller-set ID
// colliding with any existing record fails with ErrDuplicateID.
func (r *OpportunityRepository) Create(opp *types.Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	submitted, err := r.loadSubmitted()
	if err != nil {
		return err
	}

	if opp.ID == "" {
		opp.ID = utils.NanoID()
	}

	for _, existing := range r.seed {
		if existing.ID == opp.ID {
			return types.ErrDuplicateID
		}
	}
	for _, existing := range submitted {
		if existing.ID == opp.ID {
			return types.ErrDuplicateID
		}
	}

	opp.CurrentSignups = 0
	opp.CreatedAt = time.Now()
	opp.UpdatedAt = nil

	submitted = append(submitted, *opp)

	return r.persist(submitted)
}

// Update merges the patch into the submitted record with the given ID and
// stamps an update time. Seed opportunities are not editable.
func (r *OpportunityRepository) Update(id string, patch types.OpportunityPatch) (*types.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, opp := range r.seed {
		if opp.ID == id {
			return nil, types.ErrSeedImmutable
		}
	}

	submitted, err := r.loadSubmitted()
	if err != nil {
		return nil, err
	}

	for i := range submitted {
		if submitted[i].ID != id {
			continue
		}

		applyPatch(&submitted[i], patch)
		submitted[i].UpdatedAt = utils.TimePtr(time.Now())

		if err := r.persist(submitted); err != nil {
			return nil, err
		}

		opp := submitted[i]
		return &opp, nil
	}

	return nil, types.ErrOpportunityNotFound
}

// SetApproval rewrites the owner email and approval status of a submitted
// record. It backs the moderation approve transition.
func (r *OpportunityRepository) SetApproval(id, ownerEmail string, status types.ApprovalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	submitted, err := r.loadSubmitted()
	if err != nil {
		return err
	}

	for i := range submitted {
		if submitted[i].ID != id {
			continue
		}

		submitted[i].OrganizationEmail = ownerEmail
		submitted[i].ApprovalStatus = status
		submitted[i].UpdatedAt = utils.TimePtr(time.Now())

		return r.persist(submitted)
	}

	return types.ErrOpportunityNotFound
}

// Delete removes a submitted opportunity. A missing ID is a silent no-op; a
// seed ID fails with ErrSeedImmutable.
func (r *OpportunityRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, opp := range r.seed {
		if opp.ID == id {
			return types.ErrSeedImmutable
		}
	}

	submitted, err := r.loadSubmitted()
	if err != nil {
		return err
	}

	kept := submitted[:0]
	for _, opp := range submitted {
		if opp.ID != id {
			kept = append(kept, opp)
		}
	}

	if len(kept) == len(submitted) {
		return nil
	}

	return r.persist(kept)
}

// IsSeed reports whether the ID belongs to the fixed seed set.
func (r *OpportunityRepository) IsSeed(id string) bool {
	for _, opp := range r.seed {
		if opp.ID == id {
			return true
		}
	}
	return false
}

func (r *OpportunityRepository) loadSubmitted() ([]types.Opportunity, error) {
	var submitted []types.Opportunity
	err := r.store.Get(localstore.KeyOpportunities, &submitted)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return []types.Opportunity{}, nil
		}
		return nil, fmt.Errorf("failed to load submitted opportunities: %w", err)
	}

	return submitted, nil
}

func (r *OpportunityRepository) persist(submitted []types.Opportunity) error {
	return utils.ErrorWrapOrNil(
		r.store.Put(localstore.KeyOpportunities, submitted),
		"failed to persist submitted opportunities",
	)
}

func applyPatch(opp *types.Opportunity, patch types.OpportunityPatch) {
	if patch.Title != nil {
		opp.Title = *patch.Title
	}
	if patch.Type != nil {
		opp.Type = *patch.Type
	}
	if patch.Location != nil {
		opp.Location = *patch.Location
	}
	if patch.Address != nil {
		opp.Address = *patch.Address
	}
	if patch.Description != nil {
		opp.Description = *patch.Description
	}
	if patch.FullDescription != nil {
		opp.FullDescription = *patch.FullDescription
	}
	if patch.Duration != nil {
		opp.Duration = *patch.Duration
	}
	if patch.Commitment != nil {
		opp.Commitment = *patch.Commitment
	}
	if patch.Requirements != nil {
		opp.Requirements = patch.Requirements
	}
	if patch.Benefits != nil {
		opp.Benefits = patch.Benefits
	}
	if patch.ContactEmail != nil {
		opp.ContactEmail = *patch.ContactEmail
	}
	if patch.ContactPhone != nil {
		opp.ContactPhone = *patch.ContactPhone
	}
	if patch.Date != nil {
		opp.Date = *patch.Date
	}
	if patch.Time != nil {
		opp.Time = *patch.Time
	}
	if patch.Capacity != nil {
		opp.Capacity = *patch.Capacity
	}
}
