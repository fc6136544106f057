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

// SubmissionRepository is the submission ledger: the single source of truth
// for who signed up for what. Withdrawal marks a submission cancelled rather
// than deleting it, so history survives and the completed tier keeps working.
type SubmissionRepository struct {
	store *localstore.Store

	mu sync.Mutex
}

func NewSubmissionRepository(store *localstore.Store) *SubmissionRepository {
	return &SubmissionRepository{store: store}
}

func (r *SubmissionRepository) All() ([]types.VolunteerSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// SignUp appends an active submission for the given opportunity. It enforces
// at most one active submission per (opportunity, email) pair and rejects
// signups once the effective count reaches capacity.
func (r *SubmissionRepository) SignUp(opp types.Opportunity, name, email, motivation string) (*types.VolunteerSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load()
	if err != nil {
		return nil, err
	}

	signups := opp.CurrentSignups
	for _, sub := range subs {
		if sub.OpportunityID != opp.ID || sub.Status == types.SubmissionStatusCancelled {
			continue
		}
		if strings.EqualFold(sub.Email, email) && sub.Status == types.SubmissionStatusActive {
			return nil, types.ErrAlreadySignedUp
		}
		signups++
	}

	if opp.Capacity > 0 && signups >= opp.Capacity {
		return nil, types.ErrCapacityFull
	}

	sub := types.VolunteerSubmission{
		ID:               utils.NanoID(),
		OpportunityID:    opp.ID,
		OpportunityTitle: opp.Title,
		Name:             name,
		Email:            email,
		Motivation:       motivation,
		Status:           types.SubmissionStatusActive,
		SubmittedAt:      time.Now(),
	}

	subs = append(subs, sub)
	if err := r.persist(subs); err != nil {
		return nil, err
	}

	return &sub, nil
}

// Withdraw cancels the caller's active submissions for the opportunity.
// Nothing to withdraw is a silent no-op.
func (r *SubmissionRepository) Withdraw(opportunityID, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load()
	if err != nil {
		return err
	}

	changed := false
	for i := range subs {
		if subs[i].OpportunityID != opportunityID {
			continue
		}
		if !strings.EqualFold(subs[i].Email, email) {
			continue
		}
		if subs[i].Status != types.SubmissionStatusActive {
			continue
		}

		subs[i].Status = types.SubmissionStatusCancelled
		changed = true
	}

	if !changed {
		return nil
	}

	return r.persist(subs)
}

// Complete flips an active submission to completed.
func (r *SubmissionRepository) Complete(submissionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load()
	if err != nil {
		return err
	}

	for i := range subs {
		if subs[i].ID != submissionID {
			continue
		}
		if subs[i].Status != types.SubmissionStatusActive {
			return fmt.Errorf("submission %s is %s, not active", submissionID, subs[i].Status)
		}

		subs[i].Status = types.SubmissionStatusCompleted
		return r.persist(subs)
	}

	return types.ErrSubmissionNotFound
}

// AttendeesFor returns the non-cancelled submissions for the opportunity,
// used to render attendee lists and counts.
func (r *SubmissionRepository) AttendeesFor(opportunityID string) ([]types.VolunteerSubmission, error) {
	subs, err := r.All()
	if err != nil {
		return nil, err
	}

	attendees := make([]types.VolunteerSubmission, 0)
	for _, sub := range subs {
		if sub.OpportunityID == opportunityID && sub.Status != types.SubmissionStatusCancelled {
			attendees = append(attendees, sub)
		}
	}

	return attendees, nil
}

// ForEmail returns every submission made with the given email, any status.
func (r *SubmissionRepository) ForEmail(email string) ([]types.VolunteerSubmission, error) {
	subs, err := r.All()
	if err != nil {
		return nil, err
	}

	mine := make([]types.VolunteerSubmission, 0)
	for _, sub := range subs {
		if strings.EqualFold(sub.Email, email) {
			mine = append(mine, sub)
		}
	}

	return mine, nil
}

// EffectiveSignups is the unified counter: the record's stored baseline plus
// its non-cancelled ledger entries. It is computed on read and never written
// back to the opportunity.
func (r *SubmissionRepository) EffectiveSignups(opp types.Opportunity) (int, error) {
	attendees, err := r.AttendeesFor(opp.ID)
	if err != nil {
		return 0, err
	}

	return opp.CurrentSignups + len(attendees), nil
}

// CapacityStatus derives the display bucket from the effective signup count.
func (r *SubmissionRepository) CapacityStatus(opp types.Opportunity) (types.CapacityLevel, error) {
	signups, err := r.EffectiveSignups(opp)
	if err != nil {
		return "", err
	}

	return CapacityLevelFor(signups, opp.Capacity), nil
}

// CapacityLevelFor buckets a signup count: >=90% of capacity is almost-full,
// >=70% is filling-up, anything else is open.
func CapacityLevelFor(signups, capacity int) types.CapacityLevel {
	if capacity <= 0 {
		return types.CapacityOpen
	}

	ratio := float64(signups) / float64(capacity)
	switch {
	case ratio >= 0.9:
		return types.CapacityAlmostFull
	case ratio >= 0.7:
		return types.CapacityFillingUp
	default:
		return types.CapacityOpen
	}
}

func (r *SubmissionRepository) load() ([]types.VolunteerSubmission, error) {
	var subs []types.VolunteerSubmission
	err := r.store.Get(localstore.KeySubmissions, &subs)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return []types.VolunteerSubmission{}, nil
		}
		return nil, fmt.Errorf("failed to load volunteer submissions: %w", err)
	}

	return subs, nil
}

func (r *SubmissionRepository) persist(subs []types.VolunteerSubmission) error {
	return utils.ErrorWrapOrNil(
		r.store.Put(localstore.KeySubmissions, subs),
		"failed to persist volunteer submissions",
	)
}
