package types

import "errors"

var (
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrDuplicateID         = errors.New("opportunity id already exists")
	ErrSeedImmutable       = errors.New("seed opportunities cannot be modified")

	ErrAlreadySignedUp    = errors.New("already signed up for this opportunity")
	ErrCapacityFull       = errors.New("opportunity is at capacity")
	ErrSubmissionNotFound = errors.New("submission not found")

	ErrKeyNotFound = errors.New("storage key not found")

	// ErrCorruptData marks a persisted value that failed to parse. The raw
	// value is left on disk until explicitly reset.
	ErrCorruptData = errors.New("stored data is corrupt")
)
