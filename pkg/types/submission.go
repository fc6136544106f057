package types

import (
	"time"
)

type SubmissionStatus string

const (
	SubmissionStatusActive    SubmissionStatus = "active"
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusCancelled SubmissionStatus = "cancelled"
)

// VolunteerSubmission is one volunteer's signup for one opportunity.
// OpportunityTitle is a denormalized copy taken at signup time and may drift
// from the opportunity if its title is later edited.
type VolunteerSubmission struct {
	ID               string           `json:"id"`
	OpportunityID    string           `json:"opportunityId"`
	OpportunityTitle string           `json:"opportunityTitle"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Motivation       string           `json:"motivation"`
	Status           SubmissionStatus `json:"status"`
	SubmittedAt      time.Time        `json:"submittedAt"`
}
