package types

import "time"

// Organization is the profile captured during organization onboarding and
// persisted under the organizationData key.
type Organization struct {
	OrganizationName string            `json:"organizationName"`
	Email            string            `json:"email"`
	ShortDescription string            `json:"shortDescription"`
	CauseAreas       []OpportunityType `json:"causeAreas"`
	Website          string            `json:"website,omitempty"`
	ContactPhone     string            `json:"contactPhone,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}
