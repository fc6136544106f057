package types

import (
	"time"
)

type OpportunityType string

const (
	OpportunityTypeEnvironment OpportunityType = "environment"
	OpportunityTypeEducation   OpportunityType = "education"
	OpportunityTypeElderly     OpportunityType = "elderly"
	OpportunityTypeHealthcare  OpportunityType = "healthcare"
	OpportunityTypeAnimals     OpportunityType = "animals"
	OpportunityTypeCommunity   OpportunityType = "community"
	OpportunityTypeYouth       OpportunityType = "youth"
	OpportunityTypeFood        OpportunityType = "food"
)

// OpportunityTypes is the fixed vocabulary shown during onboarding and
// accepted by opportunity create/edit forms.
var OpportunityTypes = []OpportunityType{
	OpportunityTypeEnvironment,
	OpportunityTypeEducation,
	OpportunityTypeElderly,
	OpportunityTypeHealthcare,
	OpportunityTypeAnimals,
	OpportunityTypeCommunity,
	OpportunityTypeYouth,
	OpportunityTypeFood,
}

type LocationMode string

const (
	LocationInPerson LocationMode = "in-person"
	LocationOnline   LocationMode = "online"
	LocationHybrid   LocationMode = "hybrid"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
)

type CapacityLevel string

const (
	CapacityOpen       CapacityLevel = "open"
	CapacityFillingUp  CapacityLevel = "filling-up"
	CapacityAlmostFull CapacityLevel = "almost-full"
)

type Opportunity struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Image           string          `json:"image,omitempty"`
	Type            OpportunityType `json:"type"`
	Location        LocationMode    `json:"location"`
	Address         string          `json:"address"`
	Description     string          `json:"description"`
	FullDescription string          `json:"fullDescription"`
	Organization    string          `json:"organization"`

	// OrganizationEmail is the owner marker. Empty means platform-owned.
	OrganizationEmail string `json:"organizationEmail"`

	Duration     string   `json:"duration"`
	Commitment   string   `json:"commitment"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	ContactEmail string   `json:"contactEmail"`
	ContactPhone string   `json:"contactPhone"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Capacity     int      `json:"capacity"`

	// CurrentSignups is the baseline count carried by seed records. Live
	// signups are tracked in the submission ledger and added on read; this
	// field is never incremented by a signup.
	CurrentSignups int `json:"currentSignups"`

	// ApprovalStatus is set by moderation transitions. Records persisted
	// before the field existed carry an empty value and are classified from
	// OrganizationEmail instead.
	ApprovalStatus ApprovalStatus `json:"approvalStatus,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// OpportunityPatch carries partial edits. Nil fields are left untouched.
type OpportunityPatch struct {
	Title           *string
	Type            *OpportunityType
	Location        *LocationMode
	Address         *string
	Description     *string
	FullDescription *string
	Duration        *string
	Commitment      *string
	Requirements    []string
	Benefits        []string
	ContactEmail    *string
	ContactPhone    *string
	Date            *string
	Time            *string
	Capacity        *int
}
