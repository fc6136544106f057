package types

// VolunteerPreferences is a single record per volunteer: replaced wholesale on
// update, no history. PreferredDays is captured and displayed but does not
// narrow recommendations because opportunities carry no day-of-week attribute.
type VolunteerPreferences struct {
	VolunteeringTypes  []OpportunityType `json:"volunteeringTypes"`
	PreferredDays      []string          `json:"preferredDays"`
	LocationPreference LocationMode      `json:"locationPreference,omitempty"`
}

// DaysOfWeek is the fixed set offered on the onboarding form.
var DaysOfWeek = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}
