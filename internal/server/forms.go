package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Name     string `form:"name"`
	UserType string `form:"userType" validate:"omitempty,oneof=volunteer social-organization"`
}

type registerForm struct {
	Email    string `form:"email" validate:"required,email"`
	Name     string `form:"name" validate:"required"`
	UserType string `form:"userType" validate:"required,oneof=volunteer social-organization"`
}

type preferencesForm struct {
	VolunteeringTypes  []string `form:"volunteeringTypes" validate:"required,min=1,dive,oneof=environment education elderly healthcare animals community youth food"`
	PreferredDays      []string `form:"preferredDays" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	LocationPreference string   `form:"locationPreference" validate:"omitempty,oneof=in-person online hybrid"`
}

type organizationForm struct {
	OrganizationName string   `form:"organizationName" validate:"required"`
	ShortDescription string   `form:"shortDescription" validate:"required"`
	CauseAreas       []string `form:"causeAreas" validate:"omitempty,dive,oneof=environment education elderly healthcare animals community youth food"`
	Website          string   `form:"website" validate:"omitempty,url"`
	ContactPhone     string   `form:"contactPhone"`
}

type signupForm struct {
	Name       string `form:"name" validate:"required"`
	Email      string `form:"email" validate:"required,email"`
	Motivation string `form:"motivation"`
}

type opportunityForm struct {
	Title           string `form:"title" validate:"required"`
	Type            string `form:"type" validate:"required,oneof=environment education elderly healthcare animals community youth food"`
	Location        string `form:"location" validate:"required,oneof=in-person online hybrid"`
	Address         string `form:"address" validate:"required"`
	Description     string `form:"description" validate:"required"`
	FullDescription string `form:"fullDescription"`
	Duration        string `form:"duration"`
	Commitment      string `form:"commitment"`

	// One entry per line in the textarea.
	Requirements string `form:"requirements"`
	Benefits     string `form:"benefits"`

	ContactEmail string `form:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `form:"contactPhone"`
	Date         string `form:"date" validate:"required"`
	StartTime    string `form:"startTime" validate:"required"`
	EndTime      string `form:"endTime" validate:"required"`
	Capacity     int    `form:"capacity" validate:"required,min=1"`
}

const clockLayout = "03:04 PM"

// TimeWindow joins the start and end fields into the stored display form
// after checking the window is well ordered.
func (f *opportunityForm) TimeWindow() (string, error) {
	start, err := time.Parse(clockLayout, strings.TrimSpace(f.StartTime))
	if err != nil {
		return "", fmt.Errorf("invalid start time %q", f.StartTime)
	}

	end, err := time.Parse(clockLayout, strings.TrimSpace(f.EndTime))
	if err != nil {
		return "", fmt.Errorf("invalid end time %q", f.EndTime)
	}

	if !end.After(start) {
		return "", fmt.Errorf("end time must be after start time")
	}

	return fmt.Sprintf("%s - %s", start.Format(clockLayout), end.Format(clockLayout)), nil
}

func splitLines(v string) []string {
	var out []string
	for _, line := range strings.Split(v, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// fieldErrors flattens validator output into a field -> message map the
// templates can render next to each input.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "invalid form payload"
		return out
	}

	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required", "min":
			out[field] = "this field is required"
		case "email":
			out[field] = "must be a valid email address"
		case "url":
			out[field] = "must be a valid URL"
		case "oneof":
			out[field] = "not one of the accepted values"
		default:
			out[field] = "invalid value"
		}
	}

	return out
}
