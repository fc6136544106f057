package server

import (
	"net/http"
	"strings"

	"volunteerhub/pkg/types"
)

type OnboardingPageData struct {
	types.BasePageData
	Types    []types.OpportunityType
	Days     []string
	Selected types.VolunteerPreferences
	Errors   map[string]string
}

type OrganizationOnboardingPageData struct {
	types.BasePageData
	Types  []types.OpportunityType
	Form   organizationForm
	Errors map[string]string
}

func (s *Service) handleGetOnboarding(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.preferences.Get()
	if err != nil {
		s.logger.WithError(err).Error("failed to load volunteer preferences")
		s.internalServerError(w)
		return
	}

	data := OnboardingPageData{
		Types: types.OpportunityTypes,
		Days:  types.DaysOfWeek,
	}
	data.Title = "Tell Us About Yourself"
	if prefs != nil {
		data.Selected = *prefs
	}

	if err := s.renderTemplate(w, r, "page.onboarding", &data); err != nil {
		s.logger.WithError(err).Error("failed to render onboarding page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.internalServerError(w)
		return
	}

	var form = new(preferencesForm)
	err := decoder.Decode(form, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode preferences form")
		s.internalServerError(w)
		return
	}

	if err := validate.Struct(form); err != nil {
		data := OnboardingPageData{
			Types:  types.OpportunityTypes,
			Days:   types.DaysOfWeek,
			Errors: fieldErrors(err),
		}
		data.Title = "Tell Us About Yourself"
		if err := s.renderTemplate(w, r, "page.onboarding", &data); err != nil {
			s.logger.WithError(err).Error("failed to render onboarding page")
			s.internalServerError(w)
		}
		return
	}

	prefs := types.VolunteerPreferences{
		VolunteeringTypes:  toOpportunityTypes(form.VolunteeringTypes),
		PreferredDays:      form.PreferredDays,
		LocationPreference: types.LocationMode(form.LocationPreference),
	}

	// Saving replaces the record wholesale: a single preference document,
	// no history.
	if err := s.preferences.Save(prefs); err != nil {
		s.logger.WithError(err).Error("failed to persist volunteer preferences")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Service) handleGetOrganizationOnboarding(w http.ResponseWriter, r *http.Request) {
	org, err := s.organizations.Get()
	if err != nil {
		s.logger.WithError(err).Error("failed to load organization profile")
		s.internalServerError(w)
		return
	}

	data := OrganizationOnboardingPageData{Types: types.OpportunityTypes}
	data.Title = "Organization Profile"
	if org != nil {
		data.Form = organizationForm{
			OrganizationName: org.OrganizationName,
			ShortDescription: org.ShortDescription,
			Website:          org.Website,
			ContactPhone:     org.ContactPhone,
		}
		for _, t := range org.CauseAreas {
			data.Form.CauseAreas = append(data.Form.CauseAreas, string(t))
		}
	}

	if err := s.renderTemplate(w, r, "page.onboarding.organization", &data); err != nil {
		s.logger.WithError(err).Error("failed to render organization onboarding page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostOrganizationOnboarding(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionFromContext(r.Context())
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.internalServerError(w)
		return
	}

	var form = new(organizationForm)
	err = decoder.Decode(form, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode organization form")
		s.internalServerError(w)
		return
	}

	if err := validate.Struct(form); err != nil {
		data := OrganizationOnboardingPageData{
			Types:  types.OpportunityTypes,
			Form:   *form,
			Errors: fieldErrors(err),
		}
		data.Title = "Organization Profile"
		if err := s.renderTemplate(w, r, "page.onboarding.organization", &data); err != nil {
			s.logger.WithError(err).Error("failed to render organization onboarding page")
			s.internalServerError(w)
		}
		return
	}

	existing, err := s.organizations.Get()
	if err != nil {
		s.logger.WithError(err).Error("failed to load organization profile")
		s.internalServerError(w)
		return
	}

	org := types.Organization{
		OrganizationName: strings.TrimSpace(form.OrganizationName),
		Email:            session.Email,
		ShortDescription: strings.TrimSpace(form.ShortDescription),
		CauseAreas:       toOpportunityTypes(form.CauseAreas),
		Website:          strings.TrimSpace(form.Website),
		ContactPhone:     strings.TrimSpace(form.ContactPhone),
	}
	if existing != nil {
		org.CreatedAt = existing.CreatedAt
	}

	if err := s.organizations.Save(org); err != nil {
		s.logger.WithError(err).Error("failed to persist organization profile")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/my-opportunities", http.StatusSeeOther)
}

func toOpportunityTypes(values []string) []types.OpportunityType {
	out := make([]types.OpportunityType, 0, len(values))
	for _, v := range values {
		out = append(out, types.OpportunityType(v))
	}
	return out
}
