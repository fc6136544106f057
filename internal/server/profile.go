package server

import (
	"net/http"
	"strings"

	"volunteerhub/pkg/types"
)

type ProfilePageData struct {
	types.BasePageData
	User         types.User
	Preferences  *types.VolunteerPreferences
	Organization *types.Organization
}

// handleProfile shows the stored account record alongside whichever profile
// the role carries: volunteering preferences for volunteers, the organization
// record for organizations.
func (s *Service) handleProfile(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionFromContext(r.Context())
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	user := types.User{
		Email:    session.Email,
		Name:     session.Name,
		UserType: session.UserType,
	}

	current, err := s.users.Current()
	if err != nil {
		s.logger.WithError(err).Error("failed to load current user")
		s.internalServerError(w)
		return
	}
	if current != nil && strings.EqualFold(current.Email, session.Email) {
		user = *current
	}

	data := ProfilePageData{User: user}
	data.Title = "My Profile"

	switch session.UserType {
	case types.UserTypeOrganization:
		org, err := s.organizations.Get()
		if err != nil {
			s.logger.WithError(err).Error("failed to load organization profile")
			s.internalServerError(w)
			return
		}
		data.Organization = org
	default:
		prefs, err := s.preferences.Get()
		if err != nil {
			s.logger.WithError(err).Error("failed to load volunteer preferences")
			s.internalServerError(w)
			return
		}
		data.Preferences = prefs
	}

	if err := s.renderTemplate(w, r, "page.profile", &data); err != nil {
		s.logger.WithError(err).Error("failed to render profile page")
		s.internalServerError(w)
		return
	}
}
