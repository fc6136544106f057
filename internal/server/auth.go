package server

import (
	"net/http"
	"strings"
	"time"

	"volunteerhub/internal"
	"volunteerhub/pkg/types"
)

type LoginPageData struct {
	types.BasePageData
	Email  string
	Errors map[string]string
}

type RegisterPageData struct {
	types.BasePageData
	Form   registerForm
	Errors map[string]string
}

func (s *Service) handleGetLogin(w http.ResponseWriter, r *http.Request) {
	_, err := r.Cookie(internal.COOKIE_SESSION_NAME)
	if err == nil {
		s.logger.Info("user is already logged in, redirecting home")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := LoginPageData{}
	data.Title = "Sign In"

	if err := s.renderTemplate(w, r, "page.login", &data); err != nil {
		s.logger.WithError(err).Error("failed to render login page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.internalServerError(w)
		return
	}

	var form = new(loginForm)
	err := decoder.Decode(form, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode login form")
		s.internalServerError(w)
		return
	}

	if err := validate.Struct(form); err != nil {
		data := LoginPageData{Email: form.Email, Errors: fieldErrors(err)}
		data.Title = "Sign In"
		if err := s.renderTemplate(w, r, "page.login", &data); err != nil {
			s.logger.WithError(err).Error("failed to render login page")
			s.internalServerError(w)
		}
		return
	}

	user := types.User{
		Email:     strings.TrimSpace(form.Email),
		Name:      strings.TrimSpace(form.Name),
		UserType:  types.UserType(form.UserType),
		CreatedAt: time.Now().UTC(),
	}

	// The reserved address always signs in as the platform admin, whatever
	// the form said.
	if strings.EqualFold(user.Email, s.gate.AdminEmail()) {
		user.UserType = types.UserTypeAdmin
	} else if user.UserType == "" {
		user.UserType = types.UserTypeVolunteer
	}

	if err := s.users.SaveCurrent(user); err != nil {
		s.logger.WithError(err).Error("failed to persist current user")
		s.internalServerError(w)
		return
	}

	if err := s.writeSessionCookie(w, user); err != nil {
		s.logger.WithError(err).Error("failed to encode session cookie")
		s.internalServerError(w)
		return
	}

	s.redirectAfterLogin(w, r, user)
}

func (s *Service) handleGetRegister(w http.ResponseWriter, r *http.Request) {
	data := RegisterPageData{}
	data.Title = "Create Account"

	if err := s.renderTemplate(w, r, "page.register", &data); err != nil {
		s.logger.WithError(err).Error("failed to render register page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.internalServerError(w)
		return
	}

	var form = new(registerForm)
	err := decoder.Decode(form, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode register form")
		s.internalServerError(w)
		return
	}

	if err := validate.Struct(form); err != nil {
		data := RegisterPageData{Form: *form, Errors: fieldErrors(err)}
		data.Title = "Create Account"
		if err := s.renderTemplate(w, r, "page.register", &data); err != nil {
			s.logger.WithError(err).Error("failed to render register page")
			s.internalServerError(w)
		}
		return
	}

	user := types.User{
		Email:     strings.TrimSpace(form.Email),
		Name:      strings.TrimSpace(form.Name),
		UserType:  types.UserType(form.UserType),
		CreatedAt: time.Now().UTC(),
	}

	if strings.EqualFold(user.Email, s.gate.AdminEmail()) {
		user.UserType = types.UserTypeAdmin
	}

	if err := s.users.SaveCurrent(user); err != nil {
		s.logger.WithError(err).Error("failed to persist current user")
		s.internalServerError(w)
		return
	}

	if err := s.writeSessionCookie(w, user); err != nil {
		s.logger.WithError(err).Error("failed to encode session cookie")
		s.internalServerError(w)
		return
	}

	// Fresh accounts always go through onboarding.
	switch user.UserType {
	case types.UserTypeOrganization:
		http.Redirect(w, r, "/onboarding/organization", http.StatusSeeOther)
	case types.UserTypeAdmin:
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
	}
}

func (s *Service) handlePostLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Clear(); err != nil {
		s.logger.WithError(err).Error("failed to clear current user")
	}

	s.clearSessionCookie(w)

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Service) writeSessionCookie(w http.ResponseWriter, user types.User) error {
	session := Session{
		Email:    user.Email,
		Name:     user.Name,
		UserType: user.UserType,
	}

	encoded, err := s.cookie.Encode(internal.COOKIE_SESSION_NAME, session)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_SESSION_NAME,
		Value:    encoded,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.SessionMaxAgeSec,
		Path:     "/",
	})

	return nil
}

func (s *Service) redirectAfterLogin(w http.ResponseWriter, r *http.Request, user types.User) {
	switch user.UserType {
	case types.UserTypeAdmin:
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	case types.UserTypeOrganization:
		org, err := s.organizations.Get()
		if err != nil {
			s.logger.WithError(err).Error("failed to load organization profile")
		}
		if org == nil {
			http.Redirect(w, r, "/onboarding/organization", http.StatusSeeOther)
			return
		}
	default:
		prefs, err := s.preferences.Get()
		if err != nil {
			s.logger.WithError(err).Error("failed to load volunteer preferences")
		}
		if prefs == nil {
			http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
			return
		}
	}

	// Resume whatever page originally bounced to login.
	redirectCookie, err := r.Cookie(internal.COOKIE_REDIRECT_NAME)
	if err == nil {
		path := redirectCookie.Value
		s.clearRedirectCookie(w)
		http.Redirect(w, r, path, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
