package server

import (
	"errors"
	"net/http"

	"volunteerhub/pkg/types"
)

var errSessionMissing = errors.New("session not found in context")

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	session, _ := s.sessionFromContext(r.Context())

	if setter, ok := data.(types.NavbarDataSetter); ok {
		unread, err := s.notifications.UnreadCount()
		if err != nil {
			s.logger.WithError(err).Warn("failed to count unread notifications")
		}

		setter.SetNavbarData(types.NavbarData{
			IsAuthenticated: session.Email != "",
			UserEmail:       session.Email,
			UserName:        session.Name,
			UserType:        session.UserType,
			UnreadCount:     unread,
		})
	}

	if base, ok := data.(interface{ SetToast(t *types.Toast) }); ok {
		base.SetToast(s.toaster.Current())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
