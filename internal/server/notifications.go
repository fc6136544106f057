package server

import (
	"net/http"

	"volunteerhub/pkg/types"

	"github.com/alexedwards/flow"
)

type NotificationsPageData struct {
	types.BasePageData
	Notifications []types.Notification
	Unread        int
}

func (s *Service) handleNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := s.notifications.All()
	if err != nil {
		s.logger.WithError(err).Error("failed to load notifications")
		s.internalServerError(w)
		return
	}

	unread, err := s.notifications.UnreadCount()
	if err != nil {
		s.logger.WithError(err).Error("failed to count unread notifications")
		s.internalServerError(w)
		return
	}

	data := NotificationsPageData{
		Notifications: list,
		Unread:        unread,
	}
	data.Title = "Notifications"

	if err := s.renderTemplate(w, r, "page.notifications", &data); err != nil {
		s.logger.WithError(err).Error("failed to render notifications page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID := flow.Param(r.Context(), "id")

	// Unknown ids are ignored rather than surfaced.
	if err := s.notifications.MarkRead(notificationID); err != nil {
		s.logger.WithError(err).Error("failed to mark notification read")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/notifications", http.StatusSeeOther)
}

func (s *Service) handlePostNotificationsReadAll(w http.ResponseWriter, r *http.Request) {
	if err := s.notifications.MarkAllRead(); err != nil {
		s.logger.WithError(err).Error("failed to mark notifications read")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/notifications", http.StatusSeeOther)
}

func (s *Service) handlePostNotificationDelete(w http.ResponseWriter, r *http.Request) {
	notificationID := flow.Param(r.Context(), "id")

	if err := s.notifications.Delete(notificationID); err != nil {
		s.logger.WithError(err).Error("failed to delete notification")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/notifications", http.StatusSeeOther)
}

func (s *Service) handlePostNotificationsClear(w http.ResponseWriter, r *http.Request) {
	if err := s.notifications.ClearAll(); err != nil {
		s.logger.WithError(err).Error("failed to clear notifications")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/notifications", http.StatusSeeOther)
}

func (s *Service) handlePostToastDismiss(w http.ResponseWriter, r *http.Request) {
	s.toaster.Dismiss(flow.Param(r.Context(), "id"))

	target := r.Header.Get("Referer")
	if target == "" {
		target = "/"
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
