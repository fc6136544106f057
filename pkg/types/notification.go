package types

import (
	"time"
)

// NotificationType is the semantic action vocabulary shared by notifications
// and toasts.
type NotificationType string

const (
	NotificationOpportunityApproved NotificationType = "opportunity_approved"
	NotificationSignupConfirmation  NotificationType = "signup_confirmation"
	NotificationSignupCancellation  NotificationType = "signup_cancellation"
	NotificationEventReminder       NotificationType = "event_reminder"
	NotificationEventUpdate         NotificationType = "event_update"
	NotificationEventCancelled      NotificationType = "event_cancelled"
	NotificationPostEventFeedback   NotificationType = "post_event_feedback"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification persists in the bell dropdown, newest-first, capped at the 50
// most recent.
type Notification struct {
	ID            string           `json:"id"`
	Type          NotificationType `json:"type"`
	Severity      Severity         `json:"severity"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	OpportunityID string           `json:"opportunityId,omitempty"`
	Read          bool             `json:"read"`
	Timestamp     time.Time        `json:"timestamp"`
}

// Toast is transient: single slot, superseded by the next toast, dismissed
// after its per-type duration.
type Toast struct {
	ID       string           `json:"id"`
	Type     NotificationType `json:"type"`
	Severity Severity         `json:"severity"`
	Title    string           `json:"title"`
	Message  string           `json:"message"`
	Duration time.Duration    `json:"duration"`
}
