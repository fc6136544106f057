// Package notify builds the user-facing event records: persisted bell
// notifications and transient toasts, both sharing one semantic vocabulary.
package notify

import (
	"fmt"
	"time"

	"volunteerhub/internal/utils"
	"volunteerhub/pkg/types"
)

// SeverityFor maps a semantic action to its display class.
func SeverityFor(t types.NotificationType) types.Severity {
	switch t {
	case types.NotificationOpportunityApproved, types.NotificationSignupConfirmation:
		return types.SeveritySuccess
	case types.NotificationEventReminder, types.NotificationEventUpdate, types.NotificationPostEventFeedback:
		return types.SeverityInfo
	case types.NotificationSignupCancellation:
		return types.SeverityWarning
	case types.NotificationEventCancelled:
		return types.SeverityError
	default:
		return types.SeverityInfo
	}
}

func newNotification(t types.NotificationType, title, message, opportunityID string) types.Notification {
	return types.Notification{
		ID:            utils.NanoID(),
		Type:          t,
		Severity:      SeverityFor(t),
		Title:         title,
		Message:       message,
		OpportunityID: opportunityID,
		Read:          false,
		Timestamp:     time.Now(),
	}
}

func OpportunityApproved(opportunityID, title string) types.Notification {
	return newNotification(
		types.NotificationOpportunityApproved,
		"Opportunity Approved",
		fmt.Sprintf("Your volunteering opportunity %q was approved by the admin.", title),
		opportunityID,
	)
}

func SignupConfirmation(opportunityID, title string) types.Notification {
	return newNotification(
		types.NotificationSignupConfirmation,
		"Signup Confirmation",
		fmt.Sprintf("You successfully signed up for %q.", title),
		opportunityID,
	)
}

func SignupCancellation(opportunityID, title string) types.Notification {
	return newNotification(
		types.NotificationSignupCancellation,
		"Signup Cancelled",
		fmt.Sprintf("You have cancelled your signup for %q.", title),
		opportunityID,
	)
}

func EventReminder(opportunityID, title, startTime string) types.Notification {
	return newNotification(
		types.NotificationEventReminder,
		"Event Reminder",
		fmt.Sprintf("Reminder: %q starts tomorrow at %s.", title, startTime),
		opportunityID,
	)
}

func EventUpdate(opportunityID, title string) types.Notification {
	return newNotification(
		types.NotificationEventUpdate,
		"Event Updated",
		fmt.Sprintf("The details of %q have changed.", title),
		opportunityID,
	)
}

func EventCancelled(opportunityID, title string) types.Notification {
	return newNotification(
		types.NotificationEventCancelled,
		"Event Cancelled",
		fmt.Sprintf("The opportunity %q has been cancelled.", title),
		opportunityID,
	)
}

func PostEventFeedback(opportunityID, title string) types.Notification {
	return newNotification(
		types.NotificationPostEventFeedback,
		"Thank You for Volunteering",
		fmt.Sprintf("Thank you for volunteering at %q! Please share feedback.", title),
		opportunityID,
	)
}
