package notify

import (
	"fmt"
	"sync"
	"time"

	"volunteerhub/internal/utils"
	"volunteerhub/pkg/types"
)

// Per-type auto-dismiss durations.
const (
	durationSignup    = 4 * time.Second
	durationApproved  = 5 * time.Second
	durationCancelled = 4 * time.Second
	durationReminder  = 6 * time.Second
	durationUpdated   = 5 * time.Second
	durationEventGone = 6 * time.Second
	durationFeedback  = 7 * time.Second
)

func newToast(t types.NotificationType, title, message string, duration time.Duration) types.Toast {
	return types.Toast{
		ID:       utils.NanoID(),
		Type:     t,
		Severity: SeverityFor(t),
		Title:    title,
		Message:  message,
		Duration: duration,
	}
}

func SignupSuccessToast(title string) types.Toast {
	return newToast(
		types.NotificationSignupConfirmation,
		"Signup Successful!",
		fmt.Sprintf("You've successfully signed up for %q. We'll be in touch soon!", title),
		durationSignup,
	)
}

func OpportunityApprovedToast(title string) types.Toast {
	return newToast(
		types.NotificationOpportunityApproved,
		"Opportunity Approved!",
		fmt.Sprintf("Your volunteering opportunity %q was approved by the admin.", title),
		durationApproved,
	)
}

func SignupCancelledToast(title string) types.Toast {
	return newToast(
		types.NotificationSignupCancellation,
		"Signup Cancelled",
		fmt.Sprintf("You have cancelled your signup for %q.", title),
		durationCancelled,
	)
}

func EventReminderToast(title, startTime string) types.Toast {
	return newToast(
		types.NotificationEventReminder,
		"Event Reminder",
		fmt.Sprintf("Reminder: %q starts tomorrow at %s.", title, startTime),
		durationReminder,
	)
}

func EventUpdatedToast(title string) types.Toast {
	return newToast(
		types.NotificationEventUpdate,
		"Event Updated",
		fmt.Sprintf("The details of %q have changed. Please check the updated information.", title),
		durationUpdated,
	)
}

func EventCancelledToast(title string) types.Toast {
	return newToast(
		types.NotificationEventCancelled,
		"Event Cancelled",
		fmt.Sprintf("The opportunity %q has been cancelled.", title),
		durationEventGone,
	)
}

func FeedbackRequestToast(title string) types.Toast {
	return newToast(
		types.NotificationPostEventFeedback,
		"Thank You for Volunteering!",
		fmt.Sprintf("Thank you for volunteering at %q! Please share your feedback.", title),
		durationFeedback,
	)
}

// Toaster is the single toast slot. Showing a toast supersedes the current
// one, and a toast older than its duration is treated as dismissed.
type Toaster struct {
	mu      sync.Mutex
	current *types.Toast
	shownAt time.Time
}

func NewToaster() *Toaster {
	return &Toaster{}
}

func (t *Toaster) Show(toast types.Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = &toast
	t.shownAt = time.Now()
}

// Current returns the active toast, or nil if none is showing or the last one
// has expired.
func (t *Toaster) Current() *types.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil
	}

	if time.Since(t.shownAt) >= t.current.Duration {
		t.current = nil
		return nil
	}

	toast := *t.current
	return &toast
}

// Dismiss clears the slot if the given toast is still the one showing.
func (t *Toaster) Dismiss(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil && t.current.ID == id {
		t.current = nil
	}
}
