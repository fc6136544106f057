package notify

import (
	"testing"

	"volunteerhub/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestSeverityFor(t *testing.T) {
	cases := []struct {
		in   types.NotificationType
		want types.Severity
	}{
		{types.NotificationOpportunityApproved, types.SeveritySuccess},
		{types.NotificationSignupConfirmation, types.SeveritySuccess},
		{types.NotificationEventReminder, types.SeverityInfo},
		{types.NotificationEventUpdate, types.SeverityInfo},
		{types.NotificationPostEventFeedback, types.SeverityInfo},
		{types.NotificationSignupCancellation, types.SeverityWarning},
		{types.NotificationEventCancelled, types.SeverityError},
		{types.NotificationType("unknown"), types.SeverityInfo},
	}

	for _, tc := range cases {
		t.Run(string(tc.in), func(t *testing.T) {
			assert.Equal(t, tc.want, SeverityFor(tc.in))
		})
	}
}

func TestBuildersCarrySeverityAndOpportunityID(t *testing.T) {
	n := SignupConfirmation("opp-7", "Park Cleanup")
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, types.NotificationSignupConfirmation, n.Type)
	assert.Equal(t, types.SeveritySuccess, n.Severity)
	assert.Equal(t, "opp-7", n.OpportunityID)
	assert.Contains(t, n.Message, `"Park Cleanup"`)
	assert.False(t, n.Read)
	assert.False(t, n.Timestamp.IsZero())

	cancelled := EventCancelled("opp-7", "Park Cleanup")
	assert.Equal(t, types.SeverityError, cancelled.Severity)
}
