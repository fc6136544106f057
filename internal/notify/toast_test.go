package notify

import (
	"testing"
	"time"

	"volunteerhub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToaster_EmptyByDefault(t *testing.T) {
	toaster := NewToaster()
	assert.Nil(t, toaster.Current())
}

func TestToaster_ShowSupersedesCurrent(t *testing.T) {
	toaster := NewToaster()

	toaster.Show(SignupSuccessToast("First"))
	toaster.Show(EventUpdatedToast("Second"))

	current := toaster.Current()
	require.NotNil(t, current)
	assert.Equal(t, types.NotificationEventUpdate, current.Type)
	assert.Contains(t, current.Message, `"Second"`)
}

func TestToaster_ExpiresAfterDuration(t *testing.T) {
	toaster := NewToaster()

	toast := newToast(types.NotificationSignupConfirmation, "Quick", "gone soon", 5*time.Millisecond)
	toaster.Show(toast)
	require.NotNil(t, toaster.Current())

	time.Sleep(10 * time.Millisecond)
	assert.Nil(t, toaster.Current())
}

func TestToaster_DismissOnlyMatchingID(t *testing.T) {
	toaster := NewToaster()

	toast := SignupSuccessToast("Dismissable")
	toaster.Show(toast)

	toaster.Dismiss("some-other-id")
	assert.NotNil(t, toaster.Current())

	toaster.Dismiss(toast.ID)
	assert.Nil(t, toaster.Current())
}

func TestToastDurationsVaryByType(t *testing.T) {
	assert.Equal(t, 4*time.Second, SignupSuccessToast("x").Duration)
	assert.Equal(t, 5*time.Second, OpportunityApprovedToast("x").Duration)
	assert.Equal(t, 7*time.Second, FeedbackRequestToast("x").Duration)
}
