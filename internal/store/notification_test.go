package store

import (
	"fmt"
	"testing"

	"volunteerhub/internal/localstore"
	"volunteerhub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotificationRepo(t *testing.T) *NotificationRepository {
	t.Helper()

	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return NewNotificationRepository(ls)
}

func testNotification(id string) types.Notification {
	return types.Notification{
		ID:       id,
		Type:     types.NotificationSignupConfirmation,
		Severity: types.SeveritySuccess,
		Title:    "Signup Confirmed",
		Message:  "message " + id,
	}
}

func TestNotificationRepository_AddPrependsNewestFirst(t *testing.T) {
	repo := newTestNotificationRepo(t)

	require.NoError(t, repo.Add(testNotification("first")))
	require.NoError(t, repo.Add(testNotification("second")))

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].ID)
	assert.Equal(t, "first", all[1].ID)
}

func TestNotificationRepository_AddCapsAtFifty(t *testing.T) {
	repo := newTestNotificationRepo(t)

	for i := 0; i < MaxNotifications+5; i++ {
		require.NoError(t, repo.Add(testNotification(fmt.Sprintf("n%d", i))))
	}

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, MaxNotifications)
	assert.Equal(t, fmt.Sprintf("n%d", MaxNotifications+4), all[0].ID, "newest kept")
	assert.Equal(t, "n5", all[MaxNotifications-1].ID, "oldest five dropped")
}

func TestNotificationRepository_MarkReadAndUnreadCount(t *testing.T) {
	repo := newTestNotificationRepo(t)

	require.NoError(t, repo.Add(testNotification("a")))
	require.NoError(t, repo.Add(testNotification("b")))

	unread, err := repo.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, repo.MarkRead("a"))

	unread, err = repo.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	require.NoError(t, repo.MarkAllRead())

	unread, err = repo.UnreadCount()
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestNotificationRepository_DeleteAndClear(t *testing.T) {
	repo := newTestNotificationRepo(t)

	require.NoError(t, repo.Add(testNotification("a")))
	require.NoError(t, repo.Add(testNotification("b")))

	require.NoError(t, repo.Delete("a"))

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)

	require.NoError(t, repo.ClearAll())

	all, err = repo.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
