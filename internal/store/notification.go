package store

import (
	"errors"
	"fmt"
	"sync"

	"volunteerhub/internal/localstore"
	"volunteerhub/internal/utils"
	"volunteerhub/pkg/types"
)

// MaxNotifications caps the persisted list at the most recent entries.
const MaxNotifications = 50

// NotificationRepository keeps the bell-dropdown history, newest first.
type NotificationRepository struct {
	store *localstore.Store

	mu sync.Mutex
}

func NewNotificationRepository(store *localstore.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) All() ([]types.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Add prepends the notification and trims the list to MaxNotifications.
func (r *NotificationRepository) Add(n types.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}

	list = append([]types.Notification{n}, list...)
	if len(list) > MaxNotifications {
		list = list[:MaxNotifications]
	}

	return r.persist(list)
}

func (r *NotificationRepository) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID == id {
			list[i].Read = true
		}
	}

	return r.persist(list)
}

func (r *NotificationRepository) MarkAllRead() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}

	for i := range list {
		list[i].Read = true
	}

	return r.persist(list)
}

func (r *NotificationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, n := range list {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	return r.persist(kept)
}

func (r *NotificationRepository) ClearAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.persist([]types.Notification{})
}

func (r *NotificationRepository) UnreadCount() (int, error) {
	list, err := r.All()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}

	return count, nil
}

func (r *NotificationRepository) load() ([]types.Notification, error) {
	var list []types.Notification
	err := r.store.Get(localstore.KeyNotifications, &list)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return []types.Notification{}, nil
		}
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}

	return list, nil
}

func (r *NotificationRepository) persist(list []types.Notification) error {
	return utils.ErrorWrapOrNil(
		r.store.Put(localstore.KeyNotifications, list),
		"failed to persist notifications",
	)
}
