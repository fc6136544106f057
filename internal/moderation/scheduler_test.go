package moderation

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stretchr/testify/assert"
)

func newTestScheduler(delay time.Duration) *Scheduler {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewScheduler(logger, delay)
}

func TestScheduler_FiresAfterDelay(t *testing.T) {
	s := newTestScheduler(10 * time.Millisecond)

	var fired atomic.Bool
	s.After(context.Background(), func() {
		fired.Store(true)
	})

	s.Wait()
	assert.True(t, fired.Load())
}

func TestScheduler_CancelStopsTask(t *testing.T) {
	s := newTestScheduler(50 * time.Millisecond)

	var fired atomic.Bool
	cancel := s.After(context.Background(), func() {
		fired.Store(true)
	})
	cancel()

	s.Wait()
	assert.False(t, fired.Load())
}

func TestScheduler_ParentContextCancelsAllTasks(t *testing.T) {
	s := newTestScheduler(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	var fired atomic.Int32
	s.After(ctx, func() { fired.Add(1) })
	s.After(ctx, func() { fired.Add(1) })
	cancel()

	s.Wait()
	assert.Zero(t, fired.Load())
}
