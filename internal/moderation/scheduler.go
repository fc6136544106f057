package moderation

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler runs delayed tasks that simulate asynchronous review, such as the
// approval notification emitted shortly after an organization posts an
// opportunity. Every task is tied to a context: cancelling it (teardown,
// shutdown) stops the task before it fires, so no notification is emitted for
// a session that has ended.
type Scheduler struct {
	logger *logrus.Logger
	delay  time.Duration

	wg sync.WaitGroup
}

func NewScheduler(logger *logrus.Logger, delay time.Duration) *Scheduler {
	return &Scheduler{logger: logger, delay: delay}
}

// After runs fn once the configured delay elapses, unless ctx is cancelled
// first. The returned func cancels just this task.
func (s *Scheduler) After(ctx context.Context, fn func()) context.CancelFunc {
	taskCtx, cancel := context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-taskCtx.Done():
			s.logger.Debug("scheduled task cancelled before firing")
		case <-timer.C:
			fn()
		}
	}()

	return cancel
}

// Wait blocks until every scheduled task has finished or been cancelled.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
