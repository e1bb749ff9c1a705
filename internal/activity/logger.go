// Package activity persists audit trail entries off the request path.
package activity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samandr77/microservices/mro/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=logger.go -destination=../mocks/activity.go -package=mocks -mock_names=Repository=MockActivityRepository

const writeTimeout = time.Second * 5

type Repository interface {
	CreateActivity(ctx context.Context, e entity.ActivityLogEntry) error
}

// Logger queues entries in a bounded channel. Record never blocks: when the queue is full the entry is dropped
// and logged.
type Logger struct {
	l     *slog.Logger
	repo  Repository
	queue chan entity.ActivityLogEntry
	wg    *sync.WaitGroup
}

func NewLogger(repo Repository, size int) *Logger {
	if size <= 0 {
		size = 1
	}

	return &Logger{
		l:     slog.Default().WithGroup("activity"),
		repo:  repo,
		queue: make(chan entity.ActivityLogEntry, size),
		wg:    &sync.WaitGroup{},
	}
}

func (a *Logger) Record(ctx context.Context, e entity.ActivityLogEntry) {
	select {
	case a.queue <- e:
	default:
		a.l.WarnContext(ctx, "activity queue is full, entry dropped",
			"action", e.Action,
			"resource_type", e.ResourceType,
			"user_id", e.UserID,
		)
	}
}

// Run starts the worker. After ctx is done the worker drains what is already queued and exits; Stop waits for it.
func (a *Logger) Run(ctx context.Context) *Logger {
	a.wg.Add(1)

	go func() {
		defer a.wg.Done()

		for {
			select {
			case e := <-a.queue:
				a.write(e)
			case <-ctx.Done():
				a.drain()
				a.l.Info("activity worker stopped")

				return
			}
		}
	}()

	return a
}

func (a *Logger) drain() {
	for {
		select {
		case e := <-a.queue:
			a.write(e)
		default:
			return
		}
	}
}

func (a *Logger) write(e entity.ActivityLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := a.repo.CreateActivity(ctx, e)
	if err != nil {
		a.l.ErrorContext(ctx, "write activity entry", "error", err, "action", e.Action, "resource_id", e.ResourceID.UUID)
	}
}

func (a *Logger) Stop() {
	a.wg.Wait()
}
