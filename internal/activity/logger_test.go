package activity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/activity"
	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/internal/mocks"
)

func newEntry(action entity.ActivityAction) entity.ActivityLogEntry {
	return entity.ActivityLogEntry{
		ID:           uuid.Must(uuid.NewV4()),
		CompanyID:    uuid.Must(uuid.NewV4()),
		UserID:       uuid.Must(uuid.NewV4()),
		Action:       action,
		ResourceType: entity.ResourceStockItem,
		CreatedAt:    time.Now(),
	}
}

func TestLogger_WritesQueuedEntries(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepository(ctrl)

	first, second := newEntry(entity.ActionCreate), newEntry(entity.ActionDelete)

	gomock.InOrder(
		repo.EXPECT().CreateActivity(gomock.Any(), first).Return(nil),
		repo.EXPECT().CreateActivity(gomock.Any(), second).Return(errors.New("db is down")),
	)

	l := activity.NewLogger(repo, 10)

	// Queued before the worker starts, so both are written by the drain at the latest.
	l.Record(context.Background(), first)
	l.Record(context.Background(), second)

	ctx, cancel := context.WithCancel(context.Background())
	l.Run(ctx)

	cancel()
	l.Stop()

	r.True(ctrl.Satisfied())
}

func TestLogger_DropsOnOverflow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepository(ctrl)

	kept := newEntry(entity.ActionCreate)

	repo.EXPECT().CreateActivity(gomock.Any(), kept).Return(nil)

	l := activity.NewLogger(repo, 1)

	done := make(chan struct{})

	go func() {
		defer close(done)

		l.Record(context.Background(), kept)
		l.Record(context.Background(), newEntry(entity.ActionUpdate))
		l.Record(context.Background(), newEntry(entity.ActionExport))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full queue")
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.Run(ctx)

	cancel()
	l.Stop()
}
