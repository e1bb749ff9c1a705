package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mro/pkg/job"
)

func TestScheduler_RunsUntilContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var calls, panics atomic.Int32

	s := job.NewScheduler().
		Add(job.Job{
			Name:     "counter",
			Interval: 10 * time.Millisecond,
			Fn: func(context.Context) error {
				calls.Add(1)
				return errors.New("keeps running after errors")
			},
		}).
		Add(job.Job{
			Name:     "panicking",
			Interval: 10 * time.Millisecond,
			Fn: func(context.Context) error {
				panics.Add(1)
				panic("boom")
			},
		}).
		Add(job.Job{
			Name: "disabled",
			Fn: func(context.Context) error {
				t.Error("disabled job must not run")
				return nil
			},
		})

	s.Start(ctx)

	require.Eventually(t, func() bool {
		return calls.Load() >= 3 && panics.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()
}

func TestScheduler_FirstRunWaitsForInterval(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var delayed, immediate atomic.Int32

	s := job.NewScheduler().
		Add(job.Job{
			Name:     "delayed",
			Interval: time.Hour,
			Fn: func(context.Context) error {
				delayed.Add(1)
				return nil
			},
		}).
		Add(job.Job{
			Name:      "immediate",
			Interval:  time.Hour,
			Immediate: true,
			Fn: func(context.Context) error {
				immediate.Add(1)
				return nil
			},
		})

	s.Start(ctx)

	require.Eventually(t, func() bool { return immediate.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.Zero(t, delayed.Load())

	cancel()
	s.Stop()
}

func TestScheduler_Timeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deadline := make(chan bool, 1)

	s := job.NewScheduler().Add(job.Job{
		Name:      "bounded",
		Interval:  time.Hour,
		Timeout:   time.Minute,
		Immediate: true,
		Fn: func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			deadline <- ok

			return nil
		},
	})

	s.Start(ctx)

	select {
	case ok := <-deadline:
		require.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}

	cancel()
	s.Stop()
}
