package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mro_job_runs_total",
		Help: "Background job runs by result",
	}, []string{"job", "result"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mro_job_run_duration_seconds",
		Help:    "Background job run latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
)

// Job runs Fn every Interval. The first run happens after one Interval unless Immediate is set, so restarts do
// not repeat work that was just done. A zero Timeout leaves the run bounded only by the scheduler context.
type Job struct {
	Name      string
	Interval  time.Duration
	Timeout   time.Duration
	Immediate bool
	Fn        func(ctx context.Context) error
}

type Scheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers j. Jobs without a positive interval are disabled and ignored.
func (s *Scheduler) Add(j Job) *Scheduler {
	if j.Interval <= 0 || j.Fn == nil {
		slog.Info("job disabled", "job", j.Name)
		return s
	}

	s.jobs = append(s.jobs, j)

	return s
}

func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)

		go s.loop(ctx, j)
	}
}

// Stop waits for the running jobs. Cancel the Start context first.
func (s *Scheduler) Stop() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, j Job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.Name)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	if j.Immediate {
		s.run(ctx, l, j)
	}

	for {
		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "job stopped")
			return
		case <-ticker.C:
			s.run(ctx, l, j)
		}
	}
}

func (s *Scheduler) run(ctx context.Context, l *slog.Logger, j Job) {
	if j.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	start := time.Now()

	l.DebugContext(ctx, "job started")

	result := "ok"

	err := safeRun(ctx, l, j)
	if err != nil {
		result = "error"

		l.ErrorContext(ctx, "job failed", "error", err)
	} else {
		l.DebugContext(ctx, "job done", "took", time.Since(start))
	}

	runsTotal.WithLabelValues(j.Name, result).Inc()
	runDuration.WithLabelValues(j.Name).Observe(time.Since(start).Seconds())
}

func safeRun(ctx context.Context, l *slog.Logger, j Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("job %s panicked: %v", j.Name, r)
		}
	}()

	return j.Fn(ctx)
}
