package analytics_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mro/internal/analytics"
)

func TestRate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		count int
		total int
		want  float64
	}{
		{name: "zero total", count: 0, total: 0, want: 0},
		{name: "zero total with count", count: 3, total: 0, want: 0},
		{name: "six of ten", count: 6, total: 10, want: 60},
		{name: "one third", count: 1, total: 3, want: 33.33},
		{name: "two thirds rounds up", count: 2, total: 3, want: 66.67},
		{name: "half of a percent rounds away from zero", count: 1, total: 800, want: 0.13},
		{name: "all", count: 7, total: 7, want: 100},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			got := analytics.Rate(tt.count, tt.total)
			r.False(math.IsNaN(got))
			r.False(math.IsInf(got, 0))
			r.InDelta(tt.want, got, 0.0001)
		})
	}
}

func TestChangeAndTrend(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		current    int
		previous   int
		wantChange float64
		wantTrend  analytics.Trend
	}{
		{name: "no previous", current: 10, previous: 0, wantChange: 0, wantTrend: analytics.TrendStable},
		{name: "doubled", current: 20, previous: 10, wantChange: 100, wantTrend: analytics.TrendUp},
		{name: "halved", current: 5, previous: 10, wantChange: -50, wantTrend: analytics.TrendDown},
		{name: "exactly five percent is stable", current: 21, previous: 20, wantChange: 5, wantTrend: analytics.TrendStable},
		{name: "minus five percent is stable", current: 19, previous: 20, wantChange: -5, wantTrend: analytics.TrendStable},
		{name: "just above five", current: 106, previous: 100, wantChange: 6, wantTrend: analytics.TrendUp},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			change := analytics.Change(tt.current, tt.previous)
			r.InDelta(tt.wantChange, change, 0.0001)
			r.Equal(tt.wantTrend, analytics.Classify(change))
		})
	}
}

func TestWindows(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	// Wednesday.
	now := time.Date(2024, 3, 13, 14, 30, 0, 0, time.UTC)

	day := analytics.Day(now)
	r.Equal(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), day.From)
	r.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), day.To)
	r.True(day.Contains(now))

	week := analytics.Week(now)
	r.Equal(time.Monday, week.From.Weekday())
	r.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), week.From)
	r.Equal(time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), week.To)

	sunday := analytics.Week(time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC))
	r.Equal(week, sunday)

	month := analytics.Month(now)
	r.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), month.From)
	r.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), month.To)

	prev := analytics.MonthsAgo(now, 3)
	r.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), prev.From)
	r.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), prev.To)

	ytd := analytics.YearToDate(now)
	r.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ytd.From)
	r.Equal(day.To, ytd.To)
	r.False(ytd.Contains(day.To))

	r.Equal([]string{"2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}, analytics.MonthKeys(now, 6))

	last := analytics.LastMonths(now, 6)
	r.Equal(time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), last.From)
	r.Equal(month.To, last.To)
}
