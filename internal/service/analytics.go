package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/samandr77/microservices/mro/internal/analytics"
	"github.com/samandr77/microservices/mro/internal/entity"
)

const trendMonths = 6

func sum(counts map[string]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}

	return total
}

// groups turns counts into rated groups ordered by count, then key.
func groups(counts map[string]int, total int) []entity.GroupCount {
	out := make([]entity.GroupCount, 0, len(counts))

	for k, n := range counts {
		out = append(out, entity.GroupCount{Key: k, Count: n, Rate: analytics.Rate(n, total)})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Key < out[j].Key
	})

	return out
}

func windowQuery(kind entity.ResourceKind, dateColumn string, w analytics.Window) entity.CountQuery {
	from, to := w.From, w.Last()

	return entity.CountQuery{Resource: kind, DateColumn: dateColumn, From: &from, To: &to}
}

// Dashboard computes every section concurrently. Only the monthly corrective action series may fail quietly.
func (s *Service) Dashboard(ctx context.Context) (entity.Dashboard, error) {
	p, err := s.authorize(ctx, entity.CapViewDashboard)
	if err != nil {
		return entity.Dashboard{}, err
	}

	now := time.Now()
	d := entity.Dashboard{GeneratedAt: now}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Audits, err = s.auditSummary(gctx, p)
		return err
	})
	g.Go(func() (err error) {
		d.Findings, err = s.findingSummary(gctx, p)
		return err
	})
	g.Go(func() (err error) {
		d.CorrectiveActions, err = s.correctiveActionSummary(gctx, p, now)
		return err
	})
	g.Go(func() (err error) {
		d.SMSReports, err = s.smsSummary(gctx, p)
		return err
	})
	g.Go(func() (err error) {
		d.FlightRecords, err = s.flightRecordSummary(gctx, p, now)
		return err
	})
	g.Go(func() (err error) {
		d.Stock, err = s.repo.StockSummary(gctx, p.CompanyID)
		if err != nil {
			return fmt.Errorf("stock summary: %w", err)
		}

		return nil
	})

	err = g.Wait()
	if err != nil {
		return entity.Dashboard{}, err
	}

	return d, nil
}

func (s *Service) auditSummary(ctx context.Context, p entity.Principal) (entity.AuditSummary, error) {
	byStatus, err := s.repo.CountBy(ctx, p, entity.CountQuery{Resource: entity.ResourceAudit, GroupBy: "status"})
	if err != nil {
		return entity.AuditSummary{}, fmt.Errorf("count audits: %w", err)
	}

	total := sum(byStatus)

	return entity.AuditSummary{
		Total:          total,
		ByStatus:       byStatus,
		CompletionRate: analytics.Rate(byStatus[string(entity.AuditStatusCompleted)], total),
	}, nil
}

func (s *Service) findingSummary(ctx context.Context, p entity.Principal) (entity.FindingSummary, error) {
	bySeverity, err := s.repo.CountBy(ctx, p, entity.CountQuery{Resource: entity.ResourceFinding, GroupBy: "severity"})
	if err != nil {
		return entity.FindingSummary{}, fmt.Errorf("count findings: %w", err)
	}

	open, err := s.repo.Count(ctx, p, entity.CountQuery{
		Resource: entity.ResourceFinding,
		Where:    map[string]any{"status": string(entity.FindingStatusOpen)},
	})
	if err != nil {
		return entity.FindingSummary{}, fmt.Errorf("count open findings: %w", err)
	}

	return entity.FindingSummary{Total: sum(bySeverity), Open: open, BySeverity: bySeverity}, nil
}

func (s *Service) correctiveActionSummary(
	ctx context.Context,
	p entity.Principal,
	now time.Time,
) (entity.CorrectiveActionSummary, error) {
	q := entity.CountQuery{Resource: entity.ResourceCorrectiveAction, GroupBy: "status"}

	byStatus, err := s.repo.CountBy(ctx, p, q)
	if err != nil {
		return entity.CorrectiveActionSummary{}, fmt.Errorf("count corrective actions by status: %w", err)
	}

	q.GroupBy = "priority"

	byPriority, err := s.repo.CountBy(ctx, p, q)
	if err != nil {
		return entity.CorrectiveActionSummary{}, fmt.Errorf("count corrective actions by priority: %w", err)
	}

	overdue, err := s.repo.CountOverdueCorrectiveActions(ctx, p, now)
	if err != nil {
		return entity.CorrectiveActionSummary{}, fmt.Errorf("count overdue corrective actions: %w", err)
	}

	thisMonth, err := s.repo.Count(ctx, p, windowQuery(entity.ResourceCorrectiveAction, "created_at", analytics.Month(now)))
	if err != nil {
		return entity.CorrectiveActionSummary{}, fmt.Errorf("count corrective actions this month: %w", err)
	}

	lastMonth, err := s.repo.Count(ctx, p,
		windowQuery(entity.ResourceCorrectiveAction, "created_at", analytics.MonthsAgo(now, 1)))
	if err != nil {
		return entity.CorrectiveActionSummary{}, fmt.Errorf("count corrective actions last month: %w", err)
	}

	total := sum(byStatus)
	change := analytics.Change(thisMonth, lastMonth)

	return entity.CorrectiveActionSummary{
		Total:            total,
		ByStatus:         byStatus,
		ByPriority:       byPriority,
		Overdue:          overdue,
		CompletionRate:   analytics.Rate(byStatus[string(entity.CorrectiveActionStatusCompleted)], total),
		CreatedThisMonth: thisMonth,
		CreatedLastMonth: lastMonth,
		MoMChange:        change,
		Trend:            string(analytics.Classify(change)),
		MonthlyTrend:     s.monthlyTrend(ctx, p, now),
	}, nil
}

// monthlyTrend is optional: on failure it logs and returns an empty series.
func (s *Service) monthlyTrend(ctx context.Context, p entity.Principal, now time.Time) []entity.MonthlyCount {
	w := analytics.LastMonths(now, trendMonths)

	counts, err := s.repo.MonthlyCorrectiveActions(ctx, p, w.From, w.To)
	if err != nil {
		slog.WarnContext(ctx, "monthly corrective action trend", "error", err)
		return []entity.MonthlyCount{}
	}

	byMonth := make(map[string]entity.MonthlyCount, len(counts))
	for _, c := range counts {
		byMonth[c.Month] = c
	}

	series := make([]entity.MonthlyCount, 0, trendMonths)

	for _, key := range analytics.MonthKeys(now, trendMonths) {
		c := byMonth[key]
		c.Month = key
		series = append(series, c)
	}

	return series
}

func (s *Service) smsSummary(ctx context.Context, p entity.Principal) (entity.SMSSummary, error) {
	q := entity.CountQuery{Resource: entity.ResourceSMSReport, GroupBy: "status"}

	byStatus, err := s.repo.CountBy(ctx, p, q)
	if err != nil {
		return entity.SMSSummary{}, fmt.Errorf("count sms reports by status: %w", err)
	}

	q.GroupBy = "severity"

	bySeverity, err := s.repo.CountBy(ctx, p, q)
	if err != nil {
		return entity.SMSSummary{}, fmt.Errorf("count sms reports by severity: %w", err)
	}

	return entity.SMSSummary{Total: sum(byStatus), ByStatus: byStatus, BySeverity: bySeverity}, nil
}

func (s *Service) flightRecordSummary(
	ctx context.Context,
	p entity.Principal,
	now time.Time,
) (entity.FlightRecordSummary, error) {
	var (
		out entity.FlightRecordSummary
		err error
	)

	counts := []struct {
		dst *int
		q   entity.CountQuery
	}{
		{&out.Total, entity.CountQuery{Resource: entity.ResourceFlightRecord}},
		{&out.ThisMonth, windowQuery(entity.ResourceFlightRecord, "flight_date", analytics.Month(now))},
		{&out.ThisWeek, windowQuery(entity.ResourceFlightRecord, "flight_date", analytics.Week(now))},
		{&out.Today, windowQuery(entity.ResourceFlightRecord, "flight_date", analytics.Day(now))},
		{&out.YearToDate, windowQuery(entity.ResourceFlightRecord, "flight_date", analytics.YearToDate(now))},
		{&out.WithDefects, entity.CountQuery{
			Resource: entity.ResourceFlightRecord,
			Where:    map[string]any{"has_defect": true},
		}},
	}

	for _, c := range counts {
		*c.dst, err = s.repo.Count(ctx, p, c.q)
		if err != nil {
			return entity.FlightRecordSummary{}, fmt.Errorf("count flight records: %w", err)
		}
	}

	out.DefectRate = analytics.Rate(out.WithDefects, out.Total)

	return out, nil
}

// CorrectiveActionAnalytics breaks corrective actions created in the optional range down by status, priority and
// assignee. Unassigned actions are grouped under "unassigned".
func (s *Service) CorrectiveActionAnalytics(
	ctx context.Context,
	from, to *time.Time,
) (entity.CorrectiveActionAnalytics, error) {
	p, err := s.authorize(ctx, entity.CapViewCorrectiveActions)
	if err != nil {
		return entity.CorrectiveActionAnalytics{}, err
	}

	if from != nil && to != nil && to.Before(*from) {
		return entity.CorrectiveActionAnalytics{}, entity.NewValidationError("to", "must not be before from")
	}

	q := entity.CountQuery{Resource: entity.ResourceCorrectiveAction, From: from, To: to}
	dims := map[string]map[string]int{"status": nil, "priority": nil, "assigned_to": nil}

	for col := range dims {
		q.GroupBy = col

		dims[col], err = s.repo.CountBy(ctx, p, q)
		if err != nil {
			return entity.CorrectiveActionAnalytics{}, fmt.Errorf("count corrective actions by %s: %w", col, err)
		}
	}

	byAssignee := dims["assigned_to"]
	if n, ok := byAssignee[""]; ok {
		delete(byAssignee, "")
		byAssignee["unassigned"] = n
	}

	total := sum(dims["status"])

	return entity.CorrectiveActionAnalytics{
		Total:          total,
		CompletionRate: analytics.Rate(dims["status"][string(entity.CorrectiveActionStatusCompleted)], total),
		ByStatus:       groups(dims["status"], total),
		ByPriority:     groups(dims["priority"], total),
		ByAssignee:     groups(byAssignee, total),
		MonthlyTrend:   s.monthlyTrend(ctx, p, time.Now()),
	}, nil
}
