package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var countScopes = map[entity.ResourceKind]Scope{
	entity.ResourceFlightRecord:     FlightRecordScope,
	entity.ResourceTechPublication:  TechPublicationScope,
	entity.ResourceSMSReport:        SMSReportScope,
	entity.ResourceAudit:            AuditScope,
	entity.ResourceFinding:          FindingScope,
	entity.ResourceCorrectiveAction: CorrectiveActionScope,
	entity.ResourceStockItem:        StockItemScope,
}

// countColumns are the only columns a CountQuery may group, filter or window on.
var countColumns = map[entity.ResourceKind][]string{
	entity.ResourceFlightRecord:     {"status", "has_defect", "aircraft_registration", "flight_date", "created_at"},
	entity.ResourceTechPublication:  {"category", "created_at", "updated_at"},
	entity.ResourceSMSReport:        {"status", "severity", "hazard_category", "occurred_at", "created_at"},
	entity.ResourceAudit:            {"status", "audit_type", "scheduled_date", "created_at"},
	entity.ResourceFinding:          {"status", "severity", "audit_id", "created_at"},
	entity.ResourceCorrectiveAction: {"status", "priority", "assigned_to", "due_date", "completed_at", "created_at"},
	entity.ResourceStockItem:        {"condition", "location", "created_at"},
}

func countScope(q entity.CountQuery) (Scope, error) {
	s, ok := countScopes[q.Resource]
	if !ok {
		return Scope{}, fmt.Errorf("count %q: unsupported resource", q.Resource)
	}

	allowed := countColumns[q.Resource]

	check := func(col string) error {
		if col != "" && !slices.Contains(allowed, col) {
			return fmt.Errorf("count %q: column %q is not allowed", q.Resource, col)
		}

		return nil
	}

	err := check(q.GroupBy)
	if err != nil {
		return Scope{}, err
	}

	err = check(q.DateColumn)
	if err != nil {
		return Scope{}, err
	}

	for col := range q.Where {
		err = check(col)
		if err != nil {
			return Scope{}, err
		}
	}

	return s, nil
}

func countWhere(p entity.Principal, q entity.CountQuery, s Scope) sq.And {
	cond := Ownership(p, s)

	if len(q.Where) > 0 {
		cond = append(cond, sq.Eq(q.Where))
	}

	dateCol := q.DateColumn
	if dateCol == "" {
		dateCol = "created_at"
	}

	if q.From != nil {
		cond = append(cond, sq.GtOrEq{dateCol: *q.From})
	}

	if q.To != nil {
		cond = append(cond, sq.LtOrEq{dateCol: *q.To})
	}

	return cond
}

func (r *Repository) Count(ctx context.Context, p entity.Principal, q entity.CountQuery) (int, error) {
	s, err := countScope(q)
	if err != nil {
		return 0, err
	}

	sql, args, err := sq.Select("COUNT(*)").
		From(s.Table).
		Where(countWhere(p, q, s)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountBy groups the rows by q.GroupBy. NULL values are reported under the empty key.
func (r *Repository) CountBy(ctx context.Context, p entity.Principal, q entity.CountQuery) (map[string]int, error) {
	if q.GroupBy == "" {
		return nil, fmt.Errorf("count %q: group by column is required", q.Resource)
	}

	s, err := countScope(q)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("COALESCE(%s::text, '')", q.GroupBy)

	sql, args, err := sq.Select(key, "COUNT(*)").
		From(s.Table).
		Where(countWhere(p, q, s)).
		GroupBy(key).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)

	for rows.Next() {
		var (
			k string
			n int
		)

		err = rows.Scan(&k, &n)
		if err != nil {
			return nil, err
		}

		counts[k] = n
	}

	return counts, rows.Err()
}

// MonthlyCorrectiveActions buckets actions created in [from, to) by month, with how many of them are completed.
func (r *Repository) MonthlyCorrectiveActions(
	ctx context.Context,
	p entity.Principal,
	from, to time.Time,
) ([]entity.MonthlyCount, error) {
	const month = "to_char(date_trunc('month', created_at), 'YYYY-MM')"

	sql, args, err := sq.Select(
		month,
		"COUNT(*)",
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", entity.CorrectiveActionStatusCompleted),
	).
		From(CorrectiveActionScope.Table).
		Where(Ownership(p, CorrectiveActionScope)).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		GroupBy(month).
		OrderBy(month).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []entity.MonthlyCount

	for rows.Next() {
		var c entity.MonthlyCount

		err = rows.Scan(&c.Month, &c.Total, &c.Completed)
		if err != nil {
			return nil, err
		}

		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (r *Repository) CountOverdueCorrectiveActions(ctx context.Context, p entity.Principal, now time.Time) (int, error) {
	sql, args, err := sq.Select("COUNT(*)").
		From(CorrectiveActionScope.Table).
		Where(Ownership(p, CorrectiveActionScope)).
		Where(sq.Lt{"due_date": entity.DateOnly(now)}).
		Where(sq.NotEq{"status": []string{
			string(entity.CorrectiveActionStatusCompleted),
			string(entity.CorrectiveActionStatusCancelled),
		}}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) StockSummary(ctx context.Context, companyID uuid.UUID) (entity.StockSummary, error) {
	const q = `SELECT
		COUNT(*),
		COALESCE(SUM(quantity), 0),
		COUNT(*) FILTER (WHERE quantity <= min_quantity),
		COALESCE(SUM(quantity * unit_price), 0)
	FROM stock_items
	WHERE company_id = $1`

	var s entity.StockSummary

	err := r.db.QueryRow(ctx, q, companyID).Scan(&s.Items, &s.Quantity, &s.LowStock, &s.TotalValue)
	if err != nil {
		return entity.StockSummary{}, err
	}

	return s, nil
}
