package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var smsReportColumns = []string{
	"id",
	"company_id",
	"user_id",
	"title",
	"description",
	"hazard_category",
	"severity",
	"status",
	"occurred_at",
	"location",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateSMSReport(ctx context.Context, s entity.SMSReport) error {
	const q = `INSERT INTO sms_reports
		(id, company_id, user_id, title, description, hazard_category, severity, status, occurred_at, location,
		 created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, q,
		s.ID,
		s.CompanyID,
		s.UserID,
		s.Title,
		s.Description,
		s.HazardCategory,
		s.Severity,
		s.Status,
		s.OccurredAt,
		s.Location,
		s.CreatedAt,
		s.UpdatedAt,
	)

	return err
}

// SMSReport is self scoped: a non admin principal gets ErrNotFound for somebody else's report.
func (r *Repository) SMSReport(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.SMSReport, error) {
	stmt := sq.Select(smsReportColumns...).
		From(SMSReportScope.Table).
		Where(Ownership(p, SMSReportScope)).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	return queryOne(ctx, r.db, stmt, scanSMSReport)
}

func (r *Repository) SMSReports(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.SMSReport, int, error) {
	stmt := sq.Select(append(smsReportColumns, totalCountColumn)...).
		From(SMSReportScope.Table).
		Where(BuildFilter(p, f, SMSReportScope)).
		PlaceholderFormat(sq.Dollar)

	return queryPage(ctx, r.db, applyPage(stmt, f, SMSReportScope), scanSMSReport)
}

func (r *Repository) UpdateSMSReport(ctx context.Context, s entity.SMSReport) error {
	const q = `UPDATE sms_reports SET
		title = $1, description = $2, hazard_category = $3, severity = $4, status = $5, occurred_at = $6, location = $7,
		updated_at = $8
	WHERE id = $9 AND company_id = $10`

	result, err := r.db.Exec(ctx, q,
		s.Title,
		s.Description,
		s.HazardCategory,
		s.Severity,
		s.Status,
		s.OccurredAt,
		s.Location,
		s.UpdatedAt,
		s.ID,
		s.CompanyID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteSMSReport(ctx context.Context, companyID, id uuid.UUID) error {
	return r.deleteWithChildren(ctx, SMSReportScope.Table, entity.ResourceSMSReport, companyID, id, nil)
}

func scanSMSReport(row pgx.Row, extra ...any) (s entity.SMSReport, err error) {
	dest := []any{
		&s.ID,
		&s.CompanyID,
		&s.UserID,
		&s.Title,
		&s.Description,
		&s.HazardCategory,
		&s.Severity,
		&s.Status,
		&s.OccurredAt,
		&s.Location,
		&s.CreatedAt,
		&s.UpdatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.SMSReport{}, notFound(err)
	}

	return s, nil
}
