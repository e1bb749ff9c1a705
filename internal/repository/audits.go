package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var auditColumns = []string{
	"id",
	"company_id",
	"title",
	"audit_type",
	"status",
	"auditor",
	"department",
	"scheduled_date",
	"completed_date",
	"created_by",
	"created_at",
	"updated_at",
}

var findingColumns = []string{
	"id",
	"company_id",
	"audit_id",
	"title",
	"description",
	"severity",
	"status",
	"created_by",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateAudit(ctx context.Context, a entity.Audit) error {
	const q = `INSERT INTO audits
		(id, company_id, title, audit_type, status, auditor, department, scheduled_date, completed_date, created_by,
		 created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, q,
		a.ID,
		a.CompanyID,
		a.Title,
		a.AuditType,
		a.Status,
		a.Auditor,
		a.Department,
		a.ScheduledDate,
		a.CompletedDate,
		a.CreatedBy,
		a.CreatedAt,
		a.UpdatedAt,
	)

	return err
}

func (r *Repository) Audit(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.Audit, error) {
	stmt := sq.Select(auditColumns...).
		From(AuditScope.Table).
		Where(Ownership(p, AuditScope)).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	return queryOne(ctx, r.db, stmt, scanAudit)
}

func (r *Repository) Audits(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.Audit, int, error) {
	stmt := sq.Select(append(auditColumns, totalCountColumn)...).
		From(AuditScope.Table).
		Where(BuildFilter(p, f, AuditScope)).
		PlaceholderFormat(sq.Dollar)

	return queryPage(ctx, r.db, applyPage(stmt, f, AuditScope), scanAudit)
}

func (r *Repository) UpdateAudit(ctx context.Context, a entity.Audit) error {
	const q = `UPDATE audits SET
		title = $1, audit_type = $2, status = $3, auditor = $4, department = $5, scheduled_date = $6,
		completed_date = $7, updated_at = $8
	WHERE id = $9 AND company_id = $10`

	result, err := r.db.Exec(ctx, q,
		a.Title,
		a.AuditType,
		a.Status,
		a.Auditor,
		a.Department,
		a.ScheduledDate,
		a.CompletedDate,
		a.UpdatedAt,
		a.ID,
		a.CompanyID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DeleteAudit removes the audit with its findings. Corrective actions raised from those findings stay and lose
// the link.
func (r *Repository) DeleteAudit(ctx context.Context, companyID, id uuid.UUID) error {
	return r.deleteWithChildren(ctx, AuditScope.Table, entity.ResourceAudit, companyID, id, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM findings WHERE company_id = $1 AND audit_id = $2`, companyID, id)
		if err != nil {
			return fmt.Errorf("delete findings: %w", err)
		}

		return nil
	})
}

func scanAudit(row pgx.Row, extra ...any) (a entity.Audit, err error) {
	dest := []any{
		&a.ID,
		&a.CompanyID,
		&a.Title,
		&a.AuditType,
		&a.Status,
		&a.Auditor,
		&a.Department,
		&a.ScheduledDate,
		&a.CompletedDate,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.Audit{}, notFound(err)
	}

	return a, nil
}

func (r *Repository) CreateFinding(ctx context.Context, f entity.Finding) error {
	const q = `INSERT INTO findings
		(id, company_id, audit_id, title, description, severity, status, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, q,
		f.ID,
		f.CompanyID,
		f.AuditID,
		f.Title,
		f.Description,
		f.Severity,
		f.Status,
		f.CreatedBy,
		f.CreatedAt,
		f.UpdatedAt,
	)

	return err
}

func (r *Repository) Finding(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.Finding, error) {
	stmt := sq.Select(findingColumns...).
		From(FindingScope.Table).
		Where(Ownership(p, FindingScope)).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	return queryOne(ctx, r.db, stmt, scanFinding)
}

func (r *Repository) Findings(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.Finding, int, error) {
	stmt := sq.Select(append(findingColumns, totalCountColumn)...).
		From(FindingScope.Table).
		Where(BuildFilter(p, f, FindingScope)).
		PlaceholderFormat(sq.Dollar)

	return queryPage(ctx, r.db, applyPage(stmt, f, FindingScope), scanFinding)
}

func (r *Repository) UpdateFinding(ctx context.Context, f entity.Finding) error {
	const q = `UPDATE findings SET title = $1, description = $2, severity = $3, status = $4, updated_at = $5
	WHERE id = $6 AND company_id = $7`

	result, err := r.db.Exec(ctx, q, f.Title, f.Description, f.Severity, f.Status, f.UpdatedAt, f.ID, f.CompanyID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteFinding(ctx context.Context, companyID, id uuid.UUID) error {
	return r.deleteWithChildren(ctx, FindingScope.Table, entity.ResourceFinding, companyID, id, nil)
}

func scanFinding(row pgx.Row, extra ...any) (f entity.Finding, err error) {
	dest := []any{
		&f.ID,
		&f.CompanyID,
		&f.AuditID,
		&f.Title,
		&f.Description,
		&f.Severity,
		&f.Status,
		&f.CreatedBy,
		&f.CreatedAt,
		&f.UpdatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.Finding{}, notFound(err)
	}

	return f, nil
}
