package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var correctiveActionColumns = []string{
	"id",
	"company_id",
	"finding_id",
	"title",
	"description",
	"assigned_to",
	"priority",
	"status",
	"due_date",
	"completed_at",
	"created_by",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateCorrectiveAction(ctx context.Context, a entity.CorrectiveAction) error {
	const q = `INSERT INTO corrective_actions
		(id, company_id, finding_id, title, description, assigned_to, priority, status, due_date, completed_at,
		 created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, q,
		a.ID,
		a.CompanyID,
		a.FindingID,
		a.Title,
		a.Description,
		a.AssignedTo,
		a.Priority,
		a.Status,
		a.DueDate,
		a.CompletedAt,
		a.CreatedBy,
		a.CreatedAt,
		a.UpdatedAt,
	)

	return err
}

func (r *Repository) CorrectiveAction(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.CorrectiveAction, error) {
	stmt := sq.Select(correctiveActionColumns...).
		From(CorrectiveActionScope.Table).
		Where(Ownership(p, CorrectiveActionScope)).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	return queryOne(ctx, r.db, stmt, scanCorrectiveAction)
}

func (r *Repository) CorrectiveActions(
	ctx context.Context,
	p entity.Principal,
	f entity.ListFilter,
) ([]entity.CorrectiveAction, int, error) {
	stmt := sq.Select(append(correctiveActionColumns, totalCountColumn)...).
		From(CorrectiveActionScope.Table).
		Where(BuildFilter(p, f, CorrectiveActionScope)).
		PlaceholderFormat(sq.Dollar)

	return queryPage(ctx, r.db, applyPage(stmt, f, CorrectiveActionScope), scanCorrectiveAction)
}

// OverdueCorrectiveActions lists open actions of every company whose due date passed, oldest first.
// It serves the reminder job, which has no principal.
func (r *Repository) OverdueCorrectiveActions(ctx context.Context, now time.Time, limit uint64) ([]entity.CorrectiveAction, error) {
	stmt := sq.Select(correctiveActionColumns...).
		From(CorrectiveActionScope.Table).
		Where(sq.Lt{"due_date": entity.DateOnly(now)}).
		Where(sq.Eq{"status": []string{
			string(entity.CorrectiveActionStatusOpen),
			string(entity.CorrectiveActionStatusInProgress),
		}}).
		Where(sq.NotEq{"assigned_to": nil}).
		OrderBy("due_date", "id").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []entity.CorrectiveAction

	for rows.Next() {
		a, err := scanCorrectiveAction(rows)
		if err != nil {
			return nil, err
		}

		actions = append(actions, a)
	}

	return actions, rows.Err()
}

func (r *Repository) UpdateCorrectiveAction(ctx context.Context, a entity.CorrectiveAction) error {
	const q = `UPDATE corrective_actions SET
		title = $1, description = $2, assigned_to = $3, priority = $4, status = $5, due_date = $6, completed_at = $7,
		updated_at = $8
	WHERE id = $9 AND company_id = $10`

	result, err := r.db.Exec(ctx, q,
		a.Title,
		a.Description,
		a.AssignedTo,
		a.Priority,
		a.Status,
		a.DueDate,
		a.CompletedAt,
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

func (r *Repository) DeleteCorrectiveAction(ctx context.Context, companyID, id uuid.UUID) error {
	return r.deleteWithChildren(ctx, CorrectiveActionScope.Table, entity.ResourceCorrectiveAction, companyID, id, nil)
}

func scanCorrectiveAction(row pgx.Row, extra ...any) (a entity.CorrectiveAction, err error) {
	dest := []any{
		&a.ID,
		&a.CompanyID,
		&a.FindingID,
		&a.Title,
		&a.Description,
		&a.AssignedTo,
		&a.Priority,
		&a.Status,
		&a.DueDate,
		&a.CompletedAt,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.CorrectiveAction{}, notFound(err)
	}

	return a, nil
}
