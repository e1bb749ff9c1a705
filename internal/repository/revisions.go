package repository

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var revisionColumns = []string{
	"id",
	"company_id",
	"parent_id",
	"change_type",
	"change_description",
	"changed_fields",
	"previous_values",
	"new_values",
	"modified_by",
	"created_at",
}

func (r *Repository) CreateRevision(ctx context.Context, rev entity.Revision) error {
	const q = `INSERT INTO tech_publication_revisions
		(id, company_id, parent_id, change_type, change_description, changed_fields, previous_values, new_values,
		 modified_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	changed, err := json.Marshal(rev.ChangedFields)
	if err != nil {
		return fmt.Errorf("marshal changed fields: %w", err)
	}

	prev, err := json.Marshal(rev.PreviousValues)
	if err != nil {
		return fmt.Errorf("marshal previous values: %w", err)
	}

	next, err := json.Marshal(rev.NewValues)
	if err != nil {
		return fmt.Errorf("marshal new values: %w", err)
	}

	_, err = r.db.Exec(ctx, q,
		rev.ID,
		rev.CompanyID,
		rev.ParentID,
		rev.ChangeType,
		rev.ChangeDescription,
		changed,
		prev,
		next,
		rev.ModifiedBy,
		rev.CreatedAt,
	)

	return err
}

func (r *Repository) Revisions(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.Revision, int, error) {
	stmt := sq.Select(append(revisionColumns, totalCountColumn)...).
		From(RevisionScope.Table).
		Where(BuildFilter(p, f, RevisionScope)).
		PlaceholderFormat(sq.Dollar)

	return queryPage(ctx, r.db, applyPage(stmt, f, RevisionScope), scanRevision)
}

func scanRevision(row pgx.Row, extra ...any) (rev entity.Revision, err error) {
	var changed, prev, next []byte

	dest := []any{
		&rev.ID,
		&rev.CompanyID,
		&rev.ParentID,
		&rev.ChangeType,
		&rev.ChangeDescription,
		&changed,
		&prev,
		&next,
		&rev.ModifiedBy,
		&rev.CreatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.Revision{}, notFound(err)
	}

	err = json.Unmarshal(changed, &rev.ChangedFields)
	if err != nil {
		return entity.Revision{}, fmt.Errorf("unmarshal changed fields: %w", err)
	}

	err = json.Unmarshal(prev, &rev.PreviousValues)
	if err != nil {
		return entity.Revision{}, fmt.Errorf("unmarshal previous values: %w", err)
	}

	err = json.Unmarshal(next, &rev.NewValues)
	if err != nil {
		return entity.Revision{}, fmt.Errorf("unmarshal new values: %w", err)
	}

	return rev, nil
}
