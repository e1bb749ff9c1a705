package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var techPublicationColumns = []string{
	"id",
	"company_id",
	"title",
	"category",
	"revision_number",
	"revision_date",
	"owner",
	"description",
	"uploaded_by",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateTechPublication(ctx context.Context, tp entity.TechPublication) error {
	const q = `INSERT INTO technical_publications
		(id, company_id, title, category, revision_number, revision_date, owner, description, uploaded_by, created_at,
		 updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, q,
		tp.ID,
		tp.CompanyID,
		tp.Title,
		tp.Category,
		tp.RevisionNumber,
		tp.RevisionDate,
		tp.Owner,
		tp.Description,
		tp.UploadedBy,
		tp.CreatedAt,
		tp.UpdatedAt,
	)

	return err
}

func (r *Repository) TechPublication(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.TechPublication, error) {
	stmt := sq.Select(techPublicationColumns...).
		From(TechPublicationScope.Table).
		Where(Ownership(p, TechPublicationScope)).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	return queryOne(ctx, r.db, stmt, scanTechPublication)
}

func (r *Repository) TechPublications(
	ctx context.Context,
	p entity.Principal,
	f entity.ListFilter,
) ([]entity.TechPublication, int, error) {
	stmt := sq.Select(append(techPublicationColumns, totalCountColumn)...).
		From(TechPublicationScope.Table).
		Where(BuildFilter(p, f, TechPublicationScope)).
		PlaceholderFormat(sq.Dollar)

	return queryPage(ctx, r.db, applyPage(stmt, f, TechPublicationScope), scanTechPublication)
}

func (r *Repository) UpdateTechPublication(ctx context.Context, tp entity.TechPublication) error {
	const q = `UPDATE technical_publications SET
		title = $1, category = $2, revision_number = $3, revision_date = $4, owner = $5, description = $6, updated_at = $7
	WHERE id = $8 AND company_id = $9`

	result, err := r.db.Exec(ctx, q,
		tp.Title,
		tp.Category,
		tp.RevisionNumber,
		tp.RevisionDate,
		tp.Owner,
		tp.Description,
		tp.UpdatedAt,
		tp.ID,
		tp.CompanyID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteTechPublication(ctx context.Context, companyID, id uuid.UUID) error {
	return r.deleteWithChildren(ctx, TechPublicationScope.Table, entity.ResourceTechPublication, companyID, id, nil)
}

func scanTechPublication(row pgx.Row, extra ...any) (tp entity.TechPublication, err error) {
	dest := []any{
		&tp.ID,
		&tp.CompanyID,
		&tp.Title,
		&tp.Category,
		&tp.RevisionNumber,
		&tp.RevisionDate,
		&tp.Owner,
		&tp.Description,
		&tp.UploadedBy,
		&tp.CreatedAt,
		&tp.UpdatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.TechPublication{}, notFound(err)
	}

	return tp, nil
}
