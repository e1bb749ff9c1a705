package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var attachmentColumns = []string{
	"id",
	"company_id",
	"resource_type",
	"parent_id",
	"file_name",
	"file_key",
	"file_size",
	"file_type",
	"uploaded_by",
	"created_at",
}

func (r *Repository) CreateAttachment(ctx context.Context, a entity.Attachment) error {
	const q = `INSERT INTO attachments
		(id, company_id, resource_type, parent_id, file_name, file_key, file_size, file_type, uploaded_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, q,
		a.ID,
		a.CompanyID,
		a.ResourceType,
		a.ParentID,
		a.FileName,
		a.FileKey,
		a.FileSize,
		a.FileType,
		a.UploadedBy,
		a.CreatedAt,
	)

	return err
}

func (r *Repository) Attachment(ctx context.Context, companyID, id uuid.UUID) (entity.Attachment, error) {
	stmt := sq.Select(attachmentColumns...).
		From("attachments").
		Where(sq.Eq{"company_id": companyID, "id": id}).
		PlaceholderFormat(sq.Dollar)

	return queryOne(ctx, r.db, stmt, scanAttachment)
}

// Attachments lists the files of a parent, oldest first.
func (r *Repository) Attachments(
	ctx context.Context,
	companyID uuid.UUID,
	kind entity.ResourceKind,
	parentID uuid.UUID,
) ([]entity.Attachment, error) {
	stmt := sq.Select(attachmentColumns...).
		From("attachments").
		Where(sq.Eq{"company_id": companyID, "resource_type": kind, "parent_id": parentID}).
		OrderBy("created_at", "id").
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

	attachments := make([]entity.Attachment, 0)

	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}

		attachments = append(attachments, a)
	}

	return attachments, rows.Err()
}

func (r *Repository) DeleteAttachments(ctx context.Context, companyID uuid.UUID, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := sq.Delete("attachments").
		Where(sq.Eq{"company_id": companyID, "id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)

	return err
}

func scanAttachment(row pgx.Row, extra ...any) (a entity.Attachment, err error) {
	dest := []any{
		&a.ID,
		&a.CompanyID,
		&a.ResourceType,
		&a.ParentID,
		&a.FileName,
		&a.FileKey,
		&a.FileSize,
		&a.FileType,
		&a.UploadedBy,
		&a.CreatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.Attachment{}, notFound(err)
	}

	return a, nil
}
