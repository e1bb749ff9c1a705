package repository

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var activityColumns = []string{
	"id",
	"company_id",
	"user_id",
	"action",
	"resource_type",
	"resource_id",
	"resource_title",
	"metadata",
	"ip_address",
	"user_agent",
	"created_at",
}

func (r *Repository) CreateActivity(ctx context.Context, e entity.ActivityLogEntry) error {
	const q = `INSERT INTO activity_log
		(id, company_id, user_id, action, resource_type, resource_id, resource_title, metadata, ip_address, user_agent,
		 created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	data, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = r.db.Exec(ctx, q,
		e.ID,
		e.CompanyID,
		e.UserID,
		e.Action,
		e.ResourceType,
		e.ResourceID,
		e.ResourceTitle,
		data,
		e.IPAddress,
		e.UserAgent,
		e.CreatedAt,
	)

	return err
}

func (r *Repository) Activity(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.ActivityLogEntry, int, error) {
	stmt := sq.Select(append(activityColumns, totalCountColumn)...).
		From(ActivityScope.Table).
		Where(BuildFilter(p, f, ActivityScope)).
		PlaceholderFormat(sq.Dollar)

	return queryPage(ctx, r.db, applyPage(stmt, f, ActivityScope), scanActivity)
}

func scanActivity(row pgx.Row, extra ...any) (e entity.ActivityLogEntry, err error) {
	var metadata []byte

	dest := []any{
		&e.ID,
		&e.CompanyID,
		&e.UserID,
		&e.Action,
		&e.ResourceType,
		&e.ResourceID,
		&e.ResourceTitle,
		&metadata,
		&e.IPAddress,
		&e.UserAgent,
		&e.CreatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.ActivityLogEntry{}, notFound(err)
	}

	err = json.Unmarshal(metadata, &e.Metadata)
	if err != nil {
		return entity.ActivityLogEntry{}, fmt.Errorf("unmarshal metadata: %w", err)
	}

	return e, nil
}
