package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/pkg/postgres"
)

const totalCountColumn = "COUNT(*) OVER() AS total_count"

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

type scanFunc[T any] func(row pgx.Row, extra ...any) (T, error)

// queryPage runs a list statement whose last selected column is the window total count.
func queryPage[T any](ctx context.Context, db *pgxpool.Pool, stmt sq.SelectBuilder, scan scanFunc[T]) ([]T, int, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		items []T
		total int
	)

	for rows.Next() {
		item, err := scan(rows, &total)
		if err != nil {
			return nil, 0, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func queryOne[T any](ctx context.Context, db *pgxpool.Pool, stmt sq.SelectBuilder, scan scanFunc[T]) (T, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		var zero T
		return zero, err
	}

	return scan(db.QueryRow(ctx, sql, args...))
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrNotFound
	}

	return err
}

// deleteWithChildren removes the parent row together with its attachment rows, and whatever children does,
// in one transaction. Blobs are not touched here.
func (r *Repository) deleteWithChildren(
	ctx context.Context,
	table string,
	kind entity.ResourceKind,
	companyID, id uuid.UUID,
	children func(tx pgx.Tx) error,
) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`DELETE FROM attachments WHERE company_id = $1 AND resource_type = $2 AND parent_id = $3`,
			companyID, kind, id,
		)
		if err != nil {
			return fmt.Errorf("delete attachments: %w", err)
		}

		if children != nil {
			err = children(tx)
			if err != nil {
				return err
			}
		}

		result, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND company_id = $2`, table), id, companyID)
		if err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}

		if result.RowsAffected() == 0 {
			return entity.ErrNotFound
		}

		return nil
	})
}
