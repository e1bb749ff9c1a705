package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var userColumns = []string{
	"u.id",
	"u.company_id",
	"c.name",
	"u.username",
	"u.email",
	"u.password_hash",
	"u.first_name",
	"u.last_name",
	"u.privilege",
	"u.created_at",
}

func selectUsers() sq.SelectBuilder {
	return sq.Select(userColumns...).
		From("users u").
		Join("companies c ON c.id = u.company_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *Repository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	return queryOne(ctx, r.db, selectUsers().Where(sq.Eq{"u.id": id}), scanUser)
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	return queryOne(ctx, r.db, selectUsers().Where("lower(u.email) = lower(?)", email), scanUser)
}

// CompanyUser returns a user only when it belongs to the company.
func (r *Repository) CompanyUser(ctx context.Context, companyID, id uuid.UUID) (entity.User, error) {
	return queryOne(ctx, r.db, selectUsers().Where(sq.Eq{"u.id": id, "u.company_id": companyID}), scanUser)
}

func (r *Repository) CompanyUsers(
	ctx context.Context,
	companyID uuid.UUID,
	privileges ...entity.Privilege,
) ([]entity.User, error) {
	stmt := selectUsers().Where(sq.Eq{"u.company_id": companyID}).OrderBy("u.last_name", "u.first_name", "u.id")

	if len(privileges) > 0 {
		values := make([]string, 0, len(privileges))
		for _, p := range privileges {
			values = append(values, string(p))
		}

		stmt = stmt.Where(sq.Eq{"u.privilege": values})
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func scanUser(row pgx.Row, extra ...any) (u entity.User, err error) {
	dest := []any{
		&u.ID,
		&u.CompanyID,
		&u.CompanyName,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Privilege,
		&u.CreatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.User{}, notFound(err)
	}

	return u, nil
}
