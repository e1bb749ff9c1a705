package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var stockItemColumns = []string{
	"id",
	"company_id",
	"part_number",
	"serial_number",
	"description",
	"quantity",
	"min_quantity",
	"unit_price",
	"location",
	"condition",
	"expiry_date",
	"created_by",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateStockItem(ctx context.Context, s entity.StockItem) error {
	const q = `INSERT INTO stock_items
		(id, company_id, part_number, serial_number, description, quantity, min_quantity, unit_price, location,
		 condition, expiry_date, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, q,
		s.ID,
		s.CompanyID,
		s.PartNumber,
		s.SerialNumber,
		s.Description,
		s.Quantity,
		s.MinQuantity,
		s.UnitPrice,
		s.Location,
		s.Condition,
		s.ExpiryDate,
		s.CreatedBy,
		s.CreatedAt,
		s.UpdatedAt,
	)

	return err
}

func (r *Repository) StockItem(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.StockItem, error) {
	stmt := sq.Select(stockItemColumns...).
		From(StockItemScope.Table).
		Where(Ownership(p, StockItemScope)).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	return queryOne(ctx, r.db, stmt, scanStockItem)
}

func (r *Repository) StockItems(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.StockItem, int, error) {
	stmt := sq.Select(append(stockItemColumns, totalCountColumn)...).
		From(StockItemScope.Table).
		Where(BuildFilter(p, f, StockItemScope)).
		PlaceholderFormat(sq.Dollar)

	return queryPage(ctx, r.db, applyPage(stmt, f, StockItemScope), scanStockItem)
}

func (r *Repository) UpdateStockItem(ctx context.Context, s entity.StockItem) error {
	const q = `UPDATE stock_items SET
		part_number = $1, serial_number = $2, description = $3, quantity = $4, min_quantity = $5, unit_price = $6,
		location = $7, condition = $8, expiry_date = $9, updated_at = $10
	WHERE id = $11 AND company_id = $12`

	result, err := r.db.Exec(ctx, q,
		s.PartNumber,
		s.SerialNumber,
		s.Description,
		s.Quantity,
		s.MinQuantity,
		s.UnitPrice,
		s.Location,
		s.Condition,
		s.ExpiryDate,
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

func (r *Repository) DeleteStockItem(ctx context.Context, companyID, id uuid.UUID) error {
	return r.deleteWithChildren(ctx, StockItemScope.Table, entity.ResourceStockItem, companyID, id, nil)
}

func scanStockItem(row pgx.Row, extra ...any) (s entity.StockItem, err error) {
	dest := []any{
		&s.ID,
		&s.CompanyID,
		&s.PartNumber,
		&s.SerialNumber,
		&s.Description,
		&s.Quantity,
		&s.MinQuantity,
		&s.UnitPrice,
		&s.Location,
		&s.Condition,
		&s.ExpiryDate,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.StockItem{}, notFound(err)
	}

	return s, nil
}
