package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

const selectPermission = `SELECT
		user_id,
		company_id,
		updated_by,
		updated_at,
		can_view_flight_records,
		can_create_flight_records,
		can_edit_flight_records,
		can_delete_flight_records,
		can_view_technical_publications,
		can_view_sms_reports,
		can_create_sms_reports,
		can_manage_sms_reports,
		can_view_audits,
		can_manage_audits,
		can_view_corrective_actions,
		can_manage_corrective_actions,
		can_view_stock,
		can_create_stock_record,
		can_edit_stock_record,
		can_delete_stock_record,
		can_export_reports,
		can_view_dashboard
	FROM user_permissions`

func (r *Repository) Permission(ctx context.Context, companyID, userID uuid.UUID) (entity.UserPermission, error) {
	q := selectPermission + ` WHERE user_id = $1 AND company_id = $2`

	return scanPermission(r.db.QueryRow(ctx, q, userID, companyID))
}

// CreatePermission inserts the row unless one already exists and returns whatever is stored afterwards.
func (r *Repository) CreatePermission(ctx context.Context, p entity.UserPermission) (entity.UserPermission, error) {
	const q = `INSERT INTO user_permissions
		(user_id, company_id, updated_by, updated_at,
		 can_view_flight_records, can_create_flight_records, can_edit_flight_records, can_delete_flight_records,
		 can_view_technical_publications, can_view_sms_reports, can_create_sms_reports, can_manage_sms_reports,
		 can_view_audits, can_manage_audits, can_view_corrective_actions, can_manage_corrective_actions,
		 can_view_stock, can_create_stock_record, can_edit_stock_record, can_delete_stock_record,
		 can_export_reports, can_view_dashboard)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	ON CONFLICT (user_id) DO NOTHING`

	args := append([]any{p.UserID, p.CompanyID, p.UpdatedBy, p.UpdatedAt}, flagArgs(p.UserPermissionFlags)...)

	_, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return entity.UserPermission{}, err
	}

	return r.Permission(ctx, p.CompanyID, p.UserID)
}

func (r *Repository) UpdatePermission(ctx context.Context, p entity.UserPermission) error {
	const q = `UPDATE user_permissions SET
		updated_by = $1, updated_at = $2,
		can_view_flight_records = $3, can_create_flight_records = $4, can_edit_flight_records = $5,
		can_delete_flight_records = $6, can_view_technical_publications = $7, can_view_sms_reports = $8,
		can_create_sms_reports = $9, can_manage_sms_reports = $10, can_view_audits = $11, can_manage_audits = $12,
		can_view_corrective_actions = $13, can_manage_corrective_actions = $14, can_view_stock = $15,
		can_create_stock_record = $16, can_edit_stock_record = $17, can_delete_stock_record = $18,
		can_export_reports = $19, can_view_dashboard = $20
	WHERE user_id = $21 AND company_id = $22`

	args := append([]any{p.UpdatedBy, p.UpdatedAt}, flagArgs(p.UserPermissionFlags)...)
	args = append(args, p.UserID, p.CompanyID)

	result, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func flagArgs(f entity.UserPermissionFlags) []any {
	return []any{
		f.CanViewFlightRecords,
		f.CanCreateFlightRecords,
		f.CanEditFlightRecords,
		f.CanDeleteFlightRecords,
		f.CanViewTechnicalPublications,
		f.CanViewSMSReports,
		f.CanCreateSMSReports,
		f.CanManageSMSReports,
		f.CanViewAudits,
		f.CanManageAudits,
		f.CanViewCorrectiveActions,
		f.CanManageCorrectiveActions,
		f.CanViewStock,
		f.CanCreateStockRecord,
		f.CanEditStockRecord,
		f.CanDeleteStockRecord,
		f.CanExportReports,
		f.CanViewDashboard,
	}
}

func scanPermission(row pgx.Row) (p entity.UserPermission, err error) {
	err = row.Scan(
		&p.UserID,
		&p.CompanyID,
		&p.UpdatedBy,
		&p.UpdatedAt,
		&p.CanViewFlightRecords,
		&p.CanCreateFlightRecords,
		&p.CanEditFlightRecords,
		&p.CanDeleteFlightRecords,
		&p.CanViewTechnicalPublications,
		&p.CanViewSMSReports,
		&p.CanCreateSMSReports,
		&p.CanManageSMSReports,
		&p.CanViewAudits,
		&p.CanManageAudits,
		&p.CanViewCorrectiveActions,
		&p.CanManageCorrectiveActions,
		&p.CanViewStock,
		&p.CanCreateStockRecord,
		&p.CanEditStockRecord,
		&p.CanDeleteStockRecord,
		&p.CanExportReports,
		&p.CanViewDashboard,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.UserPermission{}, entity.ErrNotFound
		}

		return entity.UserPermission{}, err
	}

	return p, nil
}
