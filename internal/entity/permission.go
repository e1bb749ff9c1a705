package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type UserPermissionFlags struct {
	CanViewFlightRecords         bool `json:"canViewFlightRecords"`
	CanCreateFlightRecords       bool `json:"canCreateFlightRecords"`
	CanEditFlightRecords         bool `json:"canEditFlightRecords"`
	CanDeleteFlightRecords       bool `json:"canDeleteFlightRecords"`
	CanViewTechnicalPublications bool `json:"canViewTechnicalPublications"`
	CanViewSMSReports            bool `json:"canViewSmsReports"`
	CanCreateSMSReports          bool `json:"canCreateSmsReports"`
	CanManageSMSReports          bool `json:"canManageSmsReports"`
	CanViewAudits                bool `json:"canViewAudits"`
	CanManageAudits              bool `json:"canManageAudits"`
	CanViewCorrectiveActions     bool `json:"canViewCorrectiveActions"`
	CanManageCorrectiveActions   bool `json:"canManageCorrectiveActions"`
	CanViewStock                 bool `json:"canViewStock"`
	CanCreateStockRecord         bool `json:"canCreateStockRecord"`
	CanEditStockRecord           bool `json:"canEditStockRecord"`
	CanDeleteStockRecord         bool `json:"canDeleteStockRecord"`
	CanExportReports             bool `json:"canExportReports"`
	CanViewDashboard             bool `json:"canViewDashboard"`
}

type UserPermission struct {
	UserID    uuid.UUID     `json:"userId"`
	CompanyID uuid.UUID     `json:"companyId"`
	UpdatedBy uuid.NullUUID `json:"updatedBy"`
	UpdatedAt time.Time     `json:"updatedAt"`
	UserPermissionFlags
}

type UpdateUserPermissionInput struct {
	UserPermissionFlags
}

type Capability string

const (
	CapViewFlightRecords         Capability = "view_flight_records"
	CapCreateFlightRecords       Capability = "create_flight_records"
	CapEditFlightRecords         Capability = "edit_flight_records"
	CapDeleteFlightRecords       Capability = "delete_flight_records"
	CapViewTechnicalPublications Capability = "view_technical_publications"
	CapViewSMSReports            Capability = "view_sms_reports"
	CapCreateSMSReports          Capability = "create_sms_reports"
	CapManageSMSReports          Capability = "manage_sms_reports"
	CapViewAudits                Capability = "view_audits"
	CapManageAudits              Capability = "manage_audits"
	CapViewCorrectiveActions     Capability = "view_corrective_actions"
	CapManageCorrectiveActions   Capability = "manage_corrective_actions"
	CapViewStock                 Capability = "view_stock"
	CapCreateStock               Capability = "create_stock"
	CapEditStock                 Capability = "edit_stock"
	CapDeleteStock               Capability = "delete_stock"
	CapExportReports             Capability = "export_reports"
	CapViewDashboard             Capability = "view_dashboard"
)

// IsMutation reports whether the capability changes data. Readers never get those.
func (c Capability) IsMutation() bool {
	switch c {
	case CapCreateFlightRecords, CapEditFlightRecords, CapDeleteFlightRecords, CapCreateSMSReports,
		CapManageSMSReports, CapManageAudits, CapManageCorrectiveActions, CapCreateStock, CapEditStock, CapDeleteStock:
		return true
	}

	return false
}

func (f UserPermissionFlags) Allows(c Capability) bool {
	switch c {
	case CapViewFlightRecords:
		return f.CanViewFlightRecords
	case CapCreateFlightRecords:
		return f.CanCreateFlightRecords
	case CapEditFlightRecords:
		return f.CanEditFlightRecords
	case CapDeleteFlightRecords:
		return f.CanDeleteFlightRecords
	case CapViewTechnicalPublications:
		return f.CanViewTechnicalPublications
	case CapViewSMSReports:
		return f.CanViewSMSReports
	case CapCreateSMSReports:
		return f.CanCreateSMSReports
	case CapManageSMSReports:
		return f.CanManageSMSReports
	case CapViewAudits:
		return f.CanViewAudits
	case CapManageAudits:
		return f.CanManageAudits
	case CapViewCorrectiveActions:
		return f.CanViewCorrectiveActions
	case CapManageCorrectiveActions:
		return f.CanManageCorrectiveActions
	case CapViewStock:
		return f.CanViewStock
	case CapCreateStock:
		return f.CanCreateStockRecord
	case CapEditStock:
		return f.CanEditStockRecord
	case CapDeleteStock:
		return f.CanDeleteStockRecord
	case CapExportReports:
		return f.CanExportReports
	case CapViewDashboard:
		return f.CanViewDashboard
	}

	return false
}

func allFlags() UserPermissionFlags {
	return UserPermissionFlags{
		CanViewFlightRecords:         true,
		CanCreateFlightRecords:       true,
		CanEditFlightRecords:         true,
		CanDeleteFlightRecords:       true,
		CanViewTechnicalPublications: true,
		CanViewSMSReports:            true,
		CanCreateSMSReports:          true,
		CanManageSMSReports:          true,
		CanViewAudits:                true,
		CanManageAudits:              true,
		CanViewCorrectiveActions:     true,
		CanManageCorrectiveActions:   true,
		CanViewStock:                 true,
		CanCreateStockRecord:         true,
		CanEditStockRecord:           true,
		CanDeleteStockRecord:         true,
		CanExportReports:             true,
		CanViewDashboard:             true,
	}
}

func viewFlags() UserPermissionFlags {
	return UserPermissionFlags{
		CanViewFlightRecords:         true,
		CanViewTechnicalPublications: true,
		CanViewSMSReports:            true,
		CanViewAudits:                true,
		CanViewCorrectiveActions:     true,
		CanViewStock:                 true,
		CanViewDashboard:             true,
	}
}

// DefaultPermissions are the flags a user gets on first access.
func DefaultPermissions(p Privilege) UserPermissionFlags {
	switch p {
	case PrivilegeAdmin, PrivilegeManager:
		return allFlags()
	case PrivilegeTechnician:
		f := viewFlags()
		f.CanCreateFlightRecords = true
		f.CanCreateSMSReports = true
		f.CanCreateStockRecord = true
		f.CanManageCorrectiveActions = true

		return f
	default:
		return viewFlags()
	}
}
