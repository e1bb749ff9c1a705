package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	Login(ctx context.Context, in entity.LoginInput) (entity.AccessToken, error)
	Me(ctx context.Context) (entity.Principal, error)
	CompanyUsers(ctx context.Context) ([]entity.User, error)

	MyPermissions(ctx context.Context) (entity.UserPermission, error)
	UserPermissions(ctx context.Context, userID uuid.UUID) (entity.UserPermission, error)
	UpdateUserPermissions(ctx context.Context, userID uuid.UUID, in entity.UpdateUserPermissionInput) (entity.UserPermission, error)

	CreateFlightRecord(ctx context.Context, in entity.CreateFlightRecordInput, files []entity.FileUpload) (entity.FlightRecord, error)
	GetFlightRecord(ctx context.Context, id uuid.UUID) (entity.FlightRecord, error)
	ListFlightRecords(ctx context.Context, f entity.ListFilter) (entity.Page[entity.FlightRecord], error)
	UpdateFlightRecord(ctx context.Context, id uuid.UUID, in entity.UpdateFlightRecordInput, files []entity.FileUpload) (entity.FlightRecord, error)
	DeleteFlightRecord(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error)

	CreateTechPublication(ctx context.Context, in entity.CreateTechPublicationInput, file *entity.FileUpload) (entity.TechPublication, error)
	GetTechPublication(ctx context.Context, id uuid.UUID) (entity.TechPublication, error)
	ListTechPublications(ctx context.Context, f entity.ListFilter) (entity.Page[entity.TechPublication], error)
	UpdateTechPublication(ctx context.Context, id uuid.UUID, in entity.UpdateTechPublicationInput, file *entity.FileUpload) (entity.TechPublication, error)
	DeleteTechPublication(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error)
	ListRevisions(ctx context.Context, publicationID uuid.UUID, f entity.ListFilter) (entity.Page[entity.Revision], error)

	CreateSMSReport(ctx context.Context, in entity.CreateSMSReportInput, files []entity.FileUpload) (entity.SMSReport, error)
	GetSMSReport(ctx context.Context, id uuid.UUID) (entity.SMSReport, error)
	ListSMSReports(ctx context.Context, f entity.ListFilter) (entity.Page[entity.SMSReport], error)
	UpdateSMSReport(ctx context.Context, id uuid.UUID, in entity.UpdateSMSReportInput, files []entity.FileUpload) (entity.SMSReport, error)
	DeleteSMSReport(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error)

	CreateAudit(ctx context.Context, in entity.CreateAuditInput) (entity.Audit, error)
	GetAudit(ctx context.Context, id uuid.UUID) (entity.Audit, error)
	ListAudits(ctx context.Context, f entity.ListFilter) (entity.Page[entity.Audit], error)
	UpdateAudit(ctx context.Context, id uuid.UUID, in entity.UpdateAuditInput) (entity.Audit, error)
	DeleteAudit(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error)

	CreateFinding(ctx context.Context, in entity.CreateFindingInput) (entity.Finding, error)
	GetFinding(ctx context.Context, id uuid.UUID) (entity.Finding, error)
	ListFindings(ctx context.Context, f entity.ListFilter) (entity.Page[entity.Finding], error)
	UpdateFinding(ctx context.Context, id uuid.UUID, in entity.UpdateFindingInput) (entity.Finding, error)
	DeleteFinding(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error)

	CreateCorrectiveAction(ctx context.Context, in entity.CreateCorrectiveActionInput, files []entity.FileUpload) (entity.CorrectiveAction, error)
	GetCorrectiveAction(ctx context.Context, id uuid.UUID) (entity.CorrectiveAction, error)
	ListCorrectiveActions(ctx context.Context, f entity.ListFilter) (entity.Page[entity.CorrectiveAction], error)
	UpdateCorrectiveAction(ctx context.Context, id uuid.UUID, in entity.UpdateCorrectiveActionInput, files []entity.FileUpload) (entity.CorrectiveAction, error)
	DeleteCorrectiveAction(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error)

	CreateStockItem(ctx context.Context, in entity.CreateStockItemInput) (entity.StockItem, error)
	GetStockItem(ctx context.Context, id uuid.UUID) (entity.StockItem, error)
	ListStockItems(ctx context.Context, f entity.ListFilter) (entity.Page[entity.StockItem], error)
	UpdateStockItem(ctx context.Context, id uuid.UUID, in entity.UpdateStockItemInput) (entity.StockItem, error)
	DeleteStockItem(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error)

	ListAttachments(ctx context.Context, kind entity.ResourceKind, parentID uuid.UUID) ([]entity.Attachment, error)
	DownloadAttachment(ctx context.Context, id uuid.UUID) (entity.Download, error)

	Dashboard(ctx context.Context) (entity.Dashboard, error)
	CorrectiveActionAnalytics(ctx context.Context, from, to *time.Time) (entity.CorrectiveActionAnalytics, error)
	ExportReport(ctx context.Context, kind entity.ReportKind, format entity.ReportFormat, from, to *time.Time) (entity.Artifact, error)
	ListActivity(ctx context.Context, f entity.ListFilter) (entity.Page[entity.ActivityLogEntry], error)
	CurrentWeather(ctx context.Context, q entity.WeatherQuery) (entity.Weather, error)
}

// @title MRO API
// @version 1.0
// @description Multi-tenant maintenance, repair and overhaul records: flight records, technical publications,
// @description safety reports, audits, corrective actions and stock.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	responder
	s Service
}

func NewHandler(s Service, production bool) *Handler {
	return &Handler{
		responder: responder{production: production},
		s:         s,
	}
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Success      200 {string} string "ok"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok\n"))
}
