package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	CompanyUser(ctx context.Context, companyID, id uuid.UUID) (entity.User, error)
	CompanyUsers(ctx context.Context, companyID uuid.UUID, privileges ...entity.Privilege) ([]entity.User, error)

	Permission(ctx context.Context, companyID, userID uuid.UUID) (entity.UserPermission, error)
	CreatePermission(ctx context.Context, p entity.UserPermission) (entity.UserPermission, error)
	UpdatePermission(ctx context.Context, p entity.UserPermission) error

	CreateFlightRecord(ctx context.Context, fr entity.FlightRecord) error
	FlightRecord(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.FlightRecord, error)
	FlightRecords(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.FlightRecord, int, error)
	UpdateFlightRecord(ctx context.Context, fr entity.FlightRecord) error
	DeleteFlightRecord(ctx context.Context, companyID, id uuid.UUID) error

	CreateTechPublication(ctx context.Context, tp entity.TechPublication) error
	TechPublication(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.TechPublication, error)
	TechPublications(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.TechPublication, int, error)
	UpdateTechPublication(ctx context.Context, tp entity.TechPublication) error
	DeleteTechPublication(ctx context.Context, companyID, id uuid.UUID) error
	CreateRevision(ctx context.Context, rev entity.Revision) error
	Revisions(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.Revision, int, error)

	CreateSMSReport(ctx context.Context, s entity.SMSReport) error
	SMSReport(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.SMSReport, error)
	SMSReports(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.SMSReport, int, error)
	UpdateSMSReport(ctx context.Context, s entity.SMSReport) error
	DeleteSMSReport(ctx context.Context, companyID, id uuid.UUID) error

	CreateAudit(ctx context.Context, a entity.Audit) error
	Audit(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.Audit, error)
	Audits(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.Audit, int, error)
	UpdateAudit(ctx context.Context, a entity.Audit) error
	DeleteAudit(ctx context.Context, companyID, id uuid.UUID) error

	CreateFinding(ctx context.Context, f entity.Finding) error
	Finding(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.Finding, error)
	Findings(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.Finding, int, error)
	UpdateFinding(ctx context.Context, f entity.Finding) error
	DeleteFinding(ctx context.Context, companyID, id uuid.UUID) error

	CreateCorrectiveAction(ctx context.Context, a entity.CorrectiveAction) error
	CorrectiveAction(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.CorrectiveAction, error)
	CorrectiveActions(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.CorrectiveAction, int, error)
	OverdueCorrectiveActions(ctx context.Context, now time.Time, limit uint64) ([]entity.CorrectiveAction, error)
	UpdateCorrectiveAction(ctx context.Context, a entity.CorrectiveAction) error
	DeleteCorrectiveAction(ctx context.Context, companyID, id uuid.UUID) error

	CreateStockItem(ctx context.Context, s entity.StockItem) error
	StockItem(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.StockItem, error)
	StockItems(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.StockItem, int, error)
	UpdateStockItem(ctx context.Context, s entity.StockItem) error
	DeleteStockItem(ctx context.Context, companyID, id uuid.UUID) error

	CreateAttachment(ctx context.Context, a entity.Attachment) error
	Attachment(ctx context.Context, companyID, id uuid.UUID) (entity.Attachment, error)
	Attachments(ctx context.Context, companyID uuid.UUID, kind entity.ResourceKind, parentID uuid.UUID) ([]entity.Attachment, error)
	DeleteAttachments(ctx context.Context, companyID uuid.UUID, ids ...uuid.UUID) error

	Activity(ctx context.Context, p entity.Principal, f entity.ListFilter) ([]entity.ActivityLogEntry, int, error)

	Count(ctx context.Context, p entity.Principal, q entity.CountQuery) (int, error)
	CountBy(ctx context.Context, p entity.Principal, q entity.CountQuery) (map[string]int, error)
	MonthlyCorrectiveActions(ctx context.Context, p entity.Principal, from, to time.Time) ([]entity.MonthlyCount, error)
	CountOverdueCorrectiveActions(ctx context.Context, p entity.Principal, now time.Time) (int, error)
	StockSummary(ctx context.Context, companyID uuid.UUID) (entity.StockSummary, error)
}

// Storage keeps attachment blobs. Download returns entity.ErrNotFound for a missing key.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	PublicURL(ctx context.Context, key string) (string, error)
}

// ActivityRecorder never blocks and never fails the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, e entity.ActivityLogEntry)
}

type Notifier interface {
	Notify(ctx context.Context, n entity.Notification)
}

type WeatherProvider interface {
	Current(ctx context.Context, q entity.WeatherQuery) (entity.Weather, error)
}

type AuthConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
}

type Service struct {
	repo     Repository
	storage  Storage
	activity ActivityRecorder
	notifier Notifier
	weather  WeatherProvider
	auth     AuthConfig
}

func New(
	repo Repository,
	storage Storage,
	activity ActivityRecorder,
	notifier Notifier,
	weather WeatherProvider,
	auth AuthConfig,
) *Service {
	return &Service{
		repo:     repo,
		storage:  storage,
		activity: activity,
		notifier: notifier,
		weather:  weather,
		auth:     auth,
	}
}

// authorize resolves the principal and checks that every capability is granted. Admins may do anything,
// readers never mutate, everybody else is gated by their permission flags.
func (s *Service) authorize(ctx context.Context, caps ...entity.Capability) (entity.Principal, error) {
	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		return entity.Principal{}, err
	}

	if p.IsAdmin() {
		return p, nil
	}

	if p.Privilege == entity.PrivilegeReader && slices.ContainsFunc(caps, entity.Capability.IsMutation) {
		return entity.Principal{}, entity.ErrForbidden
	}

	perm, err := s.permission(ctx, p)
	if err != nil {
		return entity.Principal{}, fmt.Errorf("load permissions: %w", err)
	}

	for _, c := range caps {
		if !perm.Allows(c) {
			return entity.Principal{}, entity.ErrForbidden
		}
	}

	return p, nil
}

// requireAdmin checks the privilege only, so callers fail before touching any store.
func requireAdmin(ctx context.Context) (entity.Principal, error) {
	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		return entity.Principal{}, err
	}

	if !p.IsAdmin() {
		return entity.Principal{}, entity.ErrForbidden
	}

	return p, nil
}

func (s *Service) record(
	ctx context.Context,
	p entity.Principal,
	action entity.ActivityAction,
	kind entity.ResourceKind,
	id uuid.UUID,
	title string,
	metadata map[string]any,
) {
	ip, ua := entity.ClientFromContext(ctx)

	e := entity.ActivityLogEntry{
		ID:            uuid.Must(uuid.NewV4()),
		CompanyID:     p.CompanyID,
		UserID:        p.UserID,
		Action:        action,
		ResourceType:  kind,
		ResourceID:    uuid.NullUUID{UUID: id, Valid: !id.IsNil()},
		ResourceTitle: title,
		Metadata:      metadata,
		IPAddress:     ip,
		UserAgent:     ua,
		CreatedAt:     time.Now(),
	}

	s.activity.Record(ctx, e)
}

func (s *Service) ListActivity(ctx context.Context, f entity.ListFilter) (entity.Page[entity.ActivityLogEntry], error) {
	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		return entity.Page[entity.ActivityLogEntry]{}, err
	}

	items, total, err := s.repo.Activity(ctx, p, f)
	if err != nil {
		return entity.Page[entity.ActivityLogEntry]{}, fmt.Errorf("list activity: %w", err)
	}

	return entity.NewPage(items, total, f), nil
}

// compensate undoes a create whose follow-up failed, even when the request is already cancelled.
// Its own failure is only logged.
func compensate(ctx context.Context, kind entity.ResourceKind, id uuid.UUID, undo func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	err := undo(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "compensating delete failed", "resource", kind, "id", id, "error", err)
	}
}
