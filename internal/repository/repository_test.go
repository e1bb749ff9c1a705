package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/internal/repository"
)

type RepositoryTestSuite struct {
	suite.Suite
	repo  *repository.Repository
	admin entity.Principal
	users map[entity.Privilege]entity.Principal
	other entity.Principal
}

func (ts *RepositoryTestSuite) SetupTest() {
	db := repository.SetupTestDatabase(ts.T())
	ts.repo = repository.New(db)
	ts.admin, ts.users = repository.SeedCompany(ts.T(), db)
	ts.other, _ = repository.SeedCompany(ts.T(), db)
}

func TestRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(RepositoryTestSuite))
}

func (ts *RepositoryTestSuite) newStockItem(p entity.Principal, partNumber string, updatedAt time.Time) entity.StockItem {
	item := entity.StockItem{
		ID:          uuid.Must(uuid.NewV4()),
		CompanyID:   p.CompanyID,
		PartNumber:  partNumber,
		Quantity:    2,
		MinQuantity: 1,
		UnitPrice:   decimal.RequireFromString("12.50"),
		Condition:   entity.StockConditionNew,
		CreatedBy:   p.UserID,
		CreatedAt:   updatedAt,
		UpdatedAt:   updatedAt,
	}

	ts.Require().NoError(ts.repo.CreateStockItem(context.Background(), item))

	return item
}

func (ts *RepositoryTestSuite) TestTenantIsolation() {
	ctx := context.Background()
	item := ts.newStockItem(ts.admin, "PN-ISO", time.Now().UTC().Truncate(time.Microsecond))

	got, err := ts.repo.StockItem(ctx, ts.admin, item.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(item.PartNumber, got.PartNumber)

	_, err = ts.repo.StockItem(ctx, ts.other, item.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	foreign := item
	foreign.CompanyID = ts.other.CompanyID
	foreign.PartNumber = "hijacked"
	ts.Require().ErrorIs(ts.repo.UpdateStockItem(ctx, foreign), entity.ErrNotFound)
	ts.Require().ErrorIs(ts.repo.DeleteStockItem(ctx, ts.other.CompanyID, item.ID), entity.ErrNotFound)

	items, total, err := ts.repo.StockItems(ctx, ts.other, entity.ListFilter{})
	ts.Require().NoError(err)
	ts.Require().Zero(total)
	ts.Require().Empty(items)

	got, err = ts.repo.StockItem(ctx, ts.admin, item.ID)
	ts.Require().NoError(err)
	ts.Require().Equal("PN-ISO", got.PartNumber)
}

func (ts *RepositoryTestSuite) TestPaginationDeterminism() {
	ctx := context.Background()
	sameTime := time.Now().UTC().Truncate(time.Microsecond)

	for i := range 5 {
		ts.newStockItem(ts.admin, fmt.Sprintf("PN-%d", i), sameTime)
	}

	all, total, err := ts.repo.StockItems(ctx, ts.admin, entity.ListFilter{Limit: 10})
	ts.Require().NoError(err)
	ts.Require().Equal(5, total)
	ts.Require().Len(all, 5)

	again, _, err := ts.repo.StockItems(ctx, ts.admin, entity.ListFilter{Limit: 10})
	ts.Require().NoError(err)
	ts.Require().Equal(all, again)

	page1, _, err := ts.repo.StockItems(ctx, ts.admin, entity.ListFilter{Page: 1, Limit: 3})
	ts.Require().NoError(err)

	page2, _, err := ts.repo.StockItems(ctx, ts.admin, entity.ListFilter{Page: 2, Limit: 3})
	ts.Require().NoError(err)

	ts.Require().Len(page1, 3)
	ts.Require().Len(page2, 2)
	ts.Require().Equal(all, append(page1, page2...))
}

func (ts *RepositoryTestSuite) TestSelfScopedSMSReports() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tech := ts.users[entity.PrivilegeTechnician]
	reader := ts.users[entity.PrivilegeReader]

	report := entity.SMSReport{
		ID:          uuid.Must(uuid.NewV4()),
		CompanyID:   tech.CompanyID,
		UserID:      tech.UserID,
		Title:       "Loose panel",
		Description: "Found on walkaround",
		Severity:    entity.SeverityHigh,
		Status:      entity.SMSReportStatusOpen,
		OccurredAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ts.Require().NoError(ts.repo.CreateSMSReport(ctx, report))

	_, err := ts.repo.SMSReport(ctx, tech, report.ID)
	ts.Require().NoError(err)

	_, err = ts.repo.SMSReport(ctx, ts.admin, report.ID)
	ts.Require().NoError(err)

	_, err = ts.repo.SMSReport(ctx, reader, report.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	_, total, err := ts.repo.SMSReports(ctx, reader, entity.ListFilter{})
	ts.Require().NoError(err)
	ts.Require().Zero(total)
}

func (ts *RepositoryTestSuite) TestDeleteRemovesAttachments() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	action := entity.CorrectiveAction{
		ID:        uuid.Must(uuid.NewV4()),
		CompanyID: ts.admin.CompanyID,
		Title:     "Replace seal",
		Priority:  entity.SeverityMedium,
		Status:    entity.CorrectiveActionStatusOpen,
		DueDate:   entity.DateOnly(now),
		CreatedBy: ts.admin.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ts.Require().NoError(ts.repo.CreateCorrectiveAction(ctx, action))

	for i := range 3 {
		ts.Require().NoError(ts.repo.CreateAttachment(ctx, entity.Attachment{
			ID:           uuid.Must(uuid.NewV4()),
			CompanyID:    action.CompanyID,
			ResourceType: entity.ResourceCorrectiveAction,
			ParentID:     action.ID,
			FileName:     fmt.Sprintf("photo-%d.jpg", i),
			FileKey:      fmt.Sprintf("corrective-actions/%s/%s/%d-photo.jpg", action.CompanyID, action.ID, i),
			FileSize:     10,
			CreatedAt:    now,
		}))
	}

	attachments, err := ts.repo.Attachments(ctx, action.CompanyID, entity.ResourceCorrectiveAction, action.ID)
	ts.Require().NoError(err)
	ts.Require().Len(attachments, 3)

	ts.Require().NoError(ts.repo.DeleteCorrectiveAction(ctx, action.CompanyID, action.ID))

	attachments, err = ts.repo.Attachments(ctx, action.CompanyID, entity.ResourceCorrectiveAction, action.ID)
	ts.Require().NoError(err)
	ts.Require().Empty(attachments)

	_, err = ts.repo.CorrectiveAction(ctx, ts.admin, action.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *RepositoryTestSuite) TestPermissionCreateIsIdempotent() {
	ctx := context.Background()
	tech := ts.users[entity.PrivilegeTechnician]

	_, err := ts.repo.Permission(ctx, tech.CompanyID, tech.UserID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	first, err := ts.repo.CreatePermission(ctx, entity.UserPermission{
		UserID:              tech.UserID,
		CompanyID:           tech.CompanyID,
		UpdatedAt:           time.Now(),
		UserPermissionFlags: entity.DefaultPermissions(tech.Privilege),
	})
	ts.Require().NoError(err)
	ts.Require().True(first.CanCreateFlightRecords)

	second, err := ts.repo.CreatePermission(ctx, entity.UserPermission{
		UserID:              tech.UserID,
		CompanyID:           tech.CompanyID,
		UpdatedAt:           time.Now(),
		UserPermissionFlags: entity.DefaultPermissions(entity.PrivilegeReader),
	})
	ts.Require().NoError(err)
	ts.Require().Equal(first.UserPermissionFlags, second.UserPermissionFlags)

	_, err = ts.repo.Permission(ctx, ts.other.CompanyID, tech.UserID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *RepositoryTestSuite) TestRevisionsRoundTrip() {
	ctx := context.Background()
	parentID := uuid.Must(uuid.NewV4())

	rev := entity.Revision{
		ID:             uuid.Must(uuid.NewV4()),
		CompanyID:      ts.admin.CompanyID,
		ParentID:       parentID,
		ChangeType:     entity.ChangeTypeUpdated,
		ChangedFields:  map[string]entity.FieldChange{"owner": {Old: "Alice", New: "Bob"}},
		PreviousValues: map[string]string{"owner": "Alice"},
		NewValues:      map[string]string{"owner": "Bob"},
		ModifiedBy:     ts.admin.UserID,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
	ts.Require().NoError(ts.repo.CreateRevision(ctx, rev))

	revs, total, err := ts.repo.Revisions(ctx, ts.admin, entity.ListFilter{
		ParentID: uuid.NullUUID{UUID: parentID, Valid: true},
	})
	ts.Require().NoError(err)
	ts.Require().Equal(1, total)
	ts.Require().Equal(rev.ChangedFields, revs[0].ChangedFields)
	ts.Require().Equal(rev.NewValues, revs[0].NewValues)

	_, total, err = ts.repo.Revisions(ctx, ts.other, entity.ListFilter{
		ParentID: uuid.NullUUID{UUID: parentID, Valid: true},
	})
	ts.Require().NoError(err)
	ts.Require().Zero(total)
}

func (ts *RepositoryTestSuite) TestCountBy() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	for i := range 10 {
		status := entity.AuditStatusPlanned
		if i < 6 {
			status = entity.AuditStatusCompleted
		}

		ts.Require().NoError(ts.repo.CreateAudit(ctx, entity.Audit{
			ID:            uuid.Must(uuid.NewV4()),
			CompanyID:     ts.admin.CompanyID,
			Title:         fmt.Sprintf("Audit %d", i),
			AuditType:     entity.AuditTypeInternal,
			Status:        status,
			ScheduledDate: entity.DateOnly(now),
			CreatedBy:     ts.admin.UserID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}))
	}

	counts, err := ts.repo.CountBy(ctx, ts.admin, entity.CountQuery{Resource: entity.ResourceAudit, GroupBy: "status"})
	ts.Require().NoError(err)
	ts.Require().Equal(map[string]int{"COMPLETED": 6, "PLANNED": 4}, counts)

	total, err := ts.repo.Count(ctx, ts.admin, entity.CountQuery{Resource: entity.ResourceAudit})
	ts.Require().NoError(err)
	ts.Require().Equal(10, total)

	_, err = ts.repo.CountBy(ctx, ts.admin, entity.CountQuery{Resource: entity.ResourceAudit, GroupBy: "title; DROP"})
	ts.Require().Error(err)
}
