package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func flightRecordInput() entity.CreateFlightRecordInput {
	return entity.CreateFlightRecordInput{
		FlightDate:           entity.NewDate(time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)),
		AircraftRegistration: "YL-ABC",
		AircraftType:         "A220",
		DepartureAirport:     "RIX",
		ArrivalAirport:       "TLL",
		FlightHours:          decimal.RequireFromString("1.5"),
	}
}

func TestService_CreateFlightRecord(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)

	var saved entity.FlightRecord

	ts.repo.EXPECT().CreateFlightRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fr entity.FlightRecord) error {
			saved = fr
			return nil
		})
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), int64(3), "image/png").Return(nil)
	ts.repo.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).Return(nil)
	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	fr, err := ts.s.CreateFlightRecord(ctxAs(admin), flightRecordInput(), []entity.FileUpload{
		{Name: "log.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png")},
	})
	r.NoError(err)
	r.Equal(admin.CompanyID, saved.CompanyID)
	r.Equal(admin.UserID, saved.UserID)
	r.Equal(entity.FlightRecordStatusDraft, saved.Status)
	r.Len(fr.Attachments, 1)
	r.Equal(fr.ID, fr.Attachments[0].ParentID)
	r.Equal(entity.ResourceFlightRecord, fr.Attachments[0].ResourceType)
}

func TestService_CreateFlightRecord_UploadFailureRemovesParent(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	ctx, cancel := context.WithCancel(ctxAs(admin))

	var created uuid.UUID

	ts.repo.EXPECT().CreateFlightRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fr entity.FlightRecord) error {
			created = fr.ID
			return nil
		})
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string, io.Reader, int64, string) error {
			cancel()
			return context.Canceled
		})
	ts.repo.EXPECT().DeleteFlightRecord(gomock.Any(), admin.CompanyID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, id uuid.UUID) error {
			r.NoError(ctx.Err(), "compensation must outlive the request")
			r.Equal(created, id)

			return nil
		})

	_, err := ts.s.CreateFlightRecord(ctx, flightRecordInput(), []entity.FileUpload{
		{Name: "log.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png")},
	})
	r.ErrorIs(err, context.Canceled)
}

func TestService_UpdateFlightRecord_KeepsDefectInvariant(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	old := entity.FlightRecord{ID: uuid.Must(uuid.NewV4()), CompanyID: admin.CompanyID, AircraftRegistration: "YL-ABC"}

	ts.repo.EXPECT().FlightRecord(gomock.Any(), admin, old.ID).Return(old, nil)

	_, err := ts.s.UpdateFlightRecord(ctxAs(admin), old.ID, entity.UpdateFlightRecordInput{
		HasDefect: ptr(true),
	}, nil)

	var ve *entity.ValidationError
	r.ErrorAs(err, &ve)
	r.Equal("defectDescription", ve.Field)
}

func TestService_DeleteFlightRecord_ReportsEveryFile(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	fr := entity.FlightRecord{ID: uuid.Must(uuid.NewV4()), CompanyID: admin.CompanyID, AircraftRegistration: "YL-ABC"}
	attachments := []entity.Attachment{
		{ID: uuid.Must(uuid.NewV4()), FileKey: "flight-records/a.png"},
		{ID: uuid.Must(uuid.NewV4()), FileKey: "flight-records/b.png"},
	}

	ts.repo.EXPECT().FlightRecord(gomock.Any(), admin, fr.ID).Return(fr, nil)
	ts.repo.EXPECT().Attachments(gomock.Any(), admin.CompanyID, entity.ResourceFlightRecord, fr.ID).Return(attachments, nil)

	gomock.InOrder(
		ts.storage.EXPECT().Delete(gomock.Any(), "flight-records/a.png").Return(nil),
		ts.storage.EXPECT().Delete(gomock.Any(), "flight-records/b.png").Return(errors.New("access denied")),
		ts.repo.EXPECT().DeleteFlightRecord(gomock.Any(), admin.CompanyID, fr.ID).Return(nil),
	)

	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	res, err := ts.s.DeleteFlightRecord(ctxAs(admin), fr.ID)
	r.NoError(err)
	r.Equal(fr.ID, res.ID)
	r.Equal([]entity.FileDeleteResult{
		{FileKey: "flight-records/a.png", Deleted: true},
		{FileKey: "flight-records/b.png", Deleted: false, Error: "access denied"},
	}, res.Files)
}

func TestService_UpdateSMSReport_AggregateLimitCountsStoredFiles(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	report := entity.SMSReport{ID: uuid.Must(uuid.NewV4()), CompanyID: admin.CompanyID, UserID: admin.UserID}

	ts.repo.EXPECT().SMSReport(gomock.Any(), admin, report.ID).Return(report, nil)
	ts.repo.EXPECT().Attachments(gomock.Any(), admin.CompanyID, entity.ResourceSMSReport, report.ID).Return(
		[]entity.Attachment{{FileSize: 200 * entity.MB}}, nil)

	_, err := ts.s.UpdateSMSReport(ctxAs(admin), report.ID, entity.UpdateSMSReportInput{}, []entity.FileUpload{
		{Name: "video.mp4", Size: 60 * entity.MB, Body: strings.NewReader("")},
	})

	var ve *entity.ValidationError
	r.ErrorAs(err, &ve)
	r.Equal("files", ve.Field)
}

func TestService_UpdateFlightRecord_UploadFailureWritesNothing(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	old := entity.FlightRecord{ID: uuid.Must(uuid.NewV4()), CompanyID: admin.CompanyID, AircraftRegistration: "YL-ABC"}
	errStorage := errors.New("s3 down")

	ts.repo.EXPECT().FlightRecord(gomock.Any(), admin, old.ID).Return(old, nil)
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), int64(3), "image/png").Return(errStorage)

	_, err := ts.s.UpdateFlightRecord(ctxAs(admin), old.ID, entity.UpdateFlightRecordInput{
		AircraftRegistration: ptr("YL-NEW"),
	}, []entity.FileUpload{
		{Name: "a.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png")},
	})
	r.ErrorIs(err, errStorage)
}

func TestService_UpdateFlightRecord_RowFailureDiscardsUploads(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	old := entity.FlightRecord{ID: uuid.Must(uuid.NewV4()), CompanyID: admin.CompanyID, AircraftRegistration: "YL-ABC"}
	errDB := errors.New("connection reset")

	var stored entity.Attachment

	ts.repo.EXPECT().FlightRecord(gomock.Any(), admin, old.ID).Return(old, nil)
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	ts.repo.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entity.Attachment) error {
			stored = a
			return nil
		})
	ts.repo.EXPECT().UpdateFlightRecord(gomock.Any(), gomock.Any()).Return(errDB)
	ts.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) error {
			r.Equal(stored.FileKey, key)
			return nil
		})
	ts.repo.EXPECT().DeleteAttachments(gomock.Any(), admin.CompanyID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, ids ...uuid.UUID) error {
			r.Equal([]uuid.UUID{stored.ID}, ids)
			return nil
		})

	_, err := ts.s.UpdateFlightRecord(ctxAs(admin), old.ID, entity.UpdateFlightRecordInput{
		AircraftRegistration: ptr("YL-NEW"),
	}, []entity.FileUpload{
		{Name: "a.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png")},
	})
	r.ErrorIs(err, errDB)
}

func TestService_UpdateFlightRecord_ReturnsEveryAttachment(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	old := entity.FlightRecord{ID: uuid.Must(uuid.NewV4()), CompanyID: admin.CompanyID, AircraftRegistration: "YL-ABC"}
	existing := entity.Attachment{ID: uuid.Must(uuid.NewV4()), ParentID: old.ID, FileKey: "flight-records/old.png"}

	var added entity.Attachment

	ts.repo.EXPECT().FlightRecord(gomock.Any(), admin, old.ID).Return(old, nil)
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	ts.repo.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entity.Attachment) error {
			added = a
			return nil
		})
	ts.repo.EXPECT().UpdateFlightRecord(gomock.Any(), gomock.Any()).Return(nil)
	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any())
	ts.repo.EXPECT().Attachments(gomock.Any(), admin.CompanyID, entity.ResourceFlightRecord, old.ID).DoAndReturn(
		func(context.Context, uuid.UUID, entity.ResourceKind, uuid.UUID) ([]entity.Attachment, error) {
			return []entity.Attachment{existing, added}, nil
		})
	ts.storage.EXPECT().PublicURL(gomock.Any(), gomock.Any()).Return("https://files.example/signed", nil).Times(2)

	fr, err := ts.s.UpdateFlightRecord(ctxAs(admin), old.ID, entity.UpdateFlightRecordInput{}, []entity.FileUpload{
		{Name: "new.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png")},
	})
	r.NoError(err)
	r.Len(fr.Attachments, 2)
	r.Equal(existing.ID, fr.Attachments[0].ID)
	r.Equal(added.ID, fr.Attachments[1].ID)
	r.Equal("https://files.example/signed", fr.Attachments[1].URL)
}

func TestService_UpdateSMSReport_UploadFailureWritesNothing(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	report := entity.SMSReport{ID: uuid.Must(uuid.NewV4()), CompanyID: admin.CompanyID, UserID: admin.UserID}
	errStorage := errors.New("s3 down")

	ts.repo.EXPECT().SMSReport(gomock.Any(), admin, report.ID).Return(report, nil)
	ts.repo.EXPECT().Attachments(gomock.Any(), admin.CompanyID, entity.ResourceSMSReport, report.ID).Return(nil, nil)
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errStorage)

	_, err := ts.s.UpdateSMSReport(ctxAs(admin), report.ID, entity.UpdateSMSReportInput{
		Title: ptr("Bird strike on approach"),
	}, []entity.FileUpload{
		{Name: "photo.jpg", ContentType: "image/jpeg", Size: 3, Body: strings.NewReader("jpg")},
	})
	r.ErrorIs(err, errStorage)
}
