package service_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/internal/service"
)

func ptr[T any](v T) *T {
	return &v
}

func testPublication(companyID uuid.UUID) entity.TechPublication {
	revisionDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	return entity.TechPublication{
		ID:             uuid.Must(uuid.NewV4()),
		CompanyID:      companyID,
		Title:          "A320 AMM",
		Category:       entity.TechPublicationAMM,
		RevisionNumber: "42",
		RevisionDate:   &revisionDate,
		Owner:          "Alice",
		Description:    "Aircraft maintenance manual",
	}
}

func TestDiffTechPublication(t *testing.T) {
	t.Parallel()

	base := testPublication(uuid.Must(uuid.NewV4()))
	later := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		change func(tp entity.TechPublication) entity.TechPublication
		want   map[string]entity.FieldChange
	}{
		{
			name:   "identical",
			change: func(tp entity.TechPublication) entity.TechPublication { return tp },
			want:   map[string]entity.FieldChange{},
		},
		{
			name: "owner",
			change: func(tp entity.TechPublication) entity.TechPublication {
				tp.Owner = "Bob"
				return tp
			},
			want: map[string]entity.FieldChange{"owner": {Old: "Alice", New: "Bob"}},
		},
		{
			name: "revision date is compared by day",
			change: func(tp entity.TechPublication) entity.TechPublication {
				tp.RevisionDate = &later
				return tp
			},
			want: map[string]entity.FieldChange{"revisionDate": {Old: "2024-03-01", New: "2024-04-01"}},
		},
		{
			name: "cleared revision date",
			change: func(tp entity.TechPublication) entity.TechPublication {
				tp.RevisionDate = nil
				return tp
			},
			want: map[string]entity.FieldChange{"revisionDate": {Old: "2024-03-01", New: ""}},
		},
		{
			name: "untracked fields are ignored",
			change: func(tp entity.TechPublication) entity.TechPublication {
				tp.UpdatedAt = time.Now()
				tp.UploadedBy = uuid.Must(uuid.NewV4())

				return tp
			},
			want: map[string]entity.FieldChange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, service.DiffTechPublication(base, tt.change(base)))
		})
	}
}

func TestService_TechPublicationMutationsAreAdminOnly(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	manager := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeManager)
	ctx := ctxAs(manager)

	_, err := ts.s.CreateTechPublication(ctx, entity.CreateTechPublicationInput{
		Title:          "IPC",
		Category:       entity.TechPublicationIPC,
		RevisionNumber: "1",
	}, nil)
	r.ErrorIs(err, entity.ErrForbidden)

	_, err = ts.s.UpdateTechPublication(ctx, uuid.Must(uuid.NewV4()), entity.UpdateTechPublicationInput{
		Owner: ptr("Bob"),
	}, nil)
	r.ErrorIs(err, entity.ErrForbidden)

	_, err = ts.s.DeleteTechPublication(ctx, uuid.Must(uuid.NewV4()))
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_UpdateTechPublication_WritesRevision(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	old := testPublication(admin.CompanyID)

	var (
		saved    entity.TechPublication
		revision entity.Revision
		logged   entity.ActivityLogEntry
	)

	ts.repo.EXPECT().TechPublication(gomock.Any(), admin, old.ID).Return(old, nil)
	ts.repo.EXPECT().UpdateTechPublication(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tp entity.TechPublication) error {
			saved = tp
			return nil
		})
	ts.repo.EXPECT().CreateRevision(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rev entity.Revision) error {
			revision = rev
			return nil
		})
	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, e entity.ActivityLogEntry) {
			logged = e
		})

	tp, err := ts.s.UpdateTechPublication(ctxAs(admin), old.ID, entity.UpdateTechPublicationInput{
		Owner: ptr("Bob"),
		Title: ptr(old.Title),
	}, nil)
	r.NoError(err)
	r.Equal("Bob", tp.Owner)
	r.Equal("Bob", saved.Owner)

	r.Equal(entity.ChangeTypeUpdated, revision.ChangeType)
	r.Equal(old.ID, revision.ParentID)
	r.Equal(admin.CompanyID, revision.CompanyID)
	r.Equal(admin.UserID, revision.ModifiedBy)
	r.Equal(map[string]entity.FieldChange{"owner": {Old: "Alice", New: "Bob"}}, revision.ChangedFields)
	r.Equal(map[string]string{"owner": "Alice"}, revision.PreviousValues)
	r.Equal(map[string]string{"owner": "Bob"}, revision.NewValues)

	r.Equal(entity.ActionUpdate, logged.Action)
	r.Equal(entity.ResourceTechPublication, logged.ResourceType)
	r.Equal(old.ID, logged.ResourceID.UUID)
}

func TestService_UpdateTechPublication_IdenticalPayloadWritesNothing(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	old := testPublication(admin.CompanyID)

	ts.repo.EXPECT().TechPublication(gomock.Any(), admin, old.ID).Return(old, nil)

	tp, err := ts.s.UpdateTechPublication(ctxAs(admin), old.ID, entity.UpdateTechPublicationInput{
		Title:          ptr(old.Title),
		Owner:          ptr(old.Owner),
		RevisionDate:   entity.NewDate(*old.RevisionDate),
		RevisionNumber: ptr(old.RevisionNumber),
	}, nil)
	r.NoError(err)
	r.Equal(old, tp)
}

func TestService_UpdateTechPublication_ReplacesAttachment(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	old := testPublication(admin.CompanyID)
	previous := entity.Attachment{
		ID:           uuid.Must(uuid.NewV4()),
		CompanyID:    admin.CompanyID,
		ResourceType: entity.ResourceTechPublication,
		ParentID:     old.ID,
		FileName:     "old.pdf",
		FileKey:      "technical-publications/old.pdf",
	}

	var revision entity.Revision

	ts.repo.EXPECT().TechPublication(gomock.Any(), admin, old.ID).Return(old, nil)
	ts.repo.EXPECT().Attachments(gomock.Any(), admin.CompanyID, entity.ResourceTechPublication, old.ID).
		Return([]entity.Attachment{previous}, nil)

	gomock.InOrder(
		ts.storage.EXPECT().Delete(gomock.Any(), previous.FileKey).Return(nil),
		ts.repo.EXPECT().DeleteAttachments(gomock.Any(), admin.CompanyID, previous.ID).Return(nil),
		ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), int64(4), "application/pdf").
			DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
				r.True(strings.HasPrefix(key, "technical-publications/"+admin.CompanyID.String()+"/"+old.ID.String()+"/"))
				r.True(strings.HasSuffix(key, "-new_manual.pdf"))

				return nil
			}),
		ts.repo.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).Return(nil),
		ts.repo.EXPECT().UpdateTechPublication(gomock.Any(), gomock.Any()).Return(nil),
	)
	ts.repo.EXPECT().CreateRevision(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rev entity.Revision) error {
			revision = rev
			return nil
		})
	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	tp, err := ts.s.UpdateTechPublication(ctxAs(admin), old.ID, entity.UpdateTechPublicationInput{}, &entity.FileUpload{
		Name:        "new manual.pdf",
		ContentType: "application/pdf",
		Size:        4,
		Body:        strings.NewReader("%PDF"),
	})
	r.NoError(err)
	r.NotNil(tp.Attachment)
	r.Equal("new manual.pdf", tp.Attachment.FileName)
	r.Equal(entity.ChangeTypeAttachmentReplaced, revision.ChangeType)
	r.Empty(revision.ChangedFields)
}

func TestService_CreateTechPublication_OversizedFileRejectedBeforeWrites(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)

	_, err := ts.s.CreateTechPublication(ctxAs(admin), entity.CreateTechPublicationInput{
		Title:          "SRM",
		Category:       entity.TechPublicationSRM,
		RevisionNumber: "7",
	}, &entity.FileUpload{
		Name: "huge.pdf",
		Size: entity.TechPublicationFileLimit + 1,
		Body: strings.NewReader(""),
	})

	var ve *entity.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "files", ve.Field)
}

func TestService_CreateTechPublication_RecordsCreatedRevision(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)

	var revision entity.Revision

	ts.repo.EXPECT().CreateTechPublication(gomock.Any(), gomock.Any()).Return(nil)
	ts.repo.EXPECT().CreateRevision(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rev entity.Revision) error {
			revision = rev
			return context.DeadlineExceeded
		})
	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	tp, err := ts.s.CreateTechPublication(ctxAs(admin), entity.CreateTechPublicationInput{
		Title:          "SB 27-001",
		Category:       entity.TechPublicationSB,
		RevisionNumber: "1",
	}, nil)
	r.NoError(err, "a failed revision write must not fail the create")
	r.Equal(entity.ChangeTypeCreated, revision.ChangeType)
	r.Equal(tp.ID, revision.ParentID)
	r.Equal(entity.FieldChange{Old: "", New: "SB 27-001"}, revision.ChangedFields["title"])
	r.NotContains(revision.ChangedFields, "owner")
}
