package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func TestService_UpdateCorrectiveAction_UploadFailureWritesNothing(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	old := entity.CorrectiveAction{
		ID:        uuid.Must(uuid.NewV4()),
		CompanyID: admin.CompanyID,
		Title:     "Replace seal",
		Status:    entity.CorrectiveActionStatusOpen,
	}
	errStorage := errors.New("s3 down")

	ts.repo.EXPECT().CorrectiveAction(gomock.Any(), admin, old.ID).Return(old, nil)
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errStorage)

	_, err := ts.s.UpdateCorrectiveAction(ctxAs(admin), old.ID, entity.UpdateCorrectiveActionInput{
		Title: ptr("Replace seal and retorque"),
	}, []entity.FileUpload{
		{Name: "torque.pdf", ContentType: "application/pdf", Size: 4, Body: strings.NewReader("%PDF")},
	})
	r.ErrorIs(err, errStorage)
}

func TestService_UpdateCorrectiveAction_ReturnsEveryAttachment(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	old := entity.CorrectiveAction{
		ID:        uuid.Must(uuid.NewV4()),
		CompanyID: admin.CompanyID,
		Title:     "Replace seal",
		Status:    entity.CorrectiveActionStatusOpen,
	}
	existing := entity.Attachment{ID: uuid.Must(uuid.NewV4()), ParentID: old.ID, FileKey: "corrective-actions/old.pdf"}

	var added entity.Attachment

	ts.repo.EXPECT().CorrectiveAction(gomock.Any(), admin, old.ID).Return(old, nil)

	gomock.InOrder(
		ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		ts.repo.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entity.Attachment) error {
				added = a
				return nil
			}),
		ts.repo.EXPECT().UpdateCorrectiveAction(gomock.Any(), gomock.Any()).Return(nil),
	)

	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any())
	ts.repo.EXPECT().Attachments(gomock.Any(), admin.CompanyID, entity.ResourceCorrectiveAction, old.ID).DoAndReturn(
		func(context.Context, uuid.UUID, entity.ResourceKind, uuid.UUID) ([]entity.Attachment, error) {
			return []entity.Attachment{existing, added}, nil
		})
	ts.storage.EXPECT().PublicURL(gomock.Any(), gomock.Any()).Return("https://files.example/signed", nil).Times(2)

	a, err := ts.s.UpdateCorrectiveAction(ctxAs(admin), old.ID, entity.UpdateCorrectiveActionInput{}, []entity.FileUpload{
		{Name: "torque.pdf", ContentType: "application/pdf", Size: 4, Body: strings.NewReader("%PDF")},
	})
	r.NoError(err)
	r.Len(a.Attachments, 2)
	r.Equal(existing.ID, a.Attachments[0].ID)
	r.Equal(added.ID, a.Attachments[1].ID)
}
