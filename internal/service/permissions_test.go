package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func TestService_UpdateUserPermissions(t *testing.T) {
	t.Parallel()

	companyID := uuid.Must(uuid.NewV4())
	admin := newPrincipal(companyID, entity.PrivilegeAdmin)
	manager := newPrincipal(companyID, entity.PrivilegeManager)
	target := entity.User{ID: uuid.Must(uuid.NewV4()), CompanyID: companyID, Privilege: entity.PrivilegeTechnician}

	flags := entity.DefaultPermissions(entity.PrivilegeReader)

	tests := []struct {
		name   string
		caller entity.Principal
		userID uuid.UUID
		setup  func(ts *testService)
		errFn  require.ErrorAssertionFunc
	}{
		{
			name:   "own permissions",
			caller: admin,
			userID: admin.UserID,
			setup:  func(*testService) {},
			errFn: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, entity.ErrForbidden)
			},
		},
		{
			name:   "not an admin",
			caller: manager,
			userID: target.ID,
			setup:  func(*testService) {},
			errFn: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, entity.ErrForbidden)
			},
		},
		{
			name:   "user of another company",
			caller: admin,
			userID: target.ID,
			setup: func(ts *testService) {
				ts.repo.EXPECT().CompanyUser(gomock.Any(), companyID, target.ID).Return(entity.User{}, entity.ErrNotFound)
			},
			errFn: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, entity.ErrNotFound)
			},
		},
		{
			name:   "ok",
			caller: admin,
			userID: target.ID,
			setup: func(ts *testService) {
				ts.repo.EXPECT().CompanyUser(gomock.Any(), companyID, target.ID).Return(target, nil)
				ts.repo.EXPECT().Permission(gomock.Any(), companyID, target.ID).Return(entity.UserPermission{
					UserID:              target.ID,
					CompanyID:           companyID,
					UserPermissionFlags: entity.DefaultPermissions(target.Privilege),
				}, nil)
				ts.repo.EXPECT().UpdatePermission(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p entity.UserPermission) error {
						require.Equal(t, flags, p.UserPermissionFlags)
						require.Equal(t, uuid.NullUUID{UUID: admin.UserID, Valid: true}, p.UpdatedBy)

						return nil
					})
				ts.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Do(
					func(_ context.Context, e entity.ActivityLogEntry) {
						require.Equal(t, entity.ActionPermissionUpdate, e.Action)
						require.Equal(t, target.ID, e.ResourceID.UUID)
					})
			},
			errFn: require.NoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)
			tt.setup(ts)

			_, err := ts.s.UpdateUserPermissions(ctxAs(tt.caller), tt.userID, entity.UpdateUserPermissionInput{
				UserPermissionFlags: flags,
			})
			tt.errFn(t, err)
		})
	}
}

func TestService_UserPermissions_OthersNeedAdmin(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	tech := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeTechnician)

	_, err := ts.s.UserPermissions(ctxAs(tech), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrForbidden)
}
