package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/internal/mocks"
	"github.com/samandr77/microservices/mro/internal/service"
)

const testSecret = "test-secret"

type testService struct {
	repo     *mocks.MockRepository
	storage  *mocks.MockStorage
	activity *mocks.MockActivityRecorder
	notifier *mocks.MockNotifier
	weather  *mocks.MockWeatherProvider
	s        *service.Service
}

func newTestService(t *testing.T) *testService {
	t.Helper()

	return newTestServiceWithTTL(t, time.Hour)
}

func newTestServiceWithTTL(t *testing.T, ttl time.Duration) *testService {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := &testService{
		repo:     mocks.NewMockRepository(ctrl),
		storage:  mocks.NewMockStorage(ctrl),
		activity: mocks.NewMockActivityRecorder(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		weather:  mocks.NewMockWeatherProvider(ctrl),
	}

	ts.s = service.New(ts.repo, ts.storage, ts.activity, ts.notifier, ts.weather, service.AuthConfig{
		JWTSecret:      testSecret,
		AccessTokenTTL: ttl,
	})

	return ts
}

func newPrincipal(companyID uuid.UUID, privilege entity.Privilege) entity.Principal {
	return entity.Principal{
		UserID:      uuid.Must(uuid.NewV4()),
		CompanyID:   companyID,
		Privilege:   privilege,
		FirstName:   "Test",
		LastName:    string(privilege),
		Email:       string(privilege) + "@example.com",
		Username:    string(privilege),
		CompanyName: "Test Air",
	}
}

func ctxAs(p entity.Principal) context.Context {
	return entity.SetPrincipalToContext(context.Background(), p)
}

// expectPermission makes the permission lookup of p return its privilege defaults.
func (ts *testService) expectPermission(p entity.Principal) {
	ts.repo.EXPECT().Permission(gomock.Any(), p.CompanyID, p.UserID).Return(entity.UserPermission{
		UserID:              p.UserID,
		CompanyID:           p.CompanyID,
		UserPermissionFlags: entity.DefaultPermissions(p.Privilege),
	}, nil).AnyTimes()
}

func TestService_Authorization(t *testing.T) {
	t.Parallel()

	companyID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name  string
		ctx   context.Context
		errFn require.ErrorAssertionFunc
	}{
		{
			name: "no principal",
			ctx:  context.Background(),
			errFn: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, entity.ErrUnauthenticated)
			},
		},
		{
			name: "reader never mutates",
			ctx:  ctxAs(newPrincipal(companyID, entity.PrivilegeReader)),
			errFn: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, entity.ErrForbidden)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)

			_, err := ts.s.CreateStockItem(tt.ctx, entity.CreateStockItemInput{
				PartNumber: "PN-1",
				Condition:  entity.StockConditionNew,
			})
			tt.errFn(t, err)
		})
	}
}

func TestService_DefaultPermissionsCreatedOnFirstAccess(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	tech := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeTechnician)

	ts.repo.EXPECT().Permission(gomock.Any(), tech.CompanyID, tech.UserID).Return(entity.UserPermission{}, entity.ErrNotFound)
	ts.repo.EXPECT().CreatePermission(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entity.UserPermission) (entity.UserPermission, error) {
			r.Equal(tech.UserID, p.UserID)
			r.Equal(entity.DefaultPermissions(entity.PrivilegeTechnician), p.UserPermissionFlags)

			return p, nil
		})
	ts.repo.EXPECT().CreateStockItem(gomock.Any(), gomock.Any()).Return(nil)
	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	item, err := ts.s.CreateStockItem(ctxAs(tech), entity.CreateStockItemInput{
		PartNumber: "PN-1",
		Quantity:   3,
		Condition:  entity.StockConditionNew,
	})
	r.NoError(err)
	r.Equal(tech.CompanyID, item.CompanyID)
	r.Equal(tech.UserID, item.CreatedBy)
}

func TestService_TechnicianCannotDeleteStock(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	tech := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeTechnician)
	ts.expectPermission(tech)

	_, err := ts.s.DeleteStockItem(ctxAs(tech), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_OtherTenantIsNotFound(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	foreignID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().FlightRecord(gomock.Any(), admin, foreignID).Return(entity.FlightRecord{}, entity.ErrNotFound)

	_, err := ts.s.GetFlightRecord(ctxAs(admin), foreignID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_ValidationNamesField(t *testing.T) {
	t.Parallel()

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	valid := entity.CreateFlightRecordInput{
		FlightDate:           entity.NewDate(time.Now()),
		AircraftRegistration: "YL-ABC",
		DepartureAirport:     "RIX",
		ArrivalAirport:       "TLL",
	}

	tests := []struct {
		name  string
		patch func(in *entity.CreateFlightRecordInput)
		field string
	}{
		{
			name:  "missing registration",
			patch: func(in *entity.CreateFlightRecordInput) { in.AircraftRegistration = "" },
			field: "aircraftRegistration",
		},
		{
			name:  "missing flight date",
			patch: func(in *entity.CreateFlightRecordInput) { in.FlightDate = nil },
			field: "flightDate",
		},
		{
			name: "defect without description",
			patch: func(in *entity.CreateFlightRecordInput) {
				in.HasDefect = true
			},
			field: "defectDescription",
		},
		{
			name:  "unknown status",
			patch: func(in *entity.CreateFlightRecordInput) { in.Status = "LANDED" },
			field: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)

			in := valid
			tt.patch(&in)

			_, err := ts.s.CreateFlightRecord(ctxAs(admin), in, nil)
			require.ErrorIs(t, err, entity.ErrValidation)

			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.field, ve.Field)
		})
	}
}
