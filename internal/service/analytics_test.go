package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func TestService_Dashboard(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)

	ts.repo.EXPECT().CountBy(gomock.Any(), admin, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entity.Principal, q entity.CountQuery) (map[string]int, error) {
			switch {
			case q.Resource == entity.ResourceAudit && q.GroupBy == "status":
				return map[string]int{"COMPLETED": 6, "PLANNED": 3, "IN_PROGRESS": 1}, nil
			case q.Resource == entity.ResourceCorrectiveAction && q.GroupBy == "status":
				return map[string]int{"OPEN": 4}, nil
			default:
				return map[string]int{}, nil
			}
		}).AnyTimes()
	ts.repo.EXPECT().Count(gomock.Any(), admin, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entity.Principal, q entity.CountQuery) (int, error) {
			if q.Resource == entity.ResourceCorrectiveAction && q.From != nil {
				if q.From.Month() == time.Now().Month() {
					return 11, nil
				}

				return 10, nil
			}

			return 0, nil
		}).AnyTimes()
	ts.repo.EXPECT().CountOverdueCorrectiveActions(gomock.Any(), admin, gomock.Any()).Return(2, nil)
	ts.repo.EXPECT().MonthlyCorrectiveActions(gomock.Any(), admin, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))
	ts.repo.EXPECT().StockSummary(gomock.Any(), admin.CompanyID).Return(entity.StockSummary{
		Items:      2,
		TotalValue: decimal.RequireFromString("150.50"),
	}, nil)

	d, err := ts.s.Dashboard(ctxAs(admin))
	r.NoError(err)

	r.Equal(10, d.Audits.Total)
	r.InDelta(60.0, d.Audits.CompletionRate, 0)

	r.Equal(4, d.CorrectiveActions.Total)
	r.Equal(2, d.CorrectiveActions.Overdue)
	r.InDelta(0.0, d.CorrectiveActions.CompletionRate, 0)
	r.Equal(11, d.CorrectiveActions.CreatedThisMonth)
	r.Equal(10, d.CorrectiveActions.CreatedLastMonth)
	r.InDelta(10.0, d.CorrectiveActions.MoMChange, 0)
	r.Equal("up", d.CorrectiveActions.Trend)
	r.Empty(d.CorrectiveActions.MonthlyTrend, "optional series degrades to empty")

	r.Equal(0, d.FlightRecords.Total)
	r.InDelta(0.0, d.FlightRecords.DefectRate, 0)
	r.Equal("150.5", d.Stock.TotalValue.String())
}

func TestService_Dashboard_PrimarySectionFailure(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)

	ts.repo.EXPECT().CountBy(gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string]int{}, nil).AnyTimes()
	ts.repo.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	ts.repo.EXPECT().CountOverdueCorrectiveActions(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	ts.repo.EXPECT().MonthlyCorrectiveActions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()
	ts.repo.EXPECT().StockSummary(gomock.Any(), admin.CompanyID).Return(entity.StockSummary{}, errors.New("boom"))

	_, err := ts.s.Dashboard(ctxAs(admin))
	require.ErrorContains(t, err, "stock summary")
}

func TestService_CorrectiveActionAnalytics(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	assignee := uuid.Must(uuid.NewV4()).String()

	ts.repo.EXPECT().CountBy(gomock.Any(), admin, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entity.Principal, q entity.CountQuery) (map[string]int, error) {
			switch q.GroupBy {
			case "status":
				return map[string]int{"COMPLETED": 1, "OPEN": 2}, nil
			case "priority":
				return map[string]int{"HIGH": 3}, nil
			default:
				return map[string]int{assignee: 2, "": 1}, nil
			}
		}).Times(3)
	ts.repo.EXPECT().MonthlyCorrectiveActions(gomock.Any(), admin, gomock.Any(), gomock.Any()).Return(
		[]entity.MonthlyCount{{Month: time.Now().Format("2006-01"), Total: 3, Completed: 1}}, nil)

	a, err := ts.s.CorrectiveActionAnalytics(ctxAs(admin), nil, nil)
	r.NoError(err)
	r.Equal(3, a.Total)
	r.InDelta(33.33, a.CompletionRate, 0.0001)
	r.Equal([]entity.GroupCount{{Key: "OPEN", Count: 2, Rate: 66.67}, {Key: "COMPLETED", Count: 1, Rate: 33.33}}, a.ByStatus)
	r.Equal([]entity.GroupCount{{Key: "HIGH", Count: 3, Rate: 100}}, a.ByPriority)
	r.Equal([]entity.GroupCount{{Key: assignee, Count: 2, Rate: 66.67}, {Key: "unassigned", Count: 1, Rate: 33.33}}, a.ByAssignee)

	r.Len(a.MonthlyTrend, 6)
	r.Equal(3, a.MonthlyTrend[5].Total)
	r.Equal(0, a.MonthlyTrend[0].Total)
}

func TestService_CorrectiveActionAnalytics_InvalidRange(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)

	from := time.Now()
	to := from.Add(-time.Hour)

	_, err := ts.s.CorrectiveActionAnalytics(ctxAs(admin), &from, &to)
	require.ErrorIs(t, err, entity.ErrValidation)
}
