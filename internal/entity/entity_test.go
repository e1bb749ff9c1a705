package entity_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func TestListFilter_Normalized(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		in         entity.ListFilter
		wantPage   uint64
		wantLimit  uint64
		wantOffset uint64
	}{
		{name: "defaults", in: entity.ListFilter{}, wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "limit capped", in: entity.ListFilter{Page: 3, Limit: 500}, wantPage: 3, wantLimit: 100, wantOffset: 200},
		{name: "explicit", in: entity.ListFilter{Page: 2, Limit: 10}, wantPage: 2, wantLimit: 10, wantOffset: 10},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			got := tt.in.Normalized()
			r.Equal(tt.wantPage, got.Page)
			r.Equal(tt.wantLimit, got.Limit)
			r.Equal(tt.wantOffset, tt.in.Offset())
		})
	}
}

func TestNewPage_EmptyItems(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	p := entity.NewPage[entity.Audit](nil, 0, entity.ListFilter{})
	r.NotNil(p.Items)

	b, err := json.Marshal(p)
	r.NoError(err)
	r.JSONEq(`{"items":[],"total":0,"page":1,"limit":20}`, string(b))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		in    string
		want  string
		errFn require.ErrorAssertionFunc
	}{
		{name: "date only", in: `"2024-03-05"`, want: "2024-03-05", errFn: require.NoError},
		{name: "rfc3339", in: `"2024-03-05T10:11:12Z"`, want: "2024-03-05", errFn: require.NoError},
		{name: "garbage", in: `"05.03.2024"`, errFn: require.Error},
		{name: "number", in: `20240305`, errFn: require.Error},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d entity.Date

			err := json.Unmarshal([]byte(tt.in), &d)
			tt.errFn(t, err)

			if err == nil {
				require.Equal(t, tt.want, d.Format(time.DateOnly))
			}
		})
	}
}

func TestPrincipalFromContext(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	_, err := entity.PrincipalFromContext(context.Background())
	r.ErrorIs(err, entity.ErrUnauthenticated)

	_, err = entity.PrincipalFromContext(entity.SetPrincipalToContext(context.Background(), entity.Principal{}))
	r.ErrorIs(err, entity.ErrUnauthenticated)

	p := entity.Principal{UserID: uuid.Must(uuid.NewV4()), CompanyID: uuid.Must(uuid.NewV4())}

	got, err := entity.PrincipalFromContext(entity.SetPrincipalToContext(context.Background(), p))
	r.NoError(err)
	r.Equal(p, got)
}

func TestValidationError_Is(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var err error = entity.NewValidationError("title", "is required")

	r.ErrorIs(err, entity.ErrValidation)

	var ve *entity.ValidationError
	r.True(errors.As(err, &ve))
	r.Equal("title", ve.Field)
}

func TestCorrectiveAction_IsOverdue(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	a := entity.CorrectiveAction{
		Status:  entity.CorrectiveActionStatusOpen,
		DueDate: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
	}

	r.True(a.IsOverdue(now))

	a.DueDate = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	r.False(a.IsOverdue(now))

	a.DueDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	a.Status = entity.CorrectiveActionStatusCompleted
	r.False(a.IsOverdue(now))
}

func TestUpdateCorrectiveActionInput_Apply_CompletedAt(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	completed := entity.CorrectiveActionStatusCompleted
	open := entity.CorrectiveActionStatusOpen

	a := entity.UpdateCorrectiveActionInput{Status: &completed}.Apply(entity.CorrectiveAction{Status: open}, now)
	r.NotNil(a.CompletedAt)
	r.Equal(now, *a.CompletedAt)

	a = entity.UpdateCorrectiveActionInput{Status: &open}.Apply(a, now)
	r.Nil(a.CompletedAt)
}

func TestStockItem_TotalValue(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s := entity.StockItem{Quantity: 3, MinQuantity: 5, UnitPrice: decimal.RequireFromString("10.25")}

	r.Equal("30.75", s.TotalValue().StringFixed(2))
	r.True(s.IsLowStock())
}
