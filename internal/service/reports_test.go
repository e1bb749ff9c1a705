package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/internal/report"
)

func TestService_ExportReport(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	admin := newPrincipal(uuid.Must(uuid.NewV4()), entity.PrivilegeAdmin)
	scheduled := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	ts.repo.EXPECT().Audits(gomock.Any(), admin, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entity.Principal, f entity.ListFilter) ([]entity.Audit, int, error) {
			r.Equal(entity.MaxLimit, f.Limit)
			r.Equal(uint64(1), f.Page)

			return []entity.Audit{
				{Title: "Line station audit", AuditType: entity.AuditTypeInternal, Status: entity.AuditStatusCompleted, ScheduledDate: scheduled},
				{Title: "CAA oversight", AuditType: entity.AuditTypeRegulatory, Status: entity.AuditStatusPlanned, ScheduledDate: scheduled},
			}, 2, nil
		})
	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entity.ActivityLogEntry) {
		r.Equal(entity.ActionExport, e.Action)
		r.Equal(entity.ResourceReport, e.ResourceType)
		r.False(e.ResourceID.Valid)
	})

	artifact, err := ts.s.ExportReport(ctxAs(admin), entity.ReportAudits, entity.ReportFormatText, nil, nil)
	r.NoError(err)
	r.Equal(report.MimeText, artifact.MimeType)
	r.True(strings.HasPrefix(artifact.Filename, "audits-"))
	r.Contains(string(artifact.Body), "Line station audit")
	r.Contains(string(artifact.Body), "50.00")
}

func TestService_ExportReport_Rejected(t *testing.T) {
	t.Parallel()

	companyID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name   string
		caller entity.Principal
		kind   entity.ReportKind
		format entity.ReportFormat
		setup  func(ts *testService, p entity.Principal)
		err    error
	}{
		{
			name:   "unsupported format",
			caller: newPrincipal(companyID, entity.PrivilegeAdmin),
			kind:   entity.ReportStock,
			format: "pdf",
			setup:  func(*testService, entity.Principal) {},
			err:    entity.ErrUnsupportedFormat,
		},
		{
			name:   "unknown kind",
			caller: newPrincipal(companyID, entity.PrivilegeAdmin),
			kind:   "payroll",
			format: entity.ReportFormatXLSX,
			setup:  func(*testService, entity.Principal) {},
			err:    entity.ErrValidation,
		},
		{
			name:   "no export permission",
			caller: newPrincipal(companyID, entity.PrivilegeReader),
			kind:   entity.ReportStock,
			format: entity.ReportFormatHTML,
			setup: func(ts *testService, p entity.Principal) {
				ts.expectPermission(p)
			},
			err: entity.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)
			tt.setup(ts, tt.caller)

			_, err := ts.s.ExportReport(ctxAs(tt.caller), tt.kind, tt.format, nil, nil)
			require.ErrorIs(t, err, tt.err)
		})
	}
}
