package repository_test

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/internal/repository"
)

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	companyID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	parentID := uuid.Must(uuid.NewV4())
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	technician := entity.Principal{UserID: userID, CompanyID: companyID, Privilege: entity.PrivilegeTechnician}
	admin := entity.Principal{UserID: userID, CompanyID: companyID, Privilege: entity.PrivilegeAdmin}

	for _, tt := range []struct {
		name      string
		principal entity.Principal
		filter    entity.ListFilter
		scope     repository.Scope
		wantSQL   string
		wantArgs  []any
	}{
		{
			name:      "company only",
			principal: technician,
			scope:     repository.AuditScope,
			wantSQL:   "(company_id = ?)",
			wantArgs:  []any{companyID.String()},
		},
		{
			name:      "self scoped for non admin",
			principal: technician,
			scope:     repository.SMSReportScope,
			wantSQL:   "(company_id = ? AND user_id = ?)",
			wantArgs:  []any{companyID.String(), userID.String()},
		},
		{
			name:      "self scope lifted for admin",
			principal: admin,
			scope:     repository.SMSReportScope,
			wantSQL:   "(company_id = ?)",
			wantArgs:  []any{companyID.String()},
		},
		{
			name:      "search is escaped and ORed",
			principal: technician,
			filter:    entity.ListFilter{Search: " 50%_off "},
			scope:     repository.Scope{Search: []string{"title", "owner"}},
			wantSQL:   "(company_id = ? AND (title ILIKE ? OR owner ILIKE ?))",
			wantArgs:  []any{companyID.String(), `%50\%\_off%`, `%50\%\_off%`},
		},
		{
			name:      "empty enum set is no filter",
			principal: technician,
			filter:    entity.ListFilter{Enums: map[string][]string{"status": {}, "severity": {" "}}},
			scope:     repository.SMSReportScope,
			wantSQL:   "(company_id = ? AND user_id = ?)",
			wantArgs:  []any{companyID.String(), userID.String()},
		},
		{
			name:      "enum sets become IN",
			principal: admin,
			filter: entity.ListFilter{Enums: map[string][]string{
				"status":   {"OPEN", "CLOSED"},
				"severity": {"HIGH"},
				"unknown":  {"x"},
			}},
			scope:    repository.SMSReportScope,
			wantSQL:  "(company_id = ? AND severity IN (?) AND status IN (?,?))",
			wantArgs: []any{companyID.String(), "HIGH", "OPEN", "CLOSED"},
		},
		{
			name:      "date range and parent",
			principal: admin,
			filter:    entity.ListFilter{From: &from, To: &to, ParentID: uuid.NullUUID{UUID: parentID, Valid: true}},
			scope:     repository.FindingScope,
			wantSQL:   "(company_id = ? AND created_at >= ? AND created_at <= ? AND audit_id = ?)",
			wantArgs:  []any{companyID.String(), from, to, parentID.String()},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			sql, args, err := repository.BuildFilter(tt.principal, tt.filter, tt.scope).ToSql()
			r.NoError(err)
			r.Equal(tt.wantSQL, sql)
			r.Equal(tt.wantArgs, args)
		})
	}
}

func TestBuildFilter_CompanyAlwaysFirst(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	p := entity.Principal{UserID: uuid.Must(uuid.NewV4()), CompanyID: uuid.Must(uuid.NewV4()), Privilege: entity.PrivilegeReader}

	for _, s := range []repository.Scope{
		repository.FlightRecordScope,
		repository.TechPublicationScope,
		repository.SMSReportScope,
		repository.AuditScope,
		repository.FindingScope,
		repository.CorrectiveActionScope,
		repository.StockItemScope,
		repository.ActivityScope,
		repository.RevisionScope,
	} {
		stmt := sq.Select("id").From(s.Table).Where(repository.BuildFilter(p, entity.ListFilter{Search: "x"}, s)).
			PlaceholderFormat(sq.Dollar)

		sql, args, err := stmt.ToSql()
		r.NoError(err)
		r.Contains(sql, "WHERE (company_id = $1", s.Table)
		// uuid values reach the driver through their Valuer.
		r.Equal(p.CompanyID.String(), args[0], s.Table)
	}
}
