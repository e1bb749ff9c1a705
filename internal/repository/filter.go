package repository

import (
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// Scope describes how list queries of one table are filtered and ordered.
type Scope struct {
	Table string
	// UserColumn is set for self scoped tables: non admins only see rows they own.
	UserColumn   string
	Search       []string
	Enums        map[string]string
	DateColumn   string
	ParentColumn string
	OrderColumn  string
}

var (
	FlightRecordScope = Scope{
		Table:       "flight_records",
		Search:      []string{"aircraft_registration", "aircraft_type", "departure_airport", "arrival_airport", "pilot_name", "remarks"},
		Enums:       map[string]string{"status": "status"},
		DateColumn:  "flight_date",
		OrderColumn: "flight_date",
	}
	TechPublicationScope = Scope{
		Table:       "technical_publications",
		Search:      []string{"title", "revision_number", "owner", "description"},
		Enums:       map[string]string{"category": "category"},
		DateColumn:  "revision_date",
		OrderColumn: "updated_at",
	}
	SMSReportScope = Scope{
		Table:       "sms_reports",
		UserColumn:  "user_id",
		Search:      []string{"title", "description", "hazard_category", "location"},
		Enums:       map[string]string{"status": "status", "severity": "severity"},
		DateColumn:  "occurred_at",
		OrderColumn: "created_at",
	}
	AuditScope = Scope{
		Table:       "audits",
		Search:      []string{"title", "auditor", "department"},
		Enums:       map[string]string{"status": "status", "auditType": "audit_type"},
		DateColumn:  "scheduled_date",
		OrderColumn: "scheduled_date",
	}
	FindingScope = Scope{
		Table:        "findings",
		Search:       []string{"title", "description"},
		Enums:        map[string]string{"status": "status", "severity": "severity"},
		DateColumn:   "created_at",
		ParentColumn: "audit_id",
		OrderColumn:  "created_at",
	}
	CorrectiveActionScope = Scope{
		Table:        "corrective_actions",
		Search:       []string{"title", "description"},
		Enums:        map[string]string{"status": "status", "priority": "priority"},
		DateColumn:   "due_date",
		ParentColumn: "finding_id",
		OrderColumn:  "created_at",
	}
	StockItemScope = Scope{
		Table:       "stock_items",
		Search:      []string{"part_number", "serial_number", "description", "location"},
		Enums:       map[string]string{"condition": "condition"},
		DateColumn:  "expiry_date",
		OrderColumn: "updated_at",
	}
	ActivityScope = Scope{
		Table:       "activity_log",
		UserColumn:  "user_id",
		Search:      []string{"resource_title"},
		Enums:       map[string]string{"action": "action", "resourceType": "resource_type"},
		DateColumn:  "created_at",
		OrderColumn: "created_at",
	}
	RevisionScope = Scope{
		Table:        "tech_publication_revisions",
		ParentColumn: "parent_id",
		Enums:        map[string]string{"changeType": "change_type"},
		DateColumn:   "created_at",
		OrderColumn:  "created_at",
	}
)

// Ownership is the part of every query that the client never controls: the principal's company and, for self
// scoped tables and non admin principals, the principal's own rows.
func Ownership(p entity.Principal, s Scope) sq.And {
	cond := sq.And{sq.Eq{"company_id": p.CompanyID}}

	if s.UserColumn != "" && !p.IsAdmin() {
		cond = append(cond, sq.Eq{s.UserColumn: p.UserID})
	}

	return cond
}

// BuildFilter turns client parameters into a WHERE clause that always starts with Ownership. Unknown enum keys
// are ignored and an empty value set means no filter on that key.
func BuildFilter(p entity.Principal, f entity.ListFilter, s Scope) sq.And {
	cond := Ownership(p, s)

	if search := strings.TrimSpace(f.Search); search != "" && len(s.Search) > 0 {
		pattern := "%" + escapeLike(search) + "%"
		or := make(sq.Or, 0, len(s.Search))

		for _, col := range s.Search {
			or = append(or, sq.ILike{col: pattern})
		}

		cond = append(cond, or)
	}

	keys := make([]string, 0, len(s.Enums))
	for k := range s.Enums {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		values := nonEmpty(f.Enums[k])
		if len(values) == 0 {
			continue
		}

		cond = append(cond, sq.Eq{s.Enums[k]: values})
	}

	if s.DateColumn != "" {
		if f.From != nil {
			cond = append(cond, sq.GtOrEq{s.DateColumn: *f.From})
		}

		if f.To != nil {
			cond = append(cond, sq.LtOrEq{s.DateColumn: *f.To})
		}
	}

	if s.ParentColumn != "" && f.ParentID.Valid {
		cond = append(cond, sq.Eq{s.ParentColumn: f.ParentID.UUID})
	}

	return cond
}

// applyPage orders newest first with id as the tie breaker so that pages never overlap.
func applyPage(stmt sq.SelectBuilder, f entity.ListFilter, s Scope) sq.SelectBuilder {
	f = f.Normalized()

	return stmt.
		OrderBy(s.OrderColumn+" DESC", "id DESC").
		Limit(f.Limit).
		Offset(f.Offset())
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))

	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
