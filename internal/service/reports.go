package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/mro/internal/analytics"
	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/internal/report"
)

const reportRowLimit = 10000

// collect pages through a list query until everything up to reportRowLimit rows is read.
func collect[T any](
	ctx context.Context,
	p entity.Principal,
	f entity.ListFilter,
	fetch func(context.Context, entity.Principal, entity.ListFilter) ([]T, int, error),
) ([]T, error) {
	f.Limit = entity.MaxLimit
	f.Page = 1

	var all []T

	for len(all) < reportRowLimit {
		items, total, err := fetch(ctx, p, f)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if len(items) == 0 || len(all) >= total {
			break
		}

		f.Page++
	}

	if len(all) > reportRowLimit {
		all = all[:reportRowLimit]
	}

	return all, nil
}

func reportCapability(kind entity.ReportKind) entity.Capability {
	switch kind {
	case entity.ReportAudits:
		return entity.CapViewAudits
	case entity.ReportCorrectiveActions:
		return entity.CapViewCorrectiveActions
	case entity.ReportStock:
		return entity.CapViewStock
	case entity.ReportSMS:
		return entity.CapViewSMSReports
	default:
		return entity.CapViewFlightRecords
	}
}

func isKnownFormat(format entity.ReportFormat) bool {
	switch format {
	case entity.ReportFormatXLSX, entity.ReportFormatHTML, entity.ReportFormatText:
		return true
	}

	return false
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.DateOnly)
}

// ExportReport renders a company report of one kind. from and to narrow the rows by the resource's date.
func (s *Service) ExportReport(
	ctx context.Context,
	kind entity.ReportKind,
	format entity.ReportFormat,
	from, to *time.Time,
) (entity.Artifact, error) {
	if !kind.IsValid() {
		return entity.Artifact{}, entity.NewValidationError("kind", "unknown report")
	}

	if !isKnownFormat(format) {
		return entity.Artifact{}, fmt.Errorf("%w: %q", entity.ErrUnsupportedFormat, format)
	}

	p, err := s.authorize(ctx, entity.CapExportReports, reportCapability(kind))
	if err != nil {
		return entity.Artifact{}, err
	}

	f := entity.ListFilter{From: from, To: to}

	var data entity.ReportData

	switch kind {
	case entity.ReportAudits:
		data, err = s.auditReport(ctx, p, f)
	case entity.ReportCorrectiveActions:
		data, err = s.correctiveActionReport(ctx, p, f)
	case entity.ReportStock:
		data, err = s.stockReport(ctx, p, f)
	case entity.ReportSMS:
		data, err = s.smsReport(ctx, p, f)
	case entity.ReportFlightRecords:
		data, err = s.flightRecordReport(ctx, p, f)
	}

	if err != nil {
		return entity.Artifact{}, fmt.Errorf("collect %s report: %w", kind, err)
	}

	data.Kind = kind
	data.CompanyName = p.CompanyName
	data.GeneratedBy = p.FullName()
	data.GeneratedAt = time.Now()

	artifact, err := report.Render(data, format)
	if err != nil {
		return entity.Artifact{}, err
	}

	s.record(ctx, p, entity.ActionExport, entity.ResourceReport, uuid.Nil, data.Title, map[string]any{
		"kind":   kind,
		"format": format,
		"rows":   len(data.Rows),
	})

	return artifact, nil
}

func (s *Service) auditReport(ctx context.Context, p entity.Principal, f entity.ListFilter) (entity.ReportData, error) {
	audits, err := collect(ctx, p, f, s.repo.Audits)
	if err != nil {
		return entity.ReportData{}, err
	}

	completed := 0
	rows := make([][]string, 0, len(audits))

	for _, a := range audits {
		if a.Status == entity.AuditStatusCompleted {
			completed++
		}

		rows = append(rows, []string{
			a.Title,
			string(a.AuditType),
			string(a.Status),
			a.Auditor,
			a.Department,
			a.ScheduledDate.Format(time.DateOnly),
			formatDate(a.CompletedDate),
		})
	}

	return entity.ReportData{
		Title:   "Audits",
		Columns: []string{"Title", "Type", "Status", "Auditor", "Department", "Scheduled", "Completed"},
		Rows:    rows,
		Summary: []entity.ReportSummaryLine{
			{Label: "Total", Value: strconv.Itoa(len(audits))},
			{Label: "Completed", Value: strconv.Itoa(completed)},
			{Label: "Completion rate, %", Value: fmt.Sprintf("%.2f", analytics.Rate(completed, len(audits)))},
		},
	}, nil
}

func (s *Service) correctiveActionReport(
	ctx context.Context,
	p entity.Principal,
	f entity.ListFilter,
) (entity.ReportData, error) {
	actions, err := collect(ctx, p, f, s.repo.CorrectiveActions)
	if err != nil {
		return entity.ReportData{}, err
	}

	now := time.Now()
	completed, overdue := 0, 0
	rows := make([][]string, 0, len(actions))

	for _, a := range actions {
		if a.Status == entity.CorrectiveActionStatusCompleted {
			completed++
		}

		isOverdue := a.IsOverdue(now)
		if isOverdue {
			overdue++
		}

		rows = append(rows, []string{
			a.Title,
			string(a.Priority),
			string(a.Status),
			a.DueDate.Format(time.DateOnly),
			formatDate(a.CompletedAt),
			strconv.FormatBool(isOverdue),
		})
	}

	return entity.ReportData{
		Title:   "Corrective actions",
		Columns: []string{"Title", "Priority", "Status", "Due", "Completed", "Overdue"},
		Rows:    rows,
		Summary: []entity.ReportSummaryLine{
			{Label: "Total", Value: strconv.Itoa(len(actions))},
			{Label: "Overdue", Value: strconv.Itoa(overdue)},
			{Label: "Completion rate, %", Value: fmt.Sprintf("%.2f", analytics.Rate(completed, len(actions)))},
		},
	}, nil
}

func (s *Service) stockReport(ctx context.Context, p entity.Principal, f entity.ListFilter) (entity.ReportData, error) {
	items, err := collect(ctx, p, f, s.repo.StockItems)
	if err != nil {
		return entity.ReportData{}, err
	}

	total := decimal.Zero
	low := 0
	rows := make([][]string, 0, len(items))

	for _, it := range items {
		total = total.Add(it.TotalValue())

		if it.IsLowStock() {
			low++
		}

		rows = append(rows, []string{
			it.PartNumber,
			it.SerialNumber,
			it.Description,
			strconv.Itoa(it.Quantity),
			strconv.Itoa(it.MinQuantity),
			it.UnitPrice.StringFixed(2),
			it.TotalValue().StringFixed(2),
			it.Location,
			string(it.Condition),
			formatDate(it.ExpiryDate),
		})
	}

	return entity.ReportData{
		Title: "Stock",
		Columns: []string{
			"Part number", "Serial number", "Description", "Quantity", "Min quantity", "Unit price", "Value",
			"Location", "Condition", "Expiry",
		},
		Rows: rows,
		Summary: []entity.ReportSummaryLine{
			{Label: "Items", Value: strconv.Itoa(len(items))},
			{Label: "Low stock", Value: strconv.Itoa(low)},
			{Label: "Total value", Value: total.StringFixed(2)},
		},
	}, nil
}

func (s *Service) smsReport(ctx context.Context, p entity.Principal, f entity.ListFilter) (entity.ReportData, error) {
	reports, err := collect(ctx, p, f, s.repo.SMSReports)
	if err != nil {
		return entity.ReportData{}, err
	}

	open := 0
	rows := make([][]string, 0, len(reports))

	for _, r := range reports {
		if r.Status != entity.SMSReportStatusClosed {
			open++
		}

		rows = append(rows, []string{
			r.Title,
			r.HazardCategory,
			string(r.Severity),
			string(r.Status),
			r.OccurredAt.Format(time.DateOnly),
			r.Location,
		})
	}

	return entity.ReportData{
		Title:   "SMS reports",
		Columns: []string{"Title", "Hazard category", "Severity", "Status", "Occurred", "Location"},
		Rows:    rows,
		Summary: []entity.ReportSummaryLine{
			{Label: "Total", Value: strconv.Itoa(len(reports))},
			{Label: "Not closed", Value: strconv.Itoa(open)},
		},
	}, nil
}

func (s *Service) flightRecordReport(
	ctx context.Context,
	p entity.Principal,
	f entity.ListFilter,
) (entity.ReportData, error) {
	records, err := collect(ctx, p, f, s.repo.FlightRecords)
	if err != nil {
		return entity.ReportData{}, err
	}

	hours := decimal.Zero
	defects := 0
	rows := make([][]string, 0, len(records))

	for _, r := range records {
		hours = hours.Add(r.FlightHours)

		if r.HasDefect {
			defects++
		}

		rows = append(rows, []string{
			r.FlightDate.Format(time.DateOnly),
			r.AircraftRegistration,
			r.AircraftType,
			r.DepartureAirport,
			r.ArrivalAirport,
			r.FlightHours.StringFixed(1),
			r.PilotName,
			string(r.Status),
			strconv.FormatBool(r.HasDefect),
		})
	}

	return entity.ReportData{
		Title: "Flight records",
		Columns: []string{
			"Date", "Registration", "Type", "From", "To", "Hours", "Pilot", "Status", "Defect",
		},
		Rows: rows,
		Summary: []entity.ReportSummaryLine{
			{Label: "Flights", Value: strconv.Itoa(len(records))},
			{Label: "Flight hours", Value: hours.StringFixed(1)},
			{Label: "Defect rate, %", Value: fmt.Sprintf("%.2f", analytics.Rate(defects, len(records)))},
		},
	}, nil
}
