package entity

import (
	"time"
)

type ReportFormat string

const (
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatText ReportFormat = "text"
)

type ReportKind string

const (
	ReportAudits            ReportKind = "audits"
	ReportCorrectiveActions ReportKind = "corrective-actions"
	ReportStock             ReportKind = "stock"
	ReportSMS               ReportKind = "sms"
	ReportFlightRecords     ReportKind = "flight-records"
)

func (k ReportKind) IsValid() bool {
	switch k {
	case ReportAudits, ReportCorrectiveActions, ReportStock, ReportSMS, ReportFlightRecords:
		return true
	}

	return false
}

type ReportSummaryLine struct {
	Label string
	Value string
}

// ReportData is an already aggregated table ready to be rendered.
type ReportData struct {
	Kind        ReportKind
	Title       string
	CompanyName string
	GeneratedBy string
	GeneratedAt time.Time
	Summary     []ReportSummaryLine
	Columns     []string
	Rows        [][]string
}

type Artifact struct {
	Body     []byte
	MimeType string
	Filename string
}
