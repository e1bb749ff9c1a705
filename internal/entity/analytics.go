package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountQuery asks for tenant scoped row counts of a resource, optionally grouped by one column. Column names
// are checked against a per resource allow list. DateColumn defaults to created_at.
type CountQuery struct {
	Resource   ResourceKind
	GroupBy    string
	Where      map[string]any
	DateColumn string
	From       *time.Time
	To         *time.Time
}

type GroupCount struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"`
}

type MonthlyCount struct {
	Month     string `json:"month"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

type AuditSummary struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"byStatus"`
	CompletionRate float64        `json:"completionRate"`
}

type FindingSummary struct {
	Total      int            `json:"total"`
	Open       int            `json:"open"`
	BySeverity map[string]int `json:"bySeverity"`
}

type CorrectiveActionSummary struct {
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"byStatus"`
	ByPriority       map[string]int `json:"byPriority"`
	Overdue          int            `json:"overdue"`
	CompletionRate   float64        `json:"completionRate"`
	CreatedThisMonth int            `json:"createdThisMonth"`
	CreatedLastMonth int            `json:"createdLastMonth"`
	MoMChange        float64        `json:"momChange"`
	Trend            string         `json:"trend"`
	MonthlyTrend     []MonthlyCount `json:"monthlyTrend"`
}

type SMSSummary struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	BySeverity map[string]int `json:"bySeverity"`
}

type FlightRecordSummary struct {
	Total       int     `json:"total"`
	ThisMonth   int     `json:"thisMonth"`
	ThisWeek    int     `json:"thisWeek"`
	Today       int     `json:"today"`
	YearToDate  int     `json:"yearToDate"`
	WithDefects int     `json:"withDefects"`
	DefectRate  float64 `json:"defectRate"`
}

type StockSummary struct {
	Items      int             `json:"items"`
	Quantity   int             `json:"quantity"`
	LowStock   int             `json:"lowStock"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

type Dashboard struct {
	GeneratedAt       time.Time               `json:"generatedAt"`
	Audits            AuditSummary            `json:"audits"`
	Findings          FindingSummary          `json:"findings"`
	CorrectiveActions CorrectiveActionSummary `json:"correctiveActions"`
	SMSReports        SMSSummary              `json:"smsReports"`
	FlightRecords     FlightRecordSummary     `json:"flightRecords"`
	Stock             StockSummary            `json:"stock"`
}

type CorrectiveActionAnalytics struct {
	Total          int            `json:"total"`
	CompletionRate float64        `json:"completionRate"`
	ByStatus       []GroupCount   `json:"byStatus"`
	ByPriority     []GroupCount   `json:"byPriority"`
	ByAssignee     []GroupCount   `json:"byAssignee"`
	MonthlyTrend   []MonthlyCount `json:"monthlyTrend"`
}
