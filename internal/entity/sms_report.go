package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type SMSReportStatus string

const (
	SMSReportStatusOpen        SMSReportStatus = "OPEN"
	SMSReportStatusUnderReview SMSReportStatus = "UNDER_REVIEW"
	SMSReportStatusClosed      SMSReportStatus = "CLOSED"
)

var SMSReportStatuses = []string{
	string(SMSReportStatusOpen),
	string(SMSReportStatusUnderReview),
	string(SMSReportStatusClosed),
}

// SMSReport is a safety management system hazard report. Non-admins only ever see their own.
type SMSReport struct {
	ID             uuid.UUID       `json:"id"`
	CompanyID      uuid.UUID       `json:"companyId"`
	UserID         uuid.UUID       `json:"userId"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	HazardCategory string          `json:"hazardCategory"`
	Severity       Severity        `json:"severity"`
	Status         SMSReportStatus `json:"status"`
	OccurredAt     time.Time       `json:"occurredAt"`
	Location       string          `json:"location"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Attachments    []Attachment    `json:"attachments,omitempty"`
}

type CreateSMSReportInput struct {
	Title          string    `json:"title" validate:"required,max=255"`
	Description    string    `json:"description" validate:"required,max=8000"`
	HazardCategory string    `json:"hazardCategory" validate:"max=128"`
	Severity       Severity  `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	OccurredAt     time.Time `json:"occurredAt" validate:"required"`
	Location       string    `json:"location" validate:"max=255"`
}

type UpdateSMSReportInput struct {
	Title          *string          `json:"title" validate:"omitnil,min=1,max=255"`
	Description    *string          `json:"description" validate:"omitnil,min=1,max=8000"`
	HazardCategory *string          `json:"hazardCategory" validate:"omitnil,max=128"`
	Severity       *Severity        `json:"severity" validate:"omitnil,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status         *SMSReportStatus `json:"status" validate:"omitnil,oneof=OPEN UNDER_REVIEW CLOSED"`
	OccurredAt     *time.Time       `json:"occurredAt"`
	Location       *string          `json:"location" validate:"omitnil,max=255"`
}

func (in UpdateSMSReportInput) Apply(r SMSReport) SMSReport {
	if in.Title != nil {
		r.Title = *in.Title
	}

	if in.Description != nil {
		r.Description = *in.Description
	}

	if in.HazardCategory != nil {
		r.HazardCategory = *in.HazardCategory
	}

	if in.Severity != nil {
		r.Severity = *in.Severity
	}

	if in.Status != nil {
		r.Status = *in.Status
	}

	if in.OccurredAt != nil {
		r.OccurredAt = *in.OccurredAt
	}

	if in.Location != nil {
		r.Location = *in.Location
	}

	return r
}
