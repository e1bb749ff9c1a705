package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type AuditType string

const (
	AuditTypeInternal   AuditType = "INTERNAL"
	AuditTypeExternal   AuditType = "EXTERNAL"
	AuditTypeRegulatory AuditType = "REGULATORY"
)

var AuditTypes = []string{string(AuditTypeInternal), string(AuditTypeExternal), string(AuditTypeRegulatory)}

type AuditStatus string

const (
	AuditStatusPlanned    AuditStatus = "PLANNED"
	AuditStatusInProgress AuditStatus = "IN_PROGRESS"
	AuditStatusCompleted  AuditStatus = "COMPLETED"
	AuditStatusCancelled  AuditStatus = "CANCELLED"
)

var AuditStatuses = []string{
	string(AuditStatusPlanned),
	string(AuditStatusInProgress),
	string(AuditStatusCompleted),
	string(AuditStatusCancelled),
}

type Audit struct {
	ID            uuid.UUID   `json:"id"`
	CompanyID     uuid.UUID   `json:"companyId"`
	Title         string      `json:"title"`
	AuditType     AuditType   `json:"auditType"`
	Status        AuditStatus `json:"status"`
	Auditor       string      `json:"auditor"`
	Department    string      `json:"department"`
	ScheduledDate time.Time   `json:"scheduledDate"`
	CompletedDate *time.Time  `json:"completedDate"`
	CreatedBy     uuid.UUID   `json:"createdBy"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type CreateAuditInput struct {
	Title         string      `json:"title" validate:"required,max=255"`
	AuditType     AuditType   `json:"auditType" validate:"required,oneof=INTERNAL EXTERNAL REGULATORY"`
	Status        AuditStatus `json:"status" validate:"omitempty,oneof=PLANNED IN_PROGRESS COMPLETED CANCELLED"`
	Auditor       string      `json:"auditor" validate:"max=128"`
	Department    string      `json:"department" validate:"max=128"`
	ScheduledDate *Date       `json:"scheduledDate" validate:"required"`
	CompletedDate *Date       `json:"completedDate"`
}

type UpdateAuditInput struct {
	Title         *string      `json:"title" validate:"omitnil,min=1,max=255"`
	AuditType     *AuditType   `json:"auditType" validate:"omitnil,oneof=INTERNAL EXTERNAL REGULATORY"`
	Status        *AuditStatus `json:"status" validate:"omitnil,oneof=PLANNED IN_PROGRESS COMPLETED CANCELLED"`
	Auditor       *string      `json:"auditor" validate:"omitnil,max=128"`
	Department    *string      `json:"department" validate:"omitnil,max=128"`
	ScheduledDate *Date        `json:"scheduledDate"`
	CompletedDate *Date        `json:"completedDate"`
}

func (in UpdateAuditInput) Apply(a Audit) Audit {
	if in.Title != nil {
		a.Title = *in.Title
	}

	if in.AuditType != nil {
		a.AuditType = *in.AuditType
	}

	if in.Status != nil {
		a.Status = *in.Status
	}

	if in.Auditor != nil {
		a.Auditor = *in.Auditor
	}

	if in.Department != nil {
		a.Department = *in.Department
	}

	if in.ScheduledDate != nil {
		a.ScheduledDate = DateOnly(in.ScheduledDate.Time)
	}

	if in.CompletedDate != nil {
		a.CompletedDate = in.CompletedDate.TimePtr()
	}

	return a
}

type FindingStatus string

const (
	FindingStatusOpen   FindingStatus = "OPEN"
	FindingStatusClosed FindingStatus = "CLOSED"
)

var FindingStatuses = []string{string(FindingStatusOpen), string(FindingStatusClosed)}

type Finding struct {
	ID          uuid.UUID     `json:"id"`
	CompanyID   uuid.UUID     `json:"companyId"`
	AuditID     uuid.UUID     `json:"auditId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    Severity      `json:"severity"`
	Status      FindingStatus `json:"status"`
	CreatedBy   uuid.UUID     `json:"createdBy"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type CreateFindingInput struct {
	AuditID     uuid.UUID `json:"auditId" validate:"required"`
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description" validate:"max=4000"`
	Severity    Severity  `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
}

type UpdateFindingInput struct {
	Title       *string        `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string        `json:"description" validate:"omitnil,max=4000"`
	Severity    *Severity      `json:"severity" validate:"omitnil,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status      *FindingStatus `json:"status" validate:"omitnil,oneof=OPEN CLOSED"`
}

func (in UpdateFindingInput) Apply(f Finding) Finding {
	if in.Title != nil {
		f.Title = *in.Title
	}

	if in.Description != nil {
		f.Description = *in.Description
	}

	if in.Severity != nil {
		f.Severity = *in.Severity
	}

	if in.Status != nil {
		f.Status = *in.Status
	}

	return f
}

type CorrectiveActionStatus string

const (
	CorrectiveActionStatusOpen       CorrectiveActionStatus = "OPEN"
	CorrectiveActionStatusInProgress CorrectiveActionStatus = "IN_PROGRESS"
	CorrectiveActionStatusCompleted  CorrectiveActionStatus = "COMPLETED"
	CorrectiveActionStatusCancelled  CorrectiveActionStatus = "CANCELLED"
)

var CorrectiveActionStatuses = []string{
	string(CorrectiveActionStatusOpen),
	string(CorrectiveActionStatusInProgress),
	string(CorrectiveActionStatusCompleted),
	string(CorrectiveActionStatusCancelled),
}

type CorrectiveAction struct {
	ID          uuid.UUID              `json:"id"`
	CompanyID   uuid.UUID              `json:"companyId"`
	FindingID   uuid.NullUUID          `json:"findingId"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	AssignedTo  uuid.NullUUID          `json:"assignedTo"`
	Priority    Severity               `json:"priority"`
	Status      CorrectiveActionStatus `json:"status"`
	DueDate     time.Time              `json:"dueDate"`
	CompletedAt *time.Time             `json:"completedAt"`
	CreatedBy   uuid.UUID              `json:"createdBy"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	Attachments []Attachment           `json:"attachments,omitempty"`
}

// IsOverdue reports whether the action is still open after its due date.
func (a CorrectiveAction) IsOverdue(now time.Time) bool {
	if a.Status == CorrectiveActionStatusCompleted || a.Status == CorrectiveActionStatusCancelled {
		return false
	}

	return a.DueDate.Before(DateOnly(now))
}

type CreateCorrectiveActionInput struct {
	FindingID   uuid.NullUUID `json:"findingId"`
	Title       string        `json:"title" validate:"required,max=255"`
	Description string        `json:"description" validate:"max=4000"`
	AssignedTo  uuid.NullUUID `json:"assignedTo"`
	Priority    Severity      `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	DueDate     *Date         `json:"dueDate" validate:"required"`
}

type UpdateCorrectiveActionInput struct {
	Title       *string                 `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string                 `json:"description" validate:"omitnil,max=4000"`
	AssignedTo  *uuid.NullUUID          `json:"assignedTo"`
	Priority    *Severity               `json:"priority" validate:"omitnil,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status      *CorrectiveActionStatus `json:"status" validate:"omitnil,oneof=OPEN IN_PROGRESS COMPLETED CANCELLED"`
	DueDate     *Date                   `json:"dueDate"`
}

// Apply patches the action. Moving into COMPLETED stamps CompletedAt, moving out of it clears it.
func (in UpdateCorrectiveActionInput) Apply(a CorrectiveAction, now time.Time) CorrectiveAction {
	if in.Title != nil {
		a.Title = *in.Title
	}

	if in.Description != nil {
		a.Description = *in.Description
	}

	if in.AssignedTo != nil {
		a.AssignedTo = *in.AssignedTo
	}

	if in.Priority != nil {
		a.Priority = *in.Priority
	}

	if in.Status != nil && *in.Status != a.Status {
		a.Status = *in.Status

		if a.Status == CorrectiveActionStatusCompleted {
			a.CompletedAt = &now
		} else {
			a.CompletedAt = nil
		}
	}

	if in.DueDate != nil {
		a.DueDate = DateOnly(in.DueDate.Time)
	}

	return a
}
