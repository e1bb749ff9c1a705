package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type TechPublicationCategory string

const (
	TechPublicationAMM   TechPublicationCategory = "AMM"
	TechPublicationIPC   TechPublicationCategory = "IPC"
	TechPublicationSB    TechPublicationCategory = "SB"
	TechPublicationAD    TechPublicationCategory = "AD"
	TechPublicationSRM   TechPublicationCategory = "SRM"
	TechPublicationCMM   TechPublicationCategory = "CMM"
	TechPublicationOther TechPublicationCategory = "OTHER"
)

var TechPublicationCategories = []string{
	string(TechPublicationAMM),
	string(TechPublicationIPC),
	string(TechPublicationSB),
	string(TechPublicationAD),
	string(TechPublicationSRM),
	string(TechPublicationCMM),
	string(TechPublicationOther),
}

type TechPublication struct {
	ID             uuid.UUID               `json:"id"`
	CompanyID      uuid.UUID               `json:"companyId"`
	Title          string                  `json:"title"`
	Category       TechPublicationCategory `json:"category"`
	RevisionNumber string                  `json:"revisionNumber"`
	RevisionDate   *time.Time              `json:"revisionDate"`
	Owner          string                  `json:"owner"`
	Description    string                  `json:"description"`
	UploadedBy     uuid.UUID               `json:"uploadedBy"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
	Attachment     *Attachment             `json:"attachment,omitempty"`
}

type CreateTechPublicationInput struct {
	Title          string                  `json:"title" validate:"required,max=255"`
	Category       TechPublicationCategory `json:"category" validate:"required,oneof=AMM IPC SB AD SRM CMM OTHER"`
	RevisionNumber string                  `json:"revisionNumber" validate:"required,max=32"`
	RevisionDate   *Date                   `json:"revisionDate"`
	Owner          string                  `json:"owner" validate:"max=128"`
	Description    string                  `json:"description" validate:"max=4000"`
}

type UpdateTechPublicationInput struct {
	Title          *string                  `json:"title" validate:"omitnil,min=1,max=255"`
	Category       *TechPublicationCategory `json:"category" validate:"omitnil,oneof=AMM IPC SB AD SRM CMM OTHER"`
	RevisionNumber *string                  `json:"revisionNumber" validate:"omitnil,min=1,max=32"`
	RevisionDate   *Date                    `json:"revisionDate"`
	Owner          *string                  `json:"owner" validate:"omitnil,max=128"`
	Description    *string                  `json:"description" validate:"omitnil,max=4000"`
}

func (in UpdateTechPublicationInput) Apply(p TechPublication) TechPublication {
	if in.Title != nil {
		p.Title = *in.Title
	}

	if in.Category != nil {
		p.Category = *in.Category
	}

	if in.RevisionNumber != nil {
		p.RevisionNumber = *in.RevisionNumber
	}

	if in.RevisionDate != nil {
		p.RevisionDate = in.RevisionDate.TimePtr()
	}

	if in.Owner != nil {
		p.Owner = *in.Owner
	}

	if in.Description != nil {
		p.Description = *in.Description
	}

	return p
}

type ChangeType string

const (
	ChangeTypeCreated            ChangeType = "CREATED"
	ChangeTypeUpdated            ChangeType = "UPDATED"
	ChangeTypeAttachmentReplaced ChangeType = "ATTACHMENT_REPLACED"
)

type FieldChange struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// Revision is an immutable history entry of a technical publication.
type Revision struct {
	ID                uuid.UUID              `json:"id"`
	CompanyID         uuid.UUID              `json:"companyId"`
	ParentID          uuid.UUID              `json:"parentId"`
	ChangeType        ChangeType             `json:"changeType"`
	ChangeDescription string                 `json:"changeDescription"`
	ChangedFields     map[string]FieldChange `json:"changedFields"`
	PreviousValues    map[string]string      `json:"previousValues"`
	NewValues         map[string]string      `json:"newValues"`
	ModifiedBy        uuid.UUID              `json:"modifiedBy"`
	CreatedAt         time.Time              `json:"createdAt"`
}
