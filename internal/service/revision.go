package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// revisionFields fixes the order fields are compared and described in.
var revisionFields = []string{"title", "category", "revisionNumber", "revisionDate", "owner", "description"}

func techPublicationValues(tp entity.TechPublication) map[string]string {
	revisionDate := ""
	if tp.RevisionDate != nil {
		revisionDate = tp.RevisionDate.Format(time.DateOnly)
	}

	return map[string]string{
		"title":          tp.Title,
		"category":       string(tp.Category),
		"revisionNumber": tp.RevisionNumber,
		"revisionDate":   revisionDate,
		"owner":          tp.Owner,
		"description":    tp.Description,
	}
}

// DiffTechPublication compares the string forms of the tracked fields. An empty map means nothing changed.
func DiffTechPublication(old, updated entity.TechPublication) map[string]entity.FieldChange {
	before, after := techPublicationValues(old), techPublicationValues(updated)
	changes := make(map[string]entity.FieldChange)

	for _, field := range revisionFields {
		if before[field] != after[field] {
			changes[field] = entity.FieldChange{Old: before[field], New: after[field]}
		}
	}

	return changes
}

func describeChanges(changeType entity.ChangeType, changes map[string]entity.FieldChange, fileName string) string {
	var fields []string

	for _, field := range revisionFields {
		if _, ok := changes[field]; ok {
			fields = append(fields, field)
		}
	}

	switch changeType {
	case entity.ChangeTypeCreated:
		return "Publication created"
	case entity.ChangeTypeAttachmentReplaced:
		if len(fields) == 0 {
			return "Attachment replaced with " + fileName
		}

		return "Attachment replaced with " + fileName + "; changed " + strings.Join(fields, ", ")
	default:
		if fileName != "" && len(fields) == 0 {
			return "Attachment added: " + fileName
		}

		return "Changed " + strings.Join(fields, ", ")
	}
}

func newRevision(
	p entity.Principal,
	parentID uuid.UUID,
	changeType entity.ChangeType,
	changes map[string]entity.FieldChange,
	fileName string,
) entity.Revision {
	previous := make(map[string]string, len(changes))
	next := make(map[string]string, len(changes))

	for field, c := range changes {
		previous[field] = c.Old
		next[field] = c.New
	}

	return entity.Revision{
		ID:                uuid.Must(uuid.NewV4()),
		CompanyID:         p.CompanyID,
		ParentID:          parentID,
		ChangeType:        changeType,
		ChangeDescription: describeChanges(changeType, changes, fileName),
		ChangedFields:     changes,
		PreviousValues:    previous,
		NewValues:         next,
		ModifiedBy:        p.UserID,
		CreatedAt:         time.Now(),
	}
}

// writeRevision never fails the caller; the publication change is already committed.
func (s *Service) writeRevision(ctx context.Context, rev entity.Revision) {
	err := s.repo.CreateRevision(ctx, rev)
	if err != nil {
		slog.ErrorContext(ctx, "write revision", "publication_id", rev.ParentID, "change_type", rev.ChangeType,
			"error", err)
	}
}
