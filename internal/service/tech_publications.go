package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func fileList(file *entity.FileUpload) []entity.FileUpload {
	if file == nil {
		return nil
	}

	return []entity.FileUpload{*file}
}

func firstAttachment(attachments []entity.Attachment) *entity.Attachment {
	if len(attachments) == 0 {
		return nil
	}

	return &attachments[0]
}

func (s *Service) CreateTechPublication(
	ctx context.Context,
	in entity.CreateTechPublicationInput,
	file *entity.FileUpload,
) (entity.TechPublication, error) {
	p, err := requireAdmin(ctx)
	if err != nil {
		return entity.TechPublication{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.TechPublication{}, err
	}

	err = checkFileLimits(entity.ResourceTechPublication, fileList(file), 0)
	if err != nil {
		return entity.TechPublication{}, err
	}

	now := time.Now()

	tp := entity.TechPublication{
		ID:             uuid.Must(uuid.NewV4()),
		CompanyID:      p.CompanyID,
		Title:          in.Title,
		Category:       in.Category,
		RevisionNumber: in.RevisionNumber,
		RevisionDate:   in.RevisionDate.TimePtr(),
		Owner:          in.Owner,
		Description:    in.Description,
		UploadedBy:     p.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.repo.CreateTechPublication(ctx, tp)
	if err != nil {
		return entity.TechPublication{}, fmt.Errorf("create technical publication: %w", err)
	}

	attachments, err := s.uploadAttachments(ctx, p, entity.ResourceTechPublication, tp.ID, fileList(file))
	if err != nil {
		compensate(ctx, entity.ResourceTechPublication, tp.ID, func(ctx context.Context) error {
			return s.repo.DeleteTechPublication(ctx, p.CompanyID, tp.ID)
		})

		return entity.TechPublication{}, err
	}

	tp.Attachment = firstAttachment(attachments)

	changes := DiffTechPublication(entity.TechPublication{}, tp)
	s.writeRevision(ctx, newRevision(p, tp.ID, entity.ChangeTypeCreated, changes, ""))

	s.record(ctx, p, entity.ActionCreate, entity.ResourceTechPublication, tp.ID, tp.Title, map[string]any{
		"category": tp.Category,
	})

	return tp, nil
}

func (s *Service) GetTechPublication(ctx context.Context, id uuid.UUID) (entity.TechPublication, error) {
	p, err := s.authorize(ctx, entity.CapViewTechnicalPublications)
	if err != nil {
		return entity.TechPublication{}, err
	}

	tp, err := s.repo.TechPublication(ctx, p, id)
	if err != nil {
		return entity.TechPublication{}, fmt.Errorf("get technical publication: %w", err)
	}

	attachments, err := s.attachmentsOf(ctx, p, entity.ResourceTechPublication, tp.ID)
	if err != nil {
		return entity.TechPublication{}, err
	}

	tp.Attachment = firstAttachment(attachments)

	return tp, nil
}

func (s *Service) ListTechPublications(
	ctx context.Context,
	f entity.ListFilter,
) (entity.Page[entity.TechPublication], error) {
	p, err := s.authorize(ctx, entity.CapViewTechnicalPublications)
	if err != nil {
		return entity.Page[entity.TechPublication]{}, err
	}

	items, total, err := s.repo.TechPublications(ctx, p, f)
	if err != nil {
		return entity.Page[entity.TechPublication]{}, fmt.Errorf("list technical publications: %w", err)
	}

	return entity.NewPage(items, total, f), nil
}

// UpdateTechPublication applies the patch and, when a file is sent, replaces the stored attachment. The old
// blob and row are removed best effort before the new file is stored. A patch that changes nothing writes
// nothing.
func (s *Service) UpdateTechPublication(
	ctx context.Context,
	id uuid.UUID,
	in entity.UpdateTechPublicationInput,
	file *entity.FileUpload,
) (entity.TechPublication, error) {
	p, err := requireAdmin(ctx)
	if err != nil {
		return entity.TechPublication{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.TechPublication{}, err
	}

	err = checkFileLimits(entity.ResourceTechPublication, fileList(file), 0)
	if err != nil {
		return entity.TechPublication{}, err
	}

	old, err := s.repo.TechPublication(ctx, p, id)
	if err != nil {
		return entity.TechPublication{}, fmt.Errorf("get technical publication: %w", err)
	}

	tp := in.Apply(old)
	changes := DiffTechPublication(old, tp)

	if len(changes) == 0 && file == nil {
		return old, nil
	}

	var previous, added []entity.Attachment

	if file != nil {
		previous, err = s.repo.Attachments(ctx, p.CompanyID, entity.ResourceTechPublication, tp.ID)
		if err != nil {
			return entity.TechPublication{}, fmt.Errorf("list attachments: %w", err)
		}

		s.discardAttachments(ctx, p, previous)

		added, err = s.uploadAttachments(ctx, p, entity.ResourceTechPublication, tp.ID, fileList(file))
		if err != nil {
			return entity.TechPublication{}, err
		}
	}

	tp.UpdatedAt = time.Now()

	err = s.repo.UpdateTechPublication(ctx, tp)
	if err != nil {
		s.discardAttachments(context.WithoutCancel(ctx), p, added)
		return entity.TechPublication{}, fmt.Errorf("update technical publication: %w", err)
	}

	changeType := entity.ChangeTypeUpdated
	fileName := ""

	if file != nil {
		fileName = file.Name

		if len(previous) > 0 {
			changeType = entity.ChangeTypeAttachmentReplaced
		}
	}

	s.writeRevision(ctx, newRevision(p, tp.ID, changeType, changes, fileName))

	s.record(ctx, p, entity.ActionUpdate, entity.ResourceTechPublication, tp.ID, tp.Title, map[string]any{
		"changeType": changeType,
		"fields":     len(changes),
	})

	if file != nil {
		tp.Attachment = firstAttachment(added)
	}

	return tp, nil
}

// discardAttachments removes blobs and rows best effort.
func (s *Service) discardAttachments(ctx context.Context, p entity.Principal, attachments []entity.Attachment) {
	if len(attachments) == 0 {
		return
	}

	s.deleteBlobs(ctx, attachments)

	ids := make([]uuid.UUID, 0, len(attachments))
	for _, a := range attachments {
		ids = append(ids, a.ID)
	}

	err := s.repo.DeleteAttachments(ctx, p.CompanyID, ids...)
	if err != nil {
		slog.WarnContext(ctx, "delete attachment rows", "ids", ids, "error", err)
	}
}

func (s *Service) DeleteTechPublication(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error) {
	p, err := requireAdmin(ctx)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	tp, err := s.repo.TechPublication(ctx, p, id)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("get technical publication: %w", err)
	}

	res, err := s.deleteParent(ctx, p, entity.ResourceTechPublication, tp.ID, s.repo.DeleteTechPublication)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	s.record(ctx, p, entity.ActionDelete, entity.ResourceTechPublication, tp.ID, tp.Title, nil)

	return res, nil
}

func (s *Service) ListRevisions(
	ctx context.Context,
	publicationID uuid.UUID,
	f entity.ListFilter,
) (entity.Page[entity.Revision], error) {
	p, err := s.authorize(ctx, entity.CapViewTechnicalPublications)
	if err != nil {
		return entity.Page[entity.Revision]{}, err
	}

	_, err = s.repo.TechPublication(ctx, p, publicationID)
	if err != nil {
		return entity.Page[entity.Revision]{}, fmt.Errorf("get technical publication: %w", err)
	}

	f.ParentID = uuid.NullUUID{UUID: publicationID, Valid: true}

	items, total, err := s.repo.Revisions(ctx, p, f)
	if err != nil {
		return entity.Page[entity.Revision]{}, fmt.Errorf("list revisions: %w", err)
	}

	return entity.NewPage(items, total, f), nil
}
