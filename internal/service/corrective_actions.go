package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// assignee resolves the user an action is assigned to. Users of other companies do not exist here.
func (s *Service) assignee(ctx context.Context, p entity.Principal, id uuid.NullUUID) (entity.User, error) {
	u, err := s.repo.CompanyUser(ctx, p.CompanyID, id.UUID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, entity.NewValidationError("assignedTo", "user does not exist")
		}

		return entity.User{}, fmt.Errorf("get assignee: %w", err)
	}

	return u, nil
}

func (s *Service) CreateCorrectiveAction(
	ctx context.Context,
	in entity.CreateCorrectiveActionInput,
	files []entity.FileUpload,
) (entity.CorrectiveAction, error) {
	p, err := s.authorize(ctx, entity.CapManageCorrectiveActions)
	if err != nil {
		return entity.CorrectiveAction{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.CorrectiveAction{}, err
	}

	err = checkFileLimits(entity.ResourceCorrectiveAction, files, 0)
	if err != nil {
		return entity.CorrectiveAction{}, err
	}

	if in.FindingID.Valid {
		_, err = s.repo.Finding(ctx, p, in.FindingID.UUID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return entity.CorrectiveAction{}, entity.NewValidationError("findingId", "finding does not exist")
			}

			return entity.CorrectiveAction{}, fmt.Errorf("get finding: %w", err)
		}
	}

	var assignee entity.User

	if in.AssignedTo.Valid {
		assignee, err = s.assignee(ctx, p, in.AssignedTo)
		if err != nil {
			return entity.CorrectiveAction{}, err
		}
	}

	now := time.Now()

	a := entity.CorrectiveAction{
		ID:          uuid.Must(uuid.NewV4()),
		CompanyID:   p.CompanyID,
		FindingID:   in.FindingID,
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		Priority:    in.Priority,
		Status:      entity.CorrectiveActionStatusOpen,
		DueDate:     entity.DateOnly(in.DueDate.Time),
		CreatedBy:   p.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.CreateCorrectiveAction(ctx, a)
	if err != nil {
		return entity.CorrectiveAction{}, fmt.Errorf("create corrective action: %w", err)
	}

	a.Attachments, err = s.uploadAttachments(ctx, p, entity.ResourceCorrectiveAction, a.ID, files)
	if err != nil {
		compensate(ctx, entity.ResourceCorrectiveAction, a.ID, func(ctx context.Context) error {
			return s.repo.DeleteCorrectiveAction(ctx, p.CompanyID, a.ID)
		})

		return entity.CorrectiveAction{}, err
	}

	s.record(ctx, p, entity.ActionCreate, entity.ResourceCorrectiveAction, a.ID, a.Title, map[string]any{
		"priority": a.Priority,
		"files":    len(a.Attachments),
	})

	if a.AssignedTo.Valid {
		s.notifyAssignment(ctx, p, a, assignee)
	}

	return a, nil
}

func (s *Service) GetCorrectiveAction(ctx context.Context, id uuid.UUID) (entity.CorrectiveAction, error) {
	p, err := s.authorize(ctx, entity.CapViewCorrectiveActions)
	if err != nil {
		return entity.CorrectiveAction{}, err
	}

	a, err := s.repo.CorrectiveAction(ctx, p, id)
	if err != nil {
		return entity.CorrectiveAction{}, fmt.Errorf("get corrective action: %w", err)
	}

	a.Attachments, err = s.attachmentsOf(ctx, p, entity.ResourceCorrectiveAction, a.ID)
	if err != nil {
		return entity.CorrectiveAction{}, err
	}

	return a, nil
}

func (s *Service) ListCorrectiveActions(
	ctx context.Context,
	f entity.ListFilter,
) (entity.Page[entity.CorrectiveAction], error) {
	p, err := s.authorize(ctx, entity.CapViewCorrectiveActions)
	if err != nil {
		return entity.Page[entity.CorrectiveAction]{}, err
	}

	items, total, err := s.repo.CorrectiveActions(ctx, p, f)
	if err != nil {
		return entity.Page[entity.CorrectiveAction]{}, fmt.Errorf("list corrective actions: %w", err)
	}

	return entity.NewPage(items, total, f), nil
}

func (s *Service) UpdateCorrectiveAction(
	ctx context.Context,
	id uuid.UUID,
	in entity.UpdateCorrectiveActionInput,
	files []entity.FileUpload,
) (entity.CorrectiveAction, error) {
	p, err := s.authorize(ctx, entity.CapManageCorrectiveActions)
	if err != nil {
		return entity.CorrectiveAction{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.CorrectiveAction{}, err
	}

	err = checkFileLimits(entity.ResourceCorrectiveAction, files, 0)
	if err != nil {
		return entity.CorrectiveAction{}, err
	}

	old, err := s.repo.CorrectiveAction(ctx, p, id)
	if err != nil {
		return entity.CorrectiveAction{}, fmt.Errorf("get corrective action: %w", err)
	}

	var (
		assignee   entity.User
		reassigned bool
	)

	if in.AssignedTo != nil && in.AssignedTo.Valid && in.AssignedTo.UUID != old.AssignedTo.UUID {
		assignee, err = s.assignee(ctx, p, *in.AssignedTo)
		if err != nil {
			return entity.CorrectiveAction{}, err
		}

		reassigned = true
	}

	added, err := s.uploadAttachments(ctx, p, entity.ResourceCorrectiveAction, old.ID, files)
	if err != nil {
		return entity.CorrectiveAction{}, err
	}

	now := time.Now()

	a := in.Apply(old, now)
	a.UpdatedAt = now

	err = s.repo.UpdateCorrectiveAction(ctx, a)
	if err != nil {
		s.discardAttachments(context.WithoutCancel(ctx), p, added)
		return entity.CorrectiveAction{}, fmt.Errorf("update corrective action: %w", err)
	}

	s.record(ctx, p, entity.ActionUpdate, entity.ResourceCorrectiveAction, a.ID, a.Title, map[string]any{
		"status": a.Status,
		"files":  len(added),
	})

	if reassigned {
		s.notifyAssignment(ctx, p, a, assignee)
	}

	a.Attachments = s.reloadAttachments(ctx, p, entity.ResourceCorrectiveAction, a.ID)

	return a, nil
}

func (s *Service) DeleteCorrectiveAction(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error) {
	p, err := s.authorize(ctx, entity.CapManageCorrectiveActions)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	a, err := s.repo.CorrectiveAction(ctx, p, id)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("get corrective action: %w", err)
	}

	res, err := s.deleteParent(ctx, p, entity.ResourceCorrectiveAction, a.ID, s.repo.DeleteCorrectiveAction)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	s.record(ctx, p, entity.ActionDelete, entity.ResourceCorrectiveAction, a.ID, a.Title, nil)

	return res, nil
}
