package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func (s *Service) CreateAudit(ctx context.Context, in entity.CreateAuditInput) (entity.Audit, error) {
	p, err := s.authorize(ctx, entity.CapManageAudits)
	if err != nil {
		return entity.Audit{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.Audit{}, err
	}

	status := in.Status
	if status == "" {
		status = entity.AuditStatusPlanned
	}

	now := time.Now()

	a := entity.Audit{
		ID:            uuid.Must(uuid.NewV4()),
		CompanyID:     p.CompanyID,
		Title:         in.Title,
		AuditType:     in.AuditType,
		Status:        status,
		Auditor:       in.Auditor,
		Department:    in.Department,
		ScheduledDate: entity.DateOnly(in.ScheduledDate.Time),
		CompletedDate: in.CompletedDate.TimePtr(),
		CreatedBy:     p.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.repo.CreateAudit(ctx, a)
	if err != nil {
		return entity.Audit{}, fmt.Errorf("create audit: %w", err)
	}

	s.record(ctx, p, entity.ActionCreate, entity.ResourceAudit, a.ID, a.Title, map[string]any{"auditType": a.AuditType})

	return a, nil
}

func (s *Service) GetAudit(ctx context.Context, id uuid.UUID) (entity.Audit, error) {
	p, err := s.authorize(ctx, entity.CapViewAudits)
	if err != nil {
		return entity.Audit{}, err
	}

	a, err := s.repo.Audit(ctx, p, id)
	if err != nil {
		return entity.Audit{}, fmt.Errorf("get audit: %w", err)
	}

	return a, nil
}

func (s *Service) ListAudits(ctx context.Context, f entity.ListFilter) (entity.Page[entity.Audit], error) {
	p, err := s.authorize(ctx, entity.CapViewAudits)
	if err != nil {
		return entity.Page[entity.Audit]{}, err
	}

	items, total, err := s.repo.Audits(ctx, p, f)
	if err != nil {
		return entity.Page[entity.Audit]{}, fmt.Errorf("list audits: %w", err)
	}

	return entity.NewPage(items, total, f), nil
}

func (s *Service) UpdateAudit(ctx context.Context, id uuid.UUID, in entity.UpdateAuditInput) (entity.Audit, error) {
	p, err := s.authorize(ctx, entity.CapManageAudits)
	if err != nil {
		return entity.Audit{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.Audit{}, err
	}

	old, err := s.repo.Audit(ctx, p, id)
	if err != nil {
		return entity.Audit{}, fmt.Errorf("get audit: %w", err)
	}

	a := in.Apply(old)

	if a.Status == entity.AuditStatusCompleted && a.CompletedDate == nil {
		today := entity.DateOnly(time.Now())
		a.CompletedDate = &today
	}

	a.UpdatedAt = time.Now()

	err = s.repo.UpdateAudit(ctx, a)
	if err != nil {
		return entity.Audit{}, fmt.Errorf("update audit: %w", err)
	}

	s.record(ctx, p, entity.ActionUpdate, entity.ResourceAudit, a.ID, a.Title, map[string]any{"status": a.Status})

	return a, nil
}

// DeleteAudit also removes the findings of the audit.
func (s *Service) DeleteAudit(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error) {
	p, err := s.authorize(ctx, entity.CapManageAudits)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	a, err := s.repo.Audit(ctx, p, id)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("get audit: %w", err)
	}

	err = s.repo.DeleteAudit(ctx, p.CompanyID, a.ID)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("delete audit: %w", err)
	}

	s.record(ctx, p, entity.ActionDelete, entity.ResourceAudit, a.ID, a.Title, nil)

	return entity.DeleteResult{ID: a.ID, Files: []entity.FileDeleteResult{}}, nil
}

func (s *Service) CreateFinding(ctx context.Context, in entity.CreateFindingInput) (entity.Finding, error) {
	p, err := s.authorize(ctx, entity.CapManageAudits)
	if err != nil {
		return entity.Finding{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.Finding{}, err
	}

	_, err = s.repo.Audit(ctx, p, in.AuditID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Finding{}, entity.NewValidationError("auditId", "audit does not exist")
		}

		return entity.Finding{}, fmt.Errorf("get audit: %w", err)
	}

	now := time.Now()

	f := entity.Finding{
		ID:          uuid.Must(uuid.NewV4()),
		CompanyID:   p.CompanyID,
		AuditID:     in.AuditID,
		Title:       in.Title,
		Description: in.Description,
		Severity:    in.Severity,
		Status:      entity.FindingStatusOpen,
		CreatedBy:   p.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.CreateFinding(ctx, f)
	if err != nil {
		return entity.Finding{}, fmt.Errorf("create finding: %w", err)
	}

	s.record(ctx, p, entity.ActionCreate, entity.ResourceFinding, f.ID, f.Title, map[string]any{"auditId": f.AuditID})

	return f, nil
}

func (s *Service) GetFinding(ctx context.Context, id uuid.UUID) (entity.Finding, error) {
	p, err := s.authorize(ctx, entity.CapViewAudits)
	if err != nil {
		return entity.Finding{}, err
	}

	f, err := s.repo.Finding(ctx, p, id)
	if err != nil {
		return entity.Finding{}, fmt.Errorf("get finding: %w", err)
	}

	return f, nil
}

// ListFindings lists findings of the company, narrowed to one audit when the filter names it.
func (s *Service) ListFindings(ctx context.Context, f entity.ListFilter) (entity.Page[entity.Finding], error) {
	p, err := s.authorize(ctx, entity.CapViewAudits)
	if err != nil {
		return entity.Page[entity.Finding]{}, err
	}

	items, total, err := s.repo.Findings(ctx, p, f)
	if err != nil {
		return entity.Page[entity.Finding]{}, fmt.Errorf("list findings: %w", err)
	}

	return entity.NewPage(items, total, f), nil
}

func (s *Service) UpdateFinding(ctx context.Context, id uuid.UUID, in entity.UpdateFindingInput) (entity.Finding, error) {
	p, err := s.authorize(ctx, entity.CapManageAudits)
	if err != nil {
		return entity.Finding{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.Finding{}, err
	}

	old, err := s.repo.Finding(ctx, p, id)
	if err != nil {
		return entity.Finding{}, fmt.Errorf("get finding: %w", err)
	}

	f := in.Apply(old)
	f.UpdatedAt = time.Now()

	err = s.repo.UpdateFinding(ctx, f)
	if err != nil {
		return entity.Finding{}, fmt.Errorf("update finding: %w", err)
	}

	s.record(ctx, p, entity.ActionUpdate, entity.ResourceFinding, f.ID, f.Title, map[string]any{"status": f.Status})

	return f, nil
}

func (s *Service) DeleteFinding(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error) {
	p, err := s.authorize(ctx, entity.CapManageAudits)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	f, err := s.repo.Finding(ctx, p, id)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("get finding: %w", err)
	}

	err = s.repo.DeleteFinding(ctx, p.CompanyID, f.ID)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("delete finding: %w", err)
	}

	s.record(ctx, p, entity.ActionDelete, entity.ResourceFinding, f.ID, f.Title, nil)

	return entity.DeleteResult{ID: f.ID, Files: []entity.FileDeleteResult{}}, nil
}
