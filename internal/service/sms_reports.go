package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func (s *Service) CreateSMSReport(
	ctx context.Context,
	in entity.CreateSMSReportInput,
	files []entity.FileUpload,
) (entity.SMSReport, error) {
	p, err := s.authorize(ctx, entity.CapCreateSMSReports)
	if err != nil {
		return entity.SMSReport{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.SMSReport{}, err
	}

	err = checkFileLimits(entity.ResourceSMSReport, files, 0)
	if err != nil {
		return entity.SMSReport{}, err
	}

	now := time.Now()

	r := entity.SMSReport{
		ID:             uuid.Must(uuid.NewV4()),
		CompanyID:      p.CompanyID,
		UserID:         p.UserID,
		Title:          in.Title,
		Description:    in.Description,
		HazardCategory: in.HazardCategory,
		Severity:       in.Severity,
		Status:         entity.SMSReportStatusOpen,
		OccurredAt:     in.OccurredAt,
		Location:       in.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.repo.CreateSMSReport(ctx, r)
	if err != nil {
		return entity.SMSReport{}, fmt.Errorf("create sms report: %w", err)
	}

	r.Attachments, err = s.uploadAttachments(ctx, p, entity.ResourceSMSReport, r.ID, files)
	if err != nil {
		compensate(ctx, entity.ResourceSMSReport, r.ID, func(ctx context.Context) error {
			return s.repo.DeleteSMSReport(ctx, p.CompanyID, r.ID)
		})

		return entity.SMSReport{}, err
	}

	s.record(ctx, p, entity.ActionCreate, entity.ResourceSMSReport, r.ID, r.Title, map[string]any{
		"severity": r.Severity,
		"files":    len(r.Attachments),
	})

	s.notifySMSReportFiled(ctx, p, r)

	return r, nil
}

func (s *Service) GetSMSReport(ctx context.Context, id uuid.UUID) (entity.SMSReport, error) {
	p, err := s.authorize(ctx, entity.CapViewSMSReports)
	if err != nil {
		return entity.SMSReport{}, err
	}

	r, err := s.repo.SMSReport(ctx, p, id)
	if err != nil {
		return entity.SMSReport{}, fmt.Errorf("get sms report: %w", err)
	}

	r.Attachments, err = s.attachmentsOf(ctx, p, entity.ResourceSMSReport, r.ID)
	if err != nil {
		return entity.SMSReport{}, err
	}

	return r, nil
}

func (s *Service) ListSMSReports(ctx context.Context, f entity.ListFilter) (entity.Page[entity.SMSReport], error) {
	p, err := s.authorize(ctx, entity.CapViewSMSReports)
	if err != nil {
		return entity.Page[entity.SMSReport]{}, err
	}

	items, total, err := s.repo.SMSReports(ctx, p, f)
	if err != nil {
		return entity.Page[entity.SMSReport]{}, fmt.Errorf("list sms reports: %w", err)
	}

	return entity.NewPage(items, total, f), nil
}

// UpdateSMSReport stores the new files and then patches the report. The size limit counts what is already
// stored.
func (s *Service) UpdateSMSReport(
	ctx context.Context,
	id uuid.UUID,
	in entity.UpdateSMSReportInput,
	files []entity.FileUpload,
) (entity.SMSReport, error) {
	p, err := s.authorize(ctx, entity.CapManageSMSReports)
	if err != nil {
		return entity.SMSReport{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.SMSReport{}, err
	}

	old, err := s.repo.SMSReport(ctx, p, id)
	if err != nil {
		return entity.SMSReport{}, fmt.Errorf("get sms report: %w", err)
	}

	if len(files) > 0 {
		existing, err := s.repo.Attachments(ctx, p.CompanyID, entity.ResourceSMSReport, old.ID)
		if err != nil {
			return entity.SMSReport{}, fmt.Errorf("list attachments: %w", err)
		}

		err = checkFileLimits(entity.ResourceSMSReport, files, totalSize(existing))
		if err != nil {
			return entity.SMSReport{}, err
		}
	}

	added, err := s.uploadAttachments(ctx, p, entity.ResourceSMSReport, old.ID, files)
	if err != nil {
		return entity.SMSReport{}, err
	}

	r := in.Apply(old)
	r.UpdatedAt = time.Now()

	err = s.repo.UpdateSMSReport(ctx, r)
	if err != nil {
		s.discardAttachments(context.WithoutCancel(ctx), p, added)
		return entity.SMSReport{}, fmt.Errorf("update sms report: %w", err)
	}

	s.record(ctx, p, entity.ActionUpdate, entity.ResourceSMSReport, r.ID, r.Title, map[string]any{
		"status": r.Status,
		"files":  len(added),
	})

	r.Attachments = s.reloadAttachments(ctx, p, entity.ResourceSMSReport, r.ID)

	return r, nil
}

func (s *Service) DeleteSMSReport(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error) {
	p, err := s.authorize(ctx, entity.CapManageSMSReports)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	r, err := s.repo.SMSReport(ctx, p, id)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("get sms report: %w", err)
	}

	res, err := s.deleteParent(ctx, p, entity.ResourceSMSReport, r.ID, s.repo.DeleteSMSReport)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	s.record(ctx, p, entity.ActionDelete, entity.ResourceSMSReport, r.ID, r.Title, nil)

	return res, nil
}
