package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

func sanitizeFileName(name string) string {
	name = unsafeFileChars.ReplaceAllString(name, "_")
	if name == "" {
		return "file"
	}

	return name
}

// ObjectKey is {folder}/{companyID}/{parentID}/{unixMillis}-{sanitized name}. The company segment keeps tenants
// apart inside the bucket.
func ObjectKey(kind entity.ResourceKind, companyID, parentID uuid.UUID, name string, at time.Time) string {
	return fmt.Sprintf("%s/%s/%s/%d-%s", kind.Folder(), companyID, parentID, at.UnixMilli(), sanitizeFileName(name))
}

// checkFileLimits runs before anything is written. existing is the size already stored for the parent and only
// matters for aggregate limits.
func checkFileLimits(kind entity.ResourceKind, files []entity.FileUpload, existing int64) error {
	var (
		perFile   int64
		aggregate int64
	)

	switch kind {
	case entity.ResourceTechPublication:
		perFile = entity.TechPublicationFileLimit
	case entity.ResourceSMSReport:
		aggregate = entity.SMSReportTotalLimit
	case entity.ResourceFlightRecord:
		perFile = entity.FlightRecordFileLimit
	case entity.ResourceCorrectiveAction:
		perFile = entity.CorrectiveActionFileLimit
	default:
		if len(files) > 0 {
			return entity.NewValidationError("files", fmt.Sprintf("%s does not accept files", kind))
		}
	}

	total := existing

	for _, f := range files {
		if f.Size < 0 {
			return entity.NewValidationError("files", "unknown file size")
		}

		if perFile > 0 && f.Size > perFile {
			return entity.NewValidationError("files",
				fmt.Sprintf("%s exceeds the %d MB limit", f.Name, perFile/entity.MB))
		}

		total += f.Size
	}

	if aggregate > 0 && total > aggregate {
		return entity.NewValidationError("files", fmt.Sprintf("files exceed the %d MB total limit", aggregate/entity.MB))
	}

	return nil
}

func totalSize(attachments []entity.Attachment) int64 {
	var n int64
	for _, a := range attachments {
		n += a.FileSize
	}

	return n
}

// uploadAttachments stores the files of an existing parent. On failure whatever it stored so far is removed
// again before the error is returned.
func (s *Service) uploadAttachments(
	ctx context.Context,
	p entity.Principal,
	kind entity.ResourceKind,
	parentID uuid.UUID,
	files []entity.FileUpload,
) ([]entity.Attachment, error) {
	attachments := make([]entity.Attachment, 0, len(files))

	for _, f := range files {
		now := time.Now()

		a := entity.Attachment{
			ID:           uuid.Must(uuid.NewV4()),
			CompanyID:    p.CompanyID,
			ResourceType: kind,
			ParentID:     parentID,
			FileName:     f.Name,
			FileKey:      ObjectKey(kind, p.CompanyID, parentID, f.Name, now),
			FileSize:     f.Size,
			FileType:     f.ContentType,
			UploadedBy:   uuid.NullUUID{UUID: p.UserID, Valid: true},
			CreatedAt:    now,
		}

		err := s.storage.Upload(ctx, a.FileKey, f.Body, f.Size, f.ContentType)
		if err != nil {
			s.discardAttachments(context.WithoutCancel(ctx), p, attachments)
			return nil, fmt.Errorf("upload %s: %w", f.Name, err)
		}

		err = s.repo.CreateAttachment(ctx, a)
		if err != nil {
			s.deleteBlobs(context.WithoutCancel(ctx), []entity.Attachment{a})
			s.discardAttachments(context.WithoutCancel(ctx), p, attachments)

			return nil, fmt.Errorf("save attachment %s: %w", f.Name, err)
		}

		attachments = append(attachments, a)
	}

	return attachments, nil
}

// deleteBlobs tries every key and reports each outcome. It never stops on a failure.
func (s *Service) deleteBlobs(ctx context.Context, attachments []entity.Attachment) []entity.FileDeleteResult {
	results := make([]entity.FileDeleteResult, 0, len(attachments))

	for _, a := range attachments {
		res := entity.FileDeleteResult{FileKey: a.FileKey, Deleted: true}

		err := s.storage.Delete(ctx, a.FileKey)
		if err != nil {
			slog.WarnContext(ctx, "delete blob", "key", a.FileKey, "error", err)

			res.Deleted = false
			res.Error = err.Error()
		}

		results = append(results, res)
	}

	return results
}

// deleteParent is the shared delete flow: blobs first, best effort, then the parent and its attachment rows in
// one transaction.
func (s *Service) deleteParent(
	ctx context.Context,
	p entity.Principal,
	kind entity.ResourceKind,
	id uuid.UUID,
	deleteRows func(ctx context.Context, companyID, id uuid.UUID) error,
) (entity.DeleteResult, error) {
	attachments, err := s.repo.Attachments(ctx, p.CompanyID, kind, id)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("list attachments: %w", err)
	}

	files := s.deleteBlobs(ctx, attachments)

	err = deleteRows(ctx, p.CompanyID, id)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("delete %s: %w", kind, err)
	}

	return entity.DeleteResult{ID: id, Files: files}, nil
}

func (s *Service) withURLs(ctx context.Context, attachments []entity.Attachment) []entity.Attachment {
	for i := range attachments {
		url, err := s.storage.PublicURL(ctx, attachments[i].FileKey)
		if err != nil {
			slog.WarnContext(ctx, "presign attachment url", "key", attachments[i].FileKey, "error", err)
			continue
		}

		attachments[i].URL = url
	}

	return attachments
}

// ensureParentVisible checks that the principal may see the parent an attachment belongs to. Self scoped
// parents of other users are as absent as those of other tenants.
func (s *Service) ensureParentVisible(ctx context.Context, kind entity.ResourceKind, parentID uuid.UUID) error {
	var (
		p   entity.Principal
		err error
	)

	switch kind {
	case entity.ResourceFlightRecord:
		if p, err = s.authorize(ctx, entity.CapViewFlightRecords); err == nil {
			_, err = s.repo.FlightRecord(ctx, p, parentID)
		}
	case entity.ResourceTechPublication:
		if p, err = s.authorize(ctx, entity.CapViewTechnicalPublications); err == nil {
			_, err = s.repo.TechPublication(ctx, p, parentID)
		}
	case entity.ResourceSMSReport:
		if p, err = s.authorize(ctx, entity.CapViewSMSReports); err == nil {
			_, err = s.repo.SMSReport(ctx, p, parentID)
		}
	case entity.ResourceCorrectiveAction:
		if p, err = s.authorize(ctx, entity.CapViewCorrectiveActions); err == nil {
			_, err = s.repo.CorrectiveAction(ctx, p, parentID)
		}
	default:
		return entity.ErrNotFound
	}

	return err
}

// attachmentsOf loads the attachments of an already visible parent with presigned URLs.
func (s *Service) attachmentsOf(
	ctx context.Context,
	p entity.Principal,
	kind entity.ResourceKind,
	parentID uuid.UUID,
) ([]entity.Attachment, error) {
	attachments, err := s.repo.Attachments(ctx, p.CompanyID, kind, parentID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}

	return s.withURLs(ctx, attachments), nil
}

// reloadAttachments returns the full attachment list after a committed update. The update already
// succeeded, so a failed read only drops the list from the response.
func (s *Service) reloadAttachments(
	ctx context.Context,
	p entity.Principal,
	kind entity.ResourceKind,
	parentID uuid.UUID,
) []entity.Attachment {
	attachments, err := s.attachmentsOf(ctx, p, kind, parentID)
	if err != nil {
		slog.WarnContext(ctx, "reload attachments", "parentId", parentID, "error", err)
		return nil
	}

	return attachments
}

func (s *Service) ListAttachments(ctx context.Context, kind entity.ResourceKind, parentID uuid.UUID) ([]entity.Attachment, error) {
	err := s.ensureParentVisible(ctx, kind, parentID)
	if err != nil {
		return nil, err
	}

	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.attachmentsOf(ctx, p, kind, parentID)
}

func (s *Service) DownloadAttachment(ctx context.Context, id uuid.UUID) (entity.Download, error) {
	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		return entity.Download{}, err
	}

	a, err := s.repo.Attachment(ctx, p.CompanyID, id)
	if err != nil {
		return entity.Download{}, fmt.Errorf("get attachment: %w", err)
	}

	err = s.ensureParentVisible(ctx, a.ResourceType, a.ParentID)
	if err != nil {
		return entity.Download{}, err
	}

	body, err := s.storage.Download(ctx, a.FileKey)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "attachment blob is missing", "key", a.FileKey)
		}

		return entity.Download{}, fmt.Errorf("download %s: %w", a.FileKey, err)
	}

	s.record(ctx, p, entity.ActionDownload, entity.ResourceAttachment, a.ID, a.FileName, map[string]any{
		"parentType": a.ResourceType,
		"parentId":   a.ParentID,
	})

	return entity.Download{FileName: a.FileName, ContentType: a.FileType, Body: body}, nil
}
