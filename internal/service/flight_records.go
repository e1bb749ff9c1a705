package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func (s *Service) CreateFlightRecord(
	ctx context.Context,
	in entity.CreateFlightRecordInput,
	files []entity.FileUpload,
) (entity.FlightRecord, error) {
	p, err := s.authorize(ctx, entity.CapCreateFlightRecords)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	err = validateNonNegative("flightHours", in.FlightHours)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	err = checkFileLimits(entity.ResourceFlightRecord, files, 0)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	status := in.Status
	if status == "" {
		status = entity.FlightRecordStatusDraft
	}

	now := time.Now()

	fr := entity.FlightRecord{
		ID:                   uuid.Must(uuid.NewV4()),
		CompanyID:            p.CompanyID,
		UserID:               p.UserID,
		FlightDate:           entity.DateOnly(in.FlightDate.Time),
		AircraftRegistration: in.AircraftRegistration,
		AircraftType:         in.AircraftType,
		DepartureAirport:     in.DepartureAirport,
		ArrivalAirport:       in.ArrivalAirport,
		FlightHours:          in.FlightHours,
		PilotName:            in.PilotName,
		Remarks:              in.Remarks,
		HasDefect:            in.HasDefect,
		DefectDescription:    in.DefectDescription,
		Status:               status,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err = s.repo.CreateFlightRecord(ctx, fr)
	if err != nil {
		return entity.FlightRecord{}, fmt.Errorf("create flight record: %w", err)
	}

	fr.Attachments, err = s.uploadAttachments(ctx, p, entity.ResourceFlightRecord, fr.ID, files)
	if err != nil {
		compensate(ctx, entity.ResourceFlightRecord, fr.ID, func(ctx context.Context) error {
			return s.repo.DeleteFlightRecord(ctx, p.CompanyID, fr.ID)
		})

		return entity.FlightRecord{}, err
	}

	s.record(ctx, p, entity.ActionCreate, entity.ResourceFlightRecord, fr.ID, fr.AircraftRegistration, map[string]any{
		"files": len(fr.Attachments),
	})

	return fr, nil
}

func (s *Service) GetFlightRecord(ctx context.Context, id uuid.UUID) (entity.FlightRecord, error) {
	p, err := s.authorize(ctx, entity.CapViewFlightRecords)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	fr, err := s.repo.FlightRecord(ctx, p, id)
	if err != nil {
		return entity.FlightRecord{}, fmt.Errorf("get flight record: %w", err)
	}

	fr.Attachments, err = s.attachmentsOf(ctx, p, entity.ResourceFlightRecord, fr.ID)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	return fr, nil
}

func (s *Service) ListFlightRecords(ctx context.Context, f entity.ListFilter) (entity.Page[entity.FlightRecord], error) {
	p, err := s.authorize(ctx, entity.CapViewFlightRecords)
	if err != nil {
		return entity.Page[entity.FlightRecord]{}, err
	}

	items, total, err := s.repo.FlightRecords(ctx, p, f)
	if err != nil {
		return entity.Page[entity.FlightRecord]{}, fmt.Errorf("list flight records: %w", err)
	}

	return entity.NewPage(items, total, f), nil
}

// UpdateFlightRecord patches the record. Files sent along are added to the existing ones.
func (s *Service) UpdateFlightRecord(
	ctx context.Context,
	id uuid.UUID,
	in entity.UpdateFlightRecordInput,
	files []entity.FileUpload,
) (entity.FlightRecord, error) {
	p, err := s.authorize(ctx, entity.CapEditFlightRecords)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	err = checkFileLimits(entity.ResourceFlightRecord, files, 0)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	old, err := s.repo.FlightRecord(ctx, p, id)
	if err != nil {
		return entity.FlightRecord{}, fmt.Errorf("get flight record: %w", err)
	}

	fr := in.Apply(old)

	if fr.HasDefect && fr.DefectDescription == "" {
		return entity.FlightRecord{}, entity.NewValidationError("defectDescription", "is required")
	}

	err = validateNonNegative("flightHours", fr.FlightHours)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	added, err := s.uploadAttachments(ctx, p, entity.ResourceFlightRecord, fr.ID, files)
	if err != nil {
		return entity.FlightRecord{}, err
	}

	fr.UpdatedAt = time.Now()

	err = s.repo.UpdateFlightRecord(ctx, fr)
	if err != nil {
		s.discardAttachments(context.WithoutCancel(ctx), p, added)
		return entity.FlightRecord{}, fmt.Errorf("update flight record: %w", err)
	}

	s.record(ctx, p, entity.ActionUpdate, entity.ResourceFlightRecord, fr.ID, fr.AircraftRegistration, map[string]any{
		"files": len(added),
	})

	fr.Attachments = s.reloadAttachments(ctx, p, entity.ResourceFlightRecord, fr.ID)

	return fr, nil
}

func (s *Service) DeleteFlightRecord(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error) {
	p, err := s.authorize(ctx, entity.CapDeleteFlightRecords)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	fr, err := s.repo.FlightRecord(ctx, p, id)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("get flight record: %w", err)
	}

	res, err := s.deleteParent(ctx, p, entity.ResourceFlightRecord, fr.ID, s.repo.DeleteFlightRecord)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	s.record(ctx, p, entity.ActionDelete, entity.ResourceFlightRecord, fr.ID, fr.AircraftRegistration, nil)

	return res, nil
}
