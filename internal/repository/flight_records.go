package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var flightRecordColumns = []string{
	"id",
	"company_id",
	"user_id",
	"flight_date",
	"aircraft_registration",
	"aircraft_type",
	"departure_airport",
	"arrival_airport",
	"flight_hours",
	"pilot_name",
	"remarks",
	"has_defect",
	"defect_description",
	"status",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateFlightRecord(ctx context.Context, fr entity.FlightRecord) error {
	const q = `INSERT INTO flight_records
		(id, company_id, user_id, flight_date, aircraft_registration, aircraft_type, departure_airport, arrival_airport,
		 flight_hours, pilot_name, remarks, has_defect, defect_description, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, q,
		fr.ID,
		fr.CompanyID,
		fr.UserID,
		fr.FlightDate,
		fr.AircraftRegistration,
		fr.AircraftType,
		fr.DepartureAirport,
		fr.ArrivalAirport,
		fr.FlightHours,
		fr.PilotName,
		fr.Remarks,
		fr.HasDefect,
		fr.DefectDescription,
		fr.Status,
		fr.CreatedAt,
		fr.UpdatedAt,
	)

	return err
}

func (r *Repository) FlightRecord(ctx context.Context, p entity.Principal, id uuid.UUID) (entity.FlightRecord, error) {
	stmt := sq.Select(flightRecordColumns...).
		From(FlightRecordScope.Table).
		Where(Ownership(p, FlightRecordScope)).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	return queryOne(ctx, r.db, stmt, scanFlightRecord)
}

func (r *Repository) FlightRecords(
	ctx context.Context,
	p entity.Principal,
	f entity.ListFilter,
) ([]entity.FlightRecord, int, error) {
	stmt := sq.Select(append(flightRecordColumns, totalCountColumn)...).
		From(FlightRecordScope.Table).
		Where(BuildFilter(p, f, FlightRecordScope)).
		PlaceholderFormat(sq.Dollar)

	return queryPage(ctx, r.db, applyPage(stmt, f, FlightRecordScope), scanFlightRecord)
}

func (r *Repository) UpdateFlightRecord(ctx context.Context, fr entity.FlightRecord) error {
	const q = `UPDATE flight_records SET
		flight_date = $1, aircraft_registration = $2, aircraft_type = $3, departure_airport = $4, arrival_airport = $5,
		flight_hours = $6, pilot_name = $7, remarks = $8, has_defect = $9, defect_description = $10, status = $11,
		updated_at = $12
	WHERE id = $13 AND company_id = $14`

	result, err := r.db.Exec(ctx, q,
		fr.FlightDate,
		fr.AircraftRegistration,
		fr.AircraftType,
		fr.DepartureAirport,
		fr.ArrivalAirport,
		fr.FlightHours,
		fr.PilotName,
		fr.Remarks,
		fr.HasDefect,
		fr.DefectDescription,
		fr.Status,
		fr.UpdatedAt,
		fr.ID,
		fr.CompanyID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteFlightRecord(ctx context.Context, companyID, id uuid.UUID) error {
	return r.deleteWithChildren(ctx, FlightRecordScope.Table, entity.ResourceFlightRecord, companyID, id, nil)
}

func scanFlightRecord(row pgx.Row, extra ...any) (fr entity.FlightRecord, err error) {
	dest := []any{
		&fr.ID,
		&fr.CompanyID,
		&fr.UserID,
		&fr.FlightDate,
		&fr.AircraftRegistration,
		&fr.AircraftType,
		&fr.DepartureAirport,
		&fr.ArrivalAirport,
		&fr.FlightHours,
		&fr.PilotName,
		&fr.Remarks,
		&fr.HasDefect,
		&fr.DefectDescription,
		&fr.Status,
		&fr.CreatedAt,
		&fr.UpdatedAt,
	}

	err = row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.FlightRecord{}, notFound(err)
	}

	return fr, nil
}
