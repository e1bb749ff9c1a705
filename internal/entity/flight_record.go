package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type FlightRecordStatus string

const (
	FlightRecordStatusDraft     FlightRecordStatus = "DRAFT"
	FlightRecordStatusSubmitted FlightRecordStatus = "SUBMITTED"
	FlightRecordStatusApproved  FlightRecordStatus = "APPROVED"
)

var FlightRecordStatuses = []string{
	string(FlightRecordStatusDraft),
	string(FlightRecordStatusSubmitted),
	string(FlightRecordStatusApproved),
}

type FlightRecord struct {
	ID                   uuid.UUID          `json:"id"`
	CompanyID            uuid.UUID          `json:"companyId"`
	UserID               uuid.UUID          `json:"userId"`
	FlightDate           time.Time          `json:"flightDate"`
	AircraftRegistration string             `json:"aircraftRegistration"`
	AircraftType         string             `json:"aircraftType"`
	DepartureAirport     string             `json:"departureAirport"`
	ArrivalAirport       string             `json:"arrivalAirport"`
	FlightHours          decimal.Decimal    `json:"flightHours"`
	PilotName            string             `json:"pilotName"`
	Remarks              string             `json:"remarks"`
	HasDefect            bool               `json:"hasDefect"`
	DefectDescription    string             `json:"defectDescription"`
	Status               FlightRecordStatus `json:"status"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
	Attachments          []Attachment       `json:"attachments,omitempty"`
}

type CreateFlightRecordInput struct {
	FlightDate           *Date              `json:"flightDate" validate:"required"`
	AircraftRegistration string             `json:"aircraftRegistration" validate:"required,max=16"`
	AircraftType         string             `json:"aircraftType" validate:"max=64"`
	DepartureAirport     string             `json:"departureAirport" validate:"required,max=8"`
	ArrivalAirport       string             `json:"arrivalAirport" validate:"required,max=8"`
	FlightHours          decimal.Decimal    `json:"flightHours"`
	PilotName            string             `json:"pilotName" validate:"max=128"`
	Remarks              string             `json:"remarks" validate:"max=4000"`
	HasDefect            bool               `json:"hasDefect"`
	DefectDescription    string             `json:"defectDescription" validate:"required_if=HasDefect true,max=4000"`
	Status               FlightRecordStatus `json:"status" validate:"omitempty,oneof=DRAFT SUBMITTED APPROVED"`
}

type UpdateFlightRecordInput struct {
	FlightDate           *Date               `json:"flightDate"`
	AircraftRegistration *string             `json:"aircraftRegistration" validate:"omitnil,min=1,max=16"`
	AircraftType         *string             `json:"aircraftType" validate:"omitnil,max=64"`
	DepartureAirport     *string             `json:"departureAirport" validate:"omitnil,min=1,max=8"`
	ArrivalAirport       *string             `json:"arrivalAirport" validate:"omitnil,min=1,max=8"`
	FlightHours          *decimal.Decimal    `json:"flightHours"`
	PilotName            *string             `json:"pilotName" validate:"omitnil,max=128"`
	Remarks              *string             `json:"remarks" validate:"omitnil,max=4000"`
	HasDefect            *bool               `json:"hasDefect"`
	DefectDescription    *string             `json:"defectDescription" validate:"omitnil,max=4000"`
	Status               *FlightRecordStatus `json:"status" validate:"omitnil,oneof=DRAFT SUBMITTED APPROVED"`
}

func (in UpdateFlightRecordInput) Apply(r FlightRecord) FlightRecord {
	if in.FlightDate != nil {
		r.FlightDate = DateOnly(in.FlightDate.Time)
	}

	if in.AircraftRegistration != nil {
		r.AircraftRegistration = *in.AircraftRegistration
	}

	if in.AircraftType != nil {
		r.AircraftType = *in.AircraftType
	}

	if in.DepartureAirport != nil {
		r.DepartureAirport = *in.DepartureAirport
	}

	if in.ArrivalAirport != nil {
		r.ArrivalAirport = *in.ArrivalAirport
	}

	if in.FlightHours != nil {
		r.FlightHours = *in.FlightHours
	}

	if in.PilotName != nil {
		r.PilotName = *in.PilotName
	}

	if in.Remarks != nil {
		r.Remarks = *in.Remarks
	}

	if in.HasDefect != nil {
		r.HasDefect = *in.HasDefect
	}

	if in.DefectDescription != nil {
		r.DefectDescription = *in.DefectDescription
	}

	if in.Status != nil {
		r.Status = *in.Status
	}

	return r
}
