package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyVehicleName   = errors.New("vehicle name cannot be empty")
	ErrVehicleNameTooLong = errors.New("vehicle name is too long (max 255 characters)")
	ErrInvalidDailyPrice  = errors.New("price per day must be positive")
	ErrInvalidStatus      = errors.New("invalid vehicle status")
)

const (
	MaxVehicleNameLength = 255
)

type Status string

const (
	StatusDraft       Status = "draft"
	StatusPublished   Status = "published"
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusActive, StatusMaintenance:
		return true
	default:
		return false
	}
}

// Rentable reports whether vehicles in this status accept new reservations.
// Draft vehicles are not listed yet and maintenance takes a vehicle off the
// road without touching its existing bookings.
func (s Status) Rentable() bool {
	return s == StatusPublished || s == StatusActive
}

type Vehicle struct {
	id               uuid.UUID
	name             string
	pricePerDayCents int64
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

func NewVehicle(id uuid.UUID, name string, pricePerDayCents int64, status Status) (*Vehicle, error) {
	if err := validateVehicleName(name); err != nil {
		return nil, err
	}

	if pricePerDayCents <= 0 {
		return nil, ErrInvalidDailyPrice
	}

	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Vehicle{
		id:               id,
		name:             strings.TrimSpace(name),
		pricePerDayCents: pricePerDayCents,
		status:           status,
	}, nil
}

func ReconstructVehicle(
	id uuid.UUID,
	name string,
	pricePerDayCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:               id,
		name:             name,
		pricePerDayCents: pricePerDayCents,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (v *Vehicle) Rentable() bool {
	return v.status.Rentable()
}

func validateVehicleName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyVehicleName
	}
	if len(name) > MaxVehicleNameLength {
		return ErrVehicleNameTooLong
	}
	return nil
}

func (v *Vehicle) ID() uuid.UUID           { return v.id }
func (v *Vehicle) Name() string            { return v.name }
func (v *Vehicle) PricePerDayCents() int64 { return v.pricePerDayCents }
func (v *Vehicle) Status() Status          { return v.status }
func (v *Vehicle) CreatedAt() time.Time    { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time    { return v.updatedAt }
