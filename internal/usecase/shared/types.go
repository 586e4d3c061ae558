package shared

import (
	"time"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as the command layer sees it. Admins
// may act on any reservation; everyone else only on their own.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin || a.ID == ownerID
}

// Write-side snapshots keep commands off the read-side view types.

type VehicleSnapshot struct {
	ID               uuid.UUID
	Name             string
	PricePerDayCents int64
	Status           string
}

type PromoSnapshot struct {
	ID           uuid.UUID
	Code         string
	FlatOffCents *int64
	PercentOff   *float64
	Active       bool
	ValidFrom    *time.Time
	ValidTo      *time.Time
	UsageCap     int32
	TimesUsed    int32
	LastUsedAt   *time.Time
}

type ReservationSnapshot struct {
	ID                 uuid.UUID
	VehicleID          uuid.UUID
	UserID             uuid.UUID
	StartsAt           time.Time
	EndsAt             time.Time
	Status             string
	SubtotalCents      int64
	DiscountCents      int64
	ServiceChargeCents int64
	TotalCents         int64
	PromoCodeID        *uuid.UUID
	HoldDeadline       *time.Time
}

type PaymentIntentSnapshot struct {
	ID             uuid.UUID
	ReservationID  *uuid.UUID
	ExtensionID    *uuid.UUID
	UserID         uuid.UUID
	Purpose        string
	AmountCents    int64
	Method         string
	Status         string
	ExternalTxnRef *string
	SettledAt      *time.Time
}

type ExtensionSnapshot struct {
	ID              uuid.UUID
	ReservationID   uuid.UUID
	UserID          uuid.UUID
	AddedHours      int32
	NewEndsAt       time.Time
	PriceCents      int64
	Status          string
	PaymentIntentID *uuid.UUID
}
