package extension

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errors.New("added duration must be a positive multiple of 12 hours")
	ErrNotPending      = errors.New("extension is not awaiting payment")
)

const (
	// UnitHours is the granularity extensions are sold in.
	UnitHours = 12
	// FullPeriodHours is the billing day the daily rate covers; shorter
	// extensions are prorated against it.
	FullPeriodHours = 24
)

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusApplied        Status = "applied"
	StatusPaymentFailed  Status = "payment_failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusApplied, StatusPaymentFailed:
		return true
	default:
		return false
	}
}

type Extension struct {
	id              uuid.UUID
	reservationID   uuid.UUID
	userID          uuid.UUID
	addedHours      int32
	newEndsAt       time.Time
	priceCents      int64
	status          Status
	paymentIntentID *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func ValidateAddedHours(addedHours int32) error {
	if addedHours <= 0 || addedHours%UnitHours != 0 {
		return ErrInvalidDuration
	}
	return nil
}

// PriceCents prorates the vehicle's daily rate over the added hours.
func PriceCents(pricePerDayCents int64, addedHours int32) int64 {
	return int64(math.Round(float64(pricePerDayCents) * float64(addedHours) / FullPeriodHours))
}

// NewExtension prices and stages extra rental time ending at the requested
// new end. The reservation itself is only moved once the linked payment
// settles successfully.
func NewExtension(
	reservationID, userID uuid.UUID,
	currentEnd time.Time,
	addedHours int32,
	pricePerDayCents int64,
) (*Extension, error) {
	if err := ValidateAddedHours(addedHours); err != nil {
		return nil, err
	}

	return &Extension{
		id:            uuid.New(),
		reservationID: reservationID,
		userID:        userID,
		addedHours:    addedHours,
		newEndsAt:     currentEnd.Add(time.Duration(addedHours) * time.Hour),
		priceCents:    PriceCents(pricePerDayCents, addedHours),
		status:        StatusPendingPayment,
	}, nil
}

func ReconstructExtension(
	id, reservationID, userID uuid.UUID,
	addedHours int32,
	newEndsAt time.Time,
	priceCents int64,
	status Status,
	paymentIntentID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Extension {
	return &Extension{
		id:              id,
		reservationID:   reservationID,
		userID:          userID,
		addedHours:      addedHours,
		newEndsAt:       newEndsAt,
		priceCents:      priceCents,
		status:          status,
		paymentIntentID: paymentIntentID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (e *Extension) AttachPaymentIntent(intentID uuid.UUID) {
	id := intentID
	e.paymentIntentID = &id
}

// MarkApplied records that the extension's payment settled and the
// reservation end was pushed out.
func (e *Extension) MarkApplied() error {
	if e.status != StatusPendingPayment {
		return ErrNotPending
	}
	e.status = StatusApplied
	return nil
}

func (e *Extension) MarkPaymentFailed() error {
	if e.status != StatusPendingPayment {
		return ErrNotPending
	}
	e.status = StatusPaymentFailed
	return nil
}

func (e *Extension) ID() uuid.UUID               { return e.id }
func (e *Extension) ReservationID() uuid.UUID    { return e.reservationID }
func (e *Extension) UserID() uuid.UUID           { return e.userID }
func (e *Extension) AddedHours() int32           { return e.addedHours }
func (e *Extension) NewEndsAt() time.Time        { return e.newEndsAt }
func (e *Extension) PriceCents() int64           { return e.priceCents }
func (e *Extension) Status() Status              { return e.status }
func (e *Extension) PaymentIntentID() *uuid.UUID { return e.paymentIntentID }
func (e *Extension) CreatedAt() time.Time        { return e.createdAt }
func (e *Extension) UpdatedAt() time.Time        { return e.updatedAt }
