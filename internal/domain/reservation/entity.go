package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPendingPayment = errors.New("reservation is not awaiting payment")
	ErrNotConfirmed      = errors.New("reservation is not confirmed")
	ErrAlreadyFinalized  = errors.New("reservation is already finalized")
	ErrInvalidNewEnd     = errors.New("new end must be after the current end")
)

type Reservation struct {
	id           uuid.UUID
	vehicleID    uuid.UUID
	userID       uuid.UUID
	period       Period
	status       Status
	quote        Quote
	promoID      *uuid.UUID
	holdDeadline *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReservation books a priced window for a user. Every reservation starts
// life awaiting its booking payment; settlement moves it on from there.
func NewReservation(
	vehicleID, userID uuid.UUID,
	period Period,
	quote Quote,
	promoID *uuid.UUID,
) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		vehicleID: vehicleID,
		userID:    userID,
		period:    period,
		status:    StatusPendingPayment,
		quote:     quote,
		promoID:   promoID,
	}
}

func ReconstructReservation(
	id, vehicleID, userID uuid.UUID,
	period Period,
	status Status,
	quote Quote,
	promoID *uuid.UUID,
	holdDeadline *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		vehicleID:    vehicleID,
		userID:       userID,
		period:       period,
		status:       status,
		quote:        quote,
		promoID:      promoID,
		holdDeadline: holdDeadline,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// MarkHold parks a reservation that was paid a deposit rather than the full
// amount. The deadline is the instant the hold lapses unless completed.
func (r *Reservation) MarkHold(deadline time.Time) error {
	if r.status != StatusPendingPayment {
		return ErrNotPendingPayment
	}
	r.status = StatusHold
	d := deadline
	r.holdDeadline = &d
	return nil
}

// Confirm settles the reservation in full, from either the initial payment
// or the completion of a hold.
func (r *Reservation) Confirm() error {
	switch r.status {
	case StatusPendingPayment, StatusHold:
		r.status = StatusConfirmed
		r.holdDeadline = nil
		return nil
	default:
		return ErrAlreadyFinalized
	}
}

// Cancel releases the window. Confirmed and already cancelled reservations
// stay as they are.
func (r *Reservation) Cancel() error {
	switch r.status {
	case StatusPendingPayment, StatusHold:
		r.status = StatusCancelled
		r.holdDeadline = nil
		return nil
	default:
		return ErrAlreadyFinalized
	}
}

// ExtendEnd pushes the rental end out after an extension payment settles.
func (r *Reservation) ExtendEnd(newEnd time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	extended, err := r.period.WithEnd(newEnd)
	if err != nil || !newEnd.After(r.period.End()) {
		return ErrInvalidNewEnd
	}
	r.period = extended
	return nil
}

// BlocksAt reports whether this reservation keeps the vehicle's window
// occupied for new bookings at the given instant. Pending and confirmed
// reservations always block; a hold blocks only while its deadline is
// still in the future.
func (r *Reservation) BlocksAt(now time.Time) bool {
	switch r.status {
	case StatusPendingPayment, StatusConfirmed:
		return true
	case StatusHold:
		return r.holdDeadline != nil && r.holdDeadline.After(now)
	default:
		return false
	}
}

// HoldLapsedAt reports whether the hold deadline has passed and the sweeper
// may cancel this reservation.
func (r *Reservation) HoldLapsedAt(now time.Time) bool {
	return r.status == StatusHold && r.holdDeadline != nil && r.holdDeadline.Before(now)
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) VehicleID() uuid.UUID     { return r.vehicleID }
func (r *Reservation) UserID() uuid.UUID        { return r.userID }
func (r *Reservation) Period() Period           { return r.period }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) Quote() Quote             { return r.quote }
func (r *Reservation) PromoID() *uuid.UUID      { return r.promoID }
func (r *Reservation) HoldDeadline() *time.Time { return r.holdDeadline }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
