package payment

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount  = errors.New("payment amount must be positive")
	ErrInvalidMethod  = errors.New("payment method cannot be empty")
	ErrMethodTooLong  = errors.New("payment method is too long (max 32 characters)")
	ErrAlreadySettled = errors.New("payment intent is already settled")
	ErrInvalidOutcome = errors.New("invalid settlement outcome")
)

const (
	MaxMethodLength = 32

	// HoldRatio is the deposit fraction that parks a reservation on hold
	// instead of confirming it. HoldTolerance absorbs rounding drift from
	// clients computing the deposit themselves.
	HoldRatio          = 0.10
	HoldToleranceCents = 1

	// HoldDuration is how long a deposit keeps the window before the
	// sweeper releases it.
	HoldDuration = 24 * time.Hour
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) Settled() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Purpose says what an intent pays for: the initial booking, the balance
// that completes a hold, or an extension of a confirmed reservation.
type Purpose string

const (
	PurposeBooking   Purpose = "booking"
	PurposeBalance   Purpose = "balance"
	PurposeExtension Purpose = "extension"
)

func (p Purpose) String() string {
	return string(p)
}

func (p Purpose) IsValid() bool {
	switch p {
	case PurposeBooking, PurposeBalance, PurposeExtension:
		return true
	default:
		return false
	}
}

// Outcome is the terminal result reported by the payment provider.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

func NewOutcome(s string) (Outcome, error) {
	outcome := Outcome(s)
	if outcome != OutcomeSuccess && outcome != OutcomeFailure {
		return "", ErrInvalidOutcome
	}
	return outcome, nil
}

func (o Outcome) String() string {
	return string(o)
}

type Intent struct {
	id             uuid.UUID
	reservationID  *uuid.UUID
	extensionID    *uuid.UUID
	userID         uuid.UUID
	purpose        Purpose
	amountCents    int64
	method         string
	status         Status
	externalTxnRef *string
	settledAt      *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBookingIntent records the payment a caller promised for a fresh
// reservation. The amount is whatever the caller intends to pay; settlement
// decides later whether that confirms the reservation or only holds it.
func NewBookingIntent(reservationID, userID uuid.UUID, amountCents int64, method string) (*Intent, error) {
	return newIntent(PurposeBooking, &reservationID, nil, userID, amountCents, method)
}

// NewBalanceIntent covers the remainder owed on a held reservation.
func NewBalanceIntent(reservationID, userID uuid.UUID, amountCents int64, method string) (*Intent, error) {
	return newIntent(PurposeBalance, &reservationID, nil, userID, amountCents, method)
}

// NewExtensionIntent pays for extra rental time on a confirmed reservation.
func NewExtensionIntent(extensionID, userID uuid.UUID, amountCents int64, method string) (*Intent, error) {
	return newIntent(PurposeExtension, nil, &extensionID, userID, amountCents, method)
}

func newIntent(
	purpose Purpose,
	reservationID, extensionID *uuid.UUID,
	userID uuid.UUID,
	amountCents int64,
	method string,
) (*Intent, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	method = strings.TrimSpace(method)
	if method == "" {
		return nil, ErrInvalidMethod
	}
	if len(method) > MaxMethodLength {
		return nil, ErrMethodTooLong
	}

	return &Intent{
		id:            uuid.New(),
		reservationID: reservationID,
		extensionID:   extensionID,
		userID:        userID,
		purpose:       purpose,
		amountCents:   amountCents,
		method:        method,
		status:        StatusPending,
	}, nil
}

func ReconstructIntent(
	id uuid.UUID,
	reservationID, extensionID *uuid.UUID,
	userID uuid.UUID,
	purpose Purpose,
	amountCents int64,
	method string,
	status Status,
	externalTxnRef *string,
	settledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Intent {
	return &Intent{
		id:             id,
		reservationID:  reservationID,
		extensionID:    extensionID,
		userID:         userID,
		purpose:        purpose,
		amountCents:    amountCents,
		method:         method,
		status:         status,
		externalTxnRef: externalTxnRef,
		settledAt:      settledAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Settle moves a pending intent to its terminal status. Settling twice is
// rejected so the side effects of the first settlement can never replay.
func (i *Intent) Settle(outcome Outcome, externalTxnRef string, at time.Time) error {
	if i.status.Settled() {
		return ErrAlreadySettled
	}

	if outcome == OutcomeSuccess {
		i.status = StatusSuccess
	} else {
		i.status = StatusFailed
	}
	ref := externalTxnRef
	i.externalTxnRef = &ref
	settled := at
	i.settledAt = &settled
	return nil
}

func (i *Intent) Succeeded() bool {
	return i.status == StatusSuccess
}

// IsHoldAmount reports whether the amount lands within tolerance of the
// deposit fraction of the reservation total.
func IsHoldAmount(amountCents, totalCents int64) bool {
	return math.Abs(float64(amountCents)-float64(totalCents)*HoldRatio) <= HoldToleranceCents
}

func (i *Intent) ID() uuid.UUID             { return i.id }
func (i *Intent) ReservationID() *uuid.UUID { return i.reservationID }
func (i *Intent) ExtensionID() *uuid.UUID   { return i.extensionID }
func (i *Intent) UserID() uuid.UUID         { return i.userID }
func (i *Intent) Purpose() Purpose          { return i.purpose }
func (i *Intent) AmountCents() int64        { return i.amountCents }
func (i *Intent) Method() string            { return i.method }
func (i *Intent) Status() Status            { return i.status }
func (i *Intent) ExternalTxnRef() *string   { return i.externalTxnRef }
func (i *Intent) SettledAt() *time.Time     { return i.settledAt }
func (i *Intent) CreatedAt() time.Time      { return i.createdAt }
func (i *Intent) UpdatedAt() time.Time      { return i.updatedAt }
