//go:build unit || e2e

package builder

import (
	dompayment "fleetbook/internal/domain/payment"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentIntentBuilder struct {
	ReservationID uuid.UUID
	ExtensionID   uuid.UUID
	UserID        uuid.UUID
	Purpose       dompayment.Purpose
	AmountCents   int64
	Method        string
	Status        dompayment.Status
}

func NewPaymentIntentBuilder() *PaymentIntentBuilder {
	return &PaymentIntentBuilder{
		ReservationID: uuid.New(),
		ExtensionID:   uuid.New(),
		UserID:        uuid.New(),
		Purpose:       dompayment.PurposeBooking,
		AmountCents:   367500,
		Method:        "card",
		Status:        dompayment.StatusPending,
	}
}

func (p *PaymentIntentBuilder) With(mutate func(*PaymentIntentBuilder)) *PaymentIntentBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PaymentIntentBuilder) BuildDomain() (*dompayment.Intent, error) {
	switch p.Purpose {
	case dompayment.PurposeBalance:
		return dompayment.NewBalanceIntent(p.ReservationID, p.UserID, p.AmountCents, p.Method)
	case dompayment.PurposeExtension:
		return dompayment.NewExtensionIntent(p.ExtensionID, p.UserID, p.AmountCents, p.Method)
	default:
		return dompayment.NewBookingIntent(p.ReservationID, p.UserID, p.AmountCents, p.Method)
	}
}

func (p *PaymentIntentBuilder) BuildSnapshot() *shared.PaymentIntentSnapshot {
	id := uuid.New()
	snap := &shared.PaymentIntentSnapshot{
		ID:          id,
		UserID:      p.UserID,
		Purpose:     string(p.Purpose),
		AmountCents: p.AmountCents,
		Method:      p.Method,
		Status:      string(p.Status),
	}
	if p.Purpose == dompayment.PurposeExtension {
		extID := p.ExtensionID
		snap.ExtensionID = &extID
	} else {
		resID := p.ReservationID
		snap.ReservationID = &resID
	}
	return snap
}

// Fluent builder methods
func (p *PaymentIntentBuilder) WithReservationID(id uuid.UUID) *PaymentIntentBuilder {
	p.ReservationID = id
	return p
}

func (p *PaymentIntentBuilder) WithExtensionID(id uuid.UUID) *PaymentIntentBuilder {
	p.ExtensionID = id
	return p
}

func (p *PaymentIntentBuilder) WithUserID(id uuid.UUID) *PaymentIntentBuilder {
	p.UserID = id
	return p
}

func (p *PaymentIntentBuilder) WithPurpose(purpose dompayment.Purpose) *PaymentIntentBuilder {
	p.Purpose = purpose
	return p
}

func (p *PaymentIntentBuilder) WithAmountCents(cents int64) *PaymentIntentBuilder {
	p.AmountCents = cents
	return p
}

func (p *PaymentIntentBuilder) WithMethod(method string) *PaymentIntentBuilder {
	p.Method = method
	return p
}

func (p *PaymentIntentBuilder) WithStatus(status dompayment.Status) *PaymentIntentBuilder {
	p.Status = status
	return p
}
