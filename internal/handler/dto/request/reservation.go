package request

import (
	"time"

	"fleetbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	VehicleID          uuid.UUID  `json:"vehicle_id" binding:"required"`
	StartsAt           time.Time  `json:"starts_at" binding:"required"`
	EndsAt             time.Time  `json:"ends_at" binding:"required"`
	PromoCodeID        *uuid.UUID `json:"promo_code_id,omitempty"`
	PaymentAmountCents int64      `json:"payment_amount_cents" binding:"required,gt=0"`
	PaymentMethod      string     `json:"payment_method" binding:"required,max=32"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		VehicleID:     r.VehicleID,
		StartsAt:      r.StartsAt,
		EndsAt:        r.EndsAt,
		PromoCodeID:   r.PromoCodeID,
		PaymentAmount: r.PaymentAmountCents,
		PaymentMethod: r.PaymentMethod,
	}
}

type BalancePaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,max=32"`
}

type ExtensionRequest struct {
	AddedHours    int32  `json:"added_hours" binding:"required,gt=0"`
	PaymentMethod string `json:"payment_method" binding:"required,max=32"`
}
