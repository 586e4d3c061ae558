package response

import (
	"time"

	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	PaymentIntentID uuid.UUID `json:"payment_intent_id"`
}

type BalancePaymentResponse struct {
	PaymentIntentID uuid.UUID `json:"payment_intent_id"`
	AmountCents     int64     `json:"amount_cents"`
}

type ExtensionResponse struct {
	ID              uuid.UUID `json:"id"`
	PaymentIntentID uuid.UUID `json:"payment_intent_id"`
	NewEndsAt       time.Time `json:"new_ends_at"`
	PriceCents      int64     `json:"price_cents"`
}

type ReservationResponse struct {
	ID                 uuid.UUID               `json:"id"`
	VehicleID          uuid.UUID               `json:"vehicle_id"`
	VehicleName        string                  `json:"vehicle_name"`
	UserID             uuid.UUID               `json:"user_id"`
	StartsAt           time.Time               `json:"starts_at"`
	EndsAt             time.Time               `json:"ends_at"`
	Status             string                  `json:"status"`
	SubtotalCents      int64                   `json:"subtotal_cents"`
	DiscountCents      int64                   `json:"discount_cents"`
	ServiceChargeCents int64                   `json:"service_charge_cents"`
	TotalCents         int64                   `json:"total_cents"`
	PromoCode          *string                 `json:"promo_code,omitempty"`
	HoldDeadline       *time.Time              `json:"hold_deadline,omitempty"`
	Payments           []PaymentItemResponse   `json:"payments"`
	Extensions         []ExtensionItemResponse `json:"extensions"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

type PaymentItemResponse struct {
	ID             uuid.UUID  `json:"id"`
	Purpose        string     `json:"purpose"`
	AmountCents    int64      `json:"amount_cents"`
	Method         string     `json:"method"`
	Status         string     `json:"status"`
	ExternalTxnRef *string    `json:"external_txn_ref,omitempty"`
	SettledAt      *time.Time `json:"settled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ExtensionItemResponse struct {
	ID         uuid.UUID `json:"id"`
	AddedHours int32     `json:"added_hours"`
	NewEndsAt  time.Time `json:"new_ends_at"`
	PriceCents int64     `json:"price_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"total_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var res ReservationResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromReservationList(items []*queries.ReservationListItem) []*ReservationListResponse {
	res := make([]*ReservationListResponse, 0, len(items))
	_ = copier.Copy(&res, items)
	return res
}
