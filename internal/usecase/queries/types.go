package queries

import (
	"time"

	"github.com/google/uuid"
)

// VehicleListItem represents read-optimized vehicle data for catalog listings
type VehicleListItem struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ReservationView represents a reservation with its full payment and
// extension history, as returned by the detail endpoint
type ReservationView struct {
	ID                 uuid.UUID       `json:"id"`
	VehicleID          uuid.UUID       `json:"vehicle_id"`
	VehicleName        string          `json:"vehicle_name"`
	UserID             uuid.UUID       `json:"user_id"`
	StartsAt           time.Time       `json:"starts_at"`
	EndsAt             time.Time       `json:"ends_at"`
	Status             string          `json:"status"`
	SubtotalCents      int64           `json:"subtotal_cents"`
	DiscountCents      int64           `json:"discount_cents"`
	ServiceChargeCents int64           `json:"service_charge_cents"`
	TotalCents         int64           `json:"total_cents"`
	PromoCode          *string         `json:"promo_code,omitempty"`
	HoldDeadline       *time.Time      `json:"hold_deadline,omitempty"`
	Payments           []PaymentItem   `json:"payments"`
	Extensions         []ExtensionItem `json:"extensions"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PaymentItem is one payment intent row inside a reservation view
type PaymentItem struct {
	ID             uuid.UUID  `json:"id"`
	Purpose        string     `json:"purpose"`
	AmountCents    int64      `json:"amount_cents"`
	Method         string     `json:"method"`
	Status         string     `json:"status"`
	ExternalTxnRef *string    `json:"external_txn_ref,omitempty"`
	SettledAt      *time.Time `json:"settled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ExtensionItem is one extension request row inside a reservation view
type ExtensionItem struct {
	ID         uuid.UUID `json:"id"`
	AddedHours int32     `json:"added_hours"`
	NewEndsAt  time.Time `json:"new_ends_at"`
	PriceCents int64     `json:"price_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReservationListItem represents read-optimized reservation data for
// cursor-paginated history listings
type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"total_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// PromoValidationView reports whether a promo code could be applied to a
// booking made right now, and why not when it cannot. PromoID is what the
// reservation create endpoint expects back.
type PromoValidationView struct {
	Valid        bool       `json:"valid"`
	PromoID      *uuid.UUID `json:"promo_id,omitempty"`
	FlatOffCents *int64     `json:"flat_off_cents,omitempty"`
	PercentOff   *float64   `json:"percent_off,omitempty"`
	Reason       *string    `json:"reason,omitempty"`
}
