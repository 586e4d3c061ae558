//go:build unit || e2e

package builder

import (
	"time"

	domreservation "fleetbook/internal/domain/reservation"
	reqdto "fleetbook/internal/handler/dto/request"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	VehicleID          uuid.UUID
	VehicleName        string
	UserID             uuid.UUID
	StartsAt           time.Time
	EndsAt             time.Time
	Status             string
	PricePerDayCents   int64
	FlatOffCents       *int64
	PercentOff         *float64
	PromoID            *uuid.UUID
	HoldDeadline       *time.Time
	PaymentAmountCents int64
	PaymentMethod      string
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		VehicleID:          uuid.New(),
		VehicleName:        "Compact Sedan",
		UserID:             uuid.New(),
		StartsAt:           start,
		EndsAt:             start.Add(48 * time.Hour),
		Status:             string(domreservation.StatusPendingPayment),
		PricePerDayCents:   200000,
		PaymentAmountCents: 42000,
		PaymentMethod:      "card",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildPeriod() (domreservation.Period, error) {
	return domreservation.NewPeriod(r.StartsAt, r.EndsAt)
}

func (r *ReservationBuilder) BuildQuote() (domreservation.Quote, error) {
	period, err := r.BuildPeriod()
	if err != nil {
		return domreservation.Quote{}, err
	}

	var spec *domreservation.DiscountSpec
	if r.FlatOffCents != nil || r.PercentOff != nil {
		spec = &domreservation.DiscountSpec{
			FlatOffCents: r.FlatOffCents,
			PercentOff:   r.PercentOff,
		}
	}
	return domreservation.NewQuote(r.PricePerDayCents, period, spec), nil
}

func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	period, err := r.BuildPeriod()
	if err != nil {
		return nil, err
	}
	quote, err := r.BuildQuote()
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(r.VehicleID, r.UserID, period, quote, r.PromoID), nil
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		VehicleID:          r.VehicleID,
		StartsAt:           r.StartsAt,
		EndsAt:             r.EndsAt,
		PromoCodeID:        r.PromoID,
		PaymentAmountCents: r.PaymentAmountCents,
		PaymentMethod:      r.PaymentMethod,
	}
}

func (r *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	id := uuid.New()
	quote, _ := r.BuildQuote()
	return &queries.ReservationView{
		ID:                 id,
		VehicleID:          r.VehicleID,
		VehicleName:        r.VehicleName,
		UserID:             r.UserID,
		StartsAt:           r.StartsAt,
		EndsAt:             r.EndsAt,
		Status:             r.Status,
		SubtotalCents:      quote.Subtotal().Cents(),
		DiscountCents:      quote.Discount().Cents(),
		ServiceChargeCents: quote.ServiceCharge().Cents(),
		TotalCents:         quote.Total().Cents(),
		HoldDeadline:       r.HoldDeadline,
		Payments:           []queries.PaymentItem{},
		Extensions:         []queries.ExtensionItem{},
		CreatedAt:          r.StartsAt.Add(-72 * time.Hour),
		UpdatedAt:          r.StartsAt.Add(-72 * time.Hour),
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	id := uuid.New()
	quote, _ := r.BuildQuote()
	return &queries.ReservationListItem{
		ID:          id,
		VehicleID:   r.VehicleID,
		VehicleName: r.VehicleName,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Status:      r.Status,
		TotalCents:  quote.Total().Cents(),
		CreatedAt:   r.StartsAt.Add(-72 * time.Hour),
	}
}

func (r *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	id := uuid.New()
	quote, _ := r.BuildQuote()
	return &shared.ReservationSnapshot{
		ID:                 id,
		VehicleID:          r.VehicleID,
		UserID:             r.UserID,
		StartsAt:           r.StartsAt,
		EndsAt:             r.EndsAt,
		Status:             r.Status,
		SubtotalCents:      quote.Subtotal().Cents(),
		DiscountCents:      quote.Discount().Cents(),
		ServiceChargeCents: quote.ServiceCharge().Cents(),
		TotalCents:         quote.Total().Cents(),
		PromoCodeID:        r.PromoID,
		HoldDeadline:       r.HoldDeadline,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithVehicleID(id uuid.UUID) *ReservationBuilder {
	r.VehicleID = id
	return r
}

func (r *ReservationBuilder) WithVehicleName(name string) *ReservationBuilder {
	r.VehicleName = name
	return r
}

func (r *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	r.StartsAt = start
	r.EndsAt = end
	return r
}

func (r *ReservationBuilder) WithDuration(d time.Duration) *ReservationBuilder {
	r.EndsAt = r.StartsAt.Add(d)
	return r
}

func (r *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	r.Status = string(status)
	return r
}

func (r *ReservationBuilder) WithPricePerDayCents(cents int64) *ReservationBuilder {
	r.PricePerDayCents = cents
	return r
}

func (r *ReservationBuilder) WithFlatOff(cents int64) *ReservationBuilder {
	r.FlatOffCents = &cents
	r.PercentOff = nil
	return r
}

func (r *ReservationBuilder) WithPercentOff(percent float64) *ReservationBuilder {
	r.PercentOff = &percent
	r.FlatOffCents = nil
	return r
}

func (r *ReservationBuilder) WithPromoID(id uuid.UUID) *ReservationBuilder {
	r.PromoID = &id
	return r
}

func (r *ReservationBuilder) WithHoldDeadline(t time.Time) *ReservationBuilder {
	r.HoldDeadline = &t
	return r
}

func (r *ReservationBuilder) WithPaymentAmountCents(cents int64) *ReservationBuilder {
	r.PaymentAmountCents = cents
	return r
}
