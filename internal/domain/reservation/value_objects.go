package reservation

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidPeriod  = errors.New("period end must be after start")
	ErrNegativeAmount = errors.New("money cannot be negative")
)

// Period is a half-open rental window [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}

	return Period{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Overlaps reports whether two half-open windows share any instant.
// Back-to-back periods where one ends exactly when the other starts
// do not overlap.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}

func (p Period) WithEnd(end time.Time) (Period, error) {
	return NewPeriod(p.start, end)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// DiscountSpec carries the promo terms a quote needs without pulling the
// whole promo aggregate into this package. Exactly one field is set.
type DiscountSpec struct {
	FlatOffCents *int64
	PercentOff   *float64
}

// ServiceChargeRate is applied to the discounted subtotal on every booking.
const ServiceChargeRate = 0.05

// Quote is the priced breakdown of a reservation, computed once at booking
// time and stored verbatim. The pipeline is fixed: prorate the daily rate
// over the window, subtract the discount (never below zero), then add the
// service charge on what remains.
type Quote struct {
	subtotal      Money
	discount      Money
	serviceCharge Money
	total         Money
}

func NewQuote(pricePerDayCents int64, period Period, discount *DiscountSpec) Quote {
	subtotal := roundCents(float64(pricePerDayCents) * period.Duration().Hours() / 24)

	var off int64
	if discount != nil {
		off = discountAmount(subtotal, discount)
	}

	afterDiscount := subtotal - off
	serviceCharge := roundCents(float64(afterDiscount) * ServiceChargeRate)

	return Quote{
		subtotal:      Money{cents: subtotal},
		discount:      Money{cents: off},
		serviceCharge: Money{cents: serviceCharge},
		total:         Money{cents: afterDiscount + serviceCharge},
	}
}

func ReconstructQuote(subtotalCents, discountCents, serviceChargeCents, totalCents int64) Quote {
	return Quote{
		subtotal:      Money{cents: subtotalCents},
		discount:      Money{cents: discountCents},
		serviceCharge: Money{cents: serviceChargeCents},
		total:         Money{cents: totalCents},
	}
}

func discountAmount(subtotalCents int64, spec *DiscountSpec) int64 {
	var off int64
	switch {
	case spec.FlatOffCents != nil:
		off = *spec.FlatOffCents
	case spec.PercentOff != nil:
		off = roundCents(float64(subtotalCents) * *spec.PercentOff / 100)
	}

	if off < 0 {
		off = 0
	}
	if off > subtotalCents {
		off = subtotalCents
	}
	return off
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

func (q Quote) Subtotal() Money      { return q.subtotal }
func (q Quote) Discount() Money      { return q.discount }
func (q Quote) ServiceCharge() Money { return q.serviceCharge }
func (q Quote) Total() Money         { return q.total }
