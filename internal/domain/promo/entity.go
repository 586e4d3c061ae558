package promo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInactive     = errors.New("promo code is inactive")
	ErrNotYetValid  = errors.New("promo code is not yet valid")
	ErrExpired      = errors.New("promo code has expired")
	ErrLimitReached = errors.New("promo code usage limit reached")
	ErrInvalidUsage = errors.New("usage cap and usage count cannot be negative")
)

// IneligibilityReason is the stable label surfaced to clients when a code
// cannot be redeemed. NotFound is produced by the lookup layer; the rest
// come from EligibilityAt.
type IneligibilityReason string

const (
	ReasonNotFound     IneligibilityReason = "NotFound"
	ReasonInactive     IneligibilityReason = "Inactive"
	ReasonNotYetValid  IneligibilityReason = "NotYetValid"
	ReasonExpired      IneligibilityReason = "Expired"
	ReasonLimitReached IneligibilityReason = "LimitReached"
)

func (r IneligibilityReason) String() string {
	return string(r)
}

// ReasonForError maps an eligibility sentinel to its client-facing reason.
func ReasonForError(err error) (IneligibilityReason, bool) {
	switch {
	case errors.Is(err, ErrInactive):
		return ReasonInactive, true
	case errors.Is(err, ErrNotYetValid):
		return ReasonNotYetValid, true
	case errors.Is(err, ErrExpired):
		return ReasonExpired, true
	case errors.Is(err, ErrLimitReached):
		return ReasonLimitReached, true
	default:
		return "", false
	}
}

type Promo struct {
	id         uuid.UUID
	code       Code
	discount   Discount
	active     bool
	validFrom  *time.Time
	validTo    *time.Time
	usageCap   int32
	timesUsed  int32
	lastUsedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPromo(
	id uuid.UUID,
	code string,
	flatOffCents *int64,
	percentOff *float64,
	active bool,
	validFrom, validTo *time.Time,
	usageCap, timesUsed int32,
) (*Promo, error) {
	promoCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(flatOffCents, percentOff)
	if err != nil {
		return nil, err
	}

	if usageCap < 0 || timesUsed < 0 {
		return nil, ErrInvalidUsage
	}

	return &Promo{
		id:        id,
		code:      promoCode,
		discount:  discount,
		active:    active,
		validFrom: validFrom,
		validTo:   validTo,
		usageCap:  usageCap,
		timesUsed: timesUsed,
	}, nil
}

func ReconstructPromo(
	id uuid.UUID,
	code Code,
	discount Discount,
	active bool,
	validFrom, validTo *time.Time,
	usageCap, timesUsed int32,
	lastUsedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Promo {
	return &Promo{
		id:         id,
		code:       code,
		discount:   discount,
		active:     active,
		validFrom:  validFrom,
		validTo:    validTo,
		usageCap:   usageCap,
		timesUsed:  timesUsed,
		lastUsedAt: lastUsedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// EligibilityAt runs the redemption checks in their fixed order and returns
// the first failure: active flag, validity window, then usage cap. A usage
// cap of zero means unlimited. The window bounds are inclusive.
func (p *Promo) EligibilityAt(t time.Time) error {
	if !p.active {
		return ErrInactive
	}
	if p.validFrom != nil && t.Before(*p.validFrom) {
		return ErrNotYetValid
	}
	if p.validTo != nil && t.After(*p.validTo) {
		return ErrExpired
	}
	if p.usageCap > 0 && p.timesUsed >= p.usageCap {
		return ErrLimitReached
	}
	return nil
}

// RecordUse consumes one redemption. Callers must have checked
// EligibilityAt under the same lock that loaded this promo.
func (p *Promo) RecordUse(at time.Time) {
	p.timesUsed++
	used := at
	p.lastUsedAt = &used
}

func (p *Promo) ID() uuid.UUID          { return p.id }
func (p *Promo) Code() Code             { return p.code }
func (p *Promo) Discount() Discount     { return p.discount }
func (p *Promo) Active() bool           { return p.active }
func (p *Promo) ValidFrom() *time.Time  { return p.validFrom }
func (p *Promo) ValidTo() *time.Time    { return p.validTo }
func (p *Promo) UsageCap() int32        { return p.usageCap }
func (p *Promo) TimesUsed() int32       { return p.timesUsed }
func (p *Promo) LastUsedAt() *time.Time { return p.lastUsedAt }
func (p *Promo) CreatedAt() time.Time   { return p.createdAt }
func (p *Promo) UpdatedAt() time.Time   { return p.updatedAt }
