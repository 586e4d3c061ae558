//go:build unit || e2e

package builder

import (
	"time"

	dompromo "fleetbook/internal/domain/promo"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromoBuilder struct {
	ID           uuid.UUID
	Code         string
	FlatOffCents *int64
	PercentOff   *float64
	Active       bool
	ValidFrom    *time.Time
	ValidTo      *time.Time
	UsageCap     int32
	TimesUsed    int32
	LastUsedAt   *time.Time
}

func NewPromoBuilder() *PromoBuilder {
	flat := int64(50000)
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	return &PromoBuilder{
		ID:           uuid.New(),
		Code:         "SUMMER500",
		FlatOffCents: &flat,
		Active:       true,
		ValidFrom:    &from,
		ValidTo:      &to,
		UsageCap:     0,
		TimesUsed:    0,
	}
}

func (p *PromoBuilder) With(mutate func(*PromoBuilder)) *PromoBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PromoBuilder) BuildDomain() (*dompromo.Promo, error) {
	return dompromo.NewPromo(
		p.ID, p.Code, p.FlatOffCents, p.PercentOff,
		p.Active, p.ValidFrom, p.ValidTo, p.UsageCap, p.TimesUsed,
	)
}

func (p *PromoBuilder) BuildSnapshot() *shared.PromoSnapshot {
	return &shared.PromoSnapshot{
		ID:           p.ID,
		Code:         p.Code,
		FlatOffCents: p.FlatOffCents,
		PercentOff:   p.PercentOff,
		Active:       p.Active,
		ValidFrom:    p.ValidFrom,
		ValidTo:      p.ValidTo,
		UsageCap:     p.UsageCap,
		TimesUsed:    p.TimesUsed,
		LastUsedAt:   p.LastUsedAt,
	}
}

func (p *PromoBuilder) BuildValidationView() *queries.PromoValidationView {
	return &queries.PromoValidationView{
		Valid:        true,
		PromoID:      &p.ID,
		FlatOffCents: p.FlatOffCents,
		PercentOff:   p.PercentOff,
	}
}

// Fluent builder methods
func (p *PromoBuilder) WithID(id uuid.UUID) *PromoBuilder {
	p.ID = id
	return p
}

func (p *PromoBuilder) WithCode(code string) *PromoBuilder {
	p.Code = code
	return p
}

func (p *PromoBuilder) WithFlatOff(cents int64) *PromoBuilder {
	p.FlatOffCents = &cents
	p.PercentOff = nil
	return p
}

func (p *PromoBuilder) WithPercentOff(percent float64) *PromoBuilder {
	p.PercentOff = &percent
	p.FlatOffCents = nil
	return p
}

func (p *PromoBuilder) WithActive(active bool) *PromoBuilder {
	p.Active = active
	return p
}

func (p *PromoBuilder) WithValidFrom(t *time.Time) *PromoBuilder {
	p.ValidFrom = t
	return p
}

func (p *PromoBuilder) WithValidTo(t *time.Time) *PromoBuilder {
	p.ValidTo = t
	return p
}

func (p *PromoBuilder) WithUsageCap(cap int32) *PromoBuilder {
	p.UsageCap = cap
	return p
}

func (p *PromoBuilder) WithTimesUsed(used int32) *PromoBuilder {
	p.TimesUsed = used
	return p
}

func (p *PromoBuilder) AsExhausted() *PromoBuilder {
	p.UsageCap = 1
	p.TimesUsed = 1
	return p
}
