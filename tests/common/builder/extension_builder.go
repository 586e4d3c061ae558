//go:build unit || e2e

package builder

import (
	"time"

	domextension "fleetbook/internal/domain/extension"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExtensionBuilder struct {
	ReservationID    uuid.UUID
	UserID           uuid.UUID
	CurrentEnd       time.Time
	AddedHours       int32
	PricePerDayCents int64
}

func NewExtensionBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{
		ReservationID:    uuid.New(),
		UserID:           uuid.New(),
		CurrentEnd:       time.Date(2026, 7, 3, 10, 0, 0, 0, time.UTC),
		AddedHours:       24,
		PricePerDayCents: 200000,
	}
}

func (e *ExtensionBuilder) With(mutate func(*ExtensionBuilder)) *ExtensionBuilder {
	mutate(e)
	return e
}

// Build methods
func (e *ExtensionBuilder) BuildDomain() (*domextension.Extension, error) {
	return domextension.NewExtension(e.ReservationID, e.UserID, e.CurrentEnd, e.AddedHours, e.PricePerDayCents)
}

func (e *ExtensionBuilder) BuildSnapshot() *shared.ExtensionSnapshot {
	id := uuid.New()
	return &shared.ExtensionSnapshot{
		ID:            id,
		ReservationID: e.ReservationID,
		UserID:        e.UserID,
		AddedHours:    e.AddedHours,
		NewEndsAt:     e.CurrentEnd.Add(time.Duration(e.AddedHours) * time.Hour),
		PriceCents:    domextension.PriceCents(e.PricePerDayCents, e.AddedHours),
		Status:        string(domextension.StatusPendingPayment),
	}
}

// Fluent builder methods
func (e *ExtensionBuilder) WithReservationID(id uuid.UUID) *ExtensionBuilder {
	e.ReservationID = id
	return e
}

func (e *ExtensionBuilder) WithUserID(id uuid.UUID) *ExtensionBuilder {
	e.UserID = id
	return e
}

func (e *ExtensionBuilder) WithCurrentEnd(t time.Time) *ExtensionBuilder {
	e.CurrentEnd = t
	return e
}

func (e *ExtensionBuilder) WithAddedHours(hours int32) *ExtensionBuilder {
	e.AddedHours = hours
	return e
}

func (e *ExtensionBuilder) WithPricePerDayCents(cents int64) *ExtensionBuilder {
	e.PricePerDayCents = cents
	return e
}
