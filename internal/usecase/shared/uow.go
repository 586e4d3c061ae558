package shared

import (
	"context"
	"time"

	"fleetbook/internal/domain/extension"
	"fleetbook/internal/domain/payment"
	"fleetbook/internal/domain/reservation"
	"fleetbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.Querier) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.Querier) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Vehicles() VehicleRepository
	Reservations() ReservationRepository
	Promos() PromoRepository
	Payments() PaymentRepository
	Extensions() ExtensionRepository
	DB() db.Querier
}

type CommandReads interface {
	VehicleByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	PaymentIntentByID(ctx context.Context, id uuid.UUID) (*PaymentIntentSnapshot, error)
}

type VehicleRepository interface {
	// FindByIDForUpdate locks the vehicle row until the transaction ends.
	// Every writer touching a vehicle's calendar serializes on this lock.
	FindByIDForUpdate(ctx context.Context, db db.Querier, id uuid.UUID) (*VehicleSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, db db.Querier, res *reservation.Reservation) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, db db.Querier, id uuid.UUID) (*ReservationSnapshot, error)
	// HasBlockingOverlap checks the write-path predicate: pending and
	// confirmed reservations, live holds, and the tail windows of pending
	// extensions all occupy the vehicle. excludeID drops the caller's own
	// reservation from the check.
	HasBlockingOverlap(ctx context.Context, db db.Querier, vehicleID uuid.UUID, start, end, now time.Time, excludeID *uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, db db.Querier, id uuid.UUID, status reservation.Status, holdDeadline *time.Time) error
	ExtendEnd(ctx context.Context, db db.Querier, id uuid.UUID, newEnd time.Time) error
	CancelExpiredHolds(ctx context.Context, db db.Querier, now time.Time) (int64, error)
}

type PromoRepository interface {
	// Promo rows are always locked before any vehicle row, never after.
	FindByIDForUpdate(ctx context.Context, db db.Querier, id uuid.UUID) (*PromoSnapshot, error)
	RecordUse(ctx context.Context, db db.Querier, id uuid.UUID, usedAt time.Time) error
}

type PaymentRepository interface {
	Create(ctx context.Context, db db.Querier, intent *payment.Intent) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, db db.Querier, id uuid.UUID) (*PaymentIntentSnapshot, error)
	// MarkSettled flips a pending intent to its terminal status. Returns
	// false when the intent was no longer pending.
	MarkSettled(ctx context.Context, db db.Querier, id uuid.UUID, status payment.Status, externalTxnRef string, settledAt time.Time) (bool, error)
	SumSucceededCentsByReservation(ctx context.Context, db db.Querier, reservationID uuid.UUID) (int64, error)
	HasPendingForReservation(ctx context.Context, db db.Querier, reservationID uuid.UUID) (bool, error)
}

type ExtensionRepository interface {
	Create(ctx context.Context, db db.Querier, ext *extension.Extension) (uuid.UUID, error)
	SetPaymentIntent(ctx context.Context, db db.Querier, extensionID, intentID uuid.UUID) error
	FindByIDForUpdate(ctx context.Context, db db.Querier, id uuid.UUID) (*ExtensionSnapshot, error)
	UpdateStatus(ctx context.Context, db db.Querier, id uuid.UUID, status extension.Status) error
	ExistsPendingForReservation(ctx context.Context, db db.Querier, reservationID uuid.UUID) (bool, error)
}
