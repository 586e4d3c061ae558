package commands

import (
	"context"
	"time"

	"fleetbook/internal/domain/extension"
	"fleetbook/internal/domain/payment"
	"fleetbook/internal/domain/reservation"
	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotExtendable = errs.New("reservation cannot be extended")
	ErrAlreadyEnded  = errs.New("reservation already ended")
)

type ExtensionRequest struct {
	AddedHours int32
	Method     string
}

type ExtensionResult struct {
	ExtensionID     uuid.UUID
	PaymentIntentID uuid.UUID
	NewEndsAt       time.Time
	PriceCents      int64
}

type ExtensionCommands interface {
	RequestExtension(ctx context.Context, userID uuid.UUID, reservationID uuid.UUID, req ExtensionRequest) (*ExtensionResult, error)
}

type extensionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewExtensionUseCase(uow shared.UnitOfWork, clk clock.Clock) ExtensionCommands {
	return &extensionUseCaseImpl{uow: uow, clock: clk}
}

// RequestExtension stages extra rental time on a confirmed reservation and
// opens the intent that pays for it. The reservation's end moves only when
// that payment settles successfully.
func (uc *extensionUseCaseImpl) RequestExtension(ctx context.Context, userID uuid.UUID, reservationID uuid.UUID, req ExtensionRequest) (*ExtensionResult, error) {
	// Lock-free fast fail; the same checks run again under the row lock.
	snap, err := uc.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFoundWrite
		}
		return nil, err
	}
	if snap.UserID != userID {
		return nil, ErrForbidden
	}
	if err := extension.ValidateAddedHours(req.AddedHours); err != nil {
		return nil, err
	}

	var result ExtensionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		res, derr := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), reservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFoundWrite
			}
			return derr
		}
		if res.UserID != userID {
			return ErrForbidden
		}
		if reservation.Status(res.Status) != reservation.StatusConfirmed {
			return ErrNotExtendable
		}
		if !res.EndsAt.After(now) {
			return ErrAlreadyEnded
		}

		// One pending extension at a time; the reservation row lock
		// serializes concurrent requests on the same reservation.
		pending, derr := tx.Extensions().ExistsPendingForReservation(ctx, tx.DB(), reservationID)
		if derr != nil {
			return derr
		}
		if pending {
			return ErrNotExtendable
		}

		// The vehicle lock carries the current rate and serializes the
		// delta window against concurrent bookings. Reservation before
		// vehicle on this path.
		vsnap, derr := tx.Vehicles().FindByIDForUpdate(ctx, tx.DB(), res.VehicleID)
		if derr != nil {
			return derr
		}

		ext, derr := extension.NewExtension(reservationID, userID, res.EndsAt, req.AddedHours, vsnap.PricePerDayCents)
		if derr != nil {
			return derr
		}

		blocked, derr := tx.Reservations().HasBlockingOverlap(ctx, tx.DB(), res.VehicleID, res.EndsAt, ext.NewEndsAt(), now, &reservationID)
		if derr != nil {
			return derr
		}
		if blocked {
			return ErrVehicleUnavailable
		}

		extID, derr := tx.Extensions().Create(ctx, tx.DB(), ext)
		if derr != nil {
			return derr
		}

		intent, derr := payment.NewExtensionIntent(extID, userID, ext.PriceCents(), req.Method)
		if derr != nil {
			return derr
		}
		intentID, derr := tx.Payments().Create(ctx, tx.DB(), intent)
		if derr != nil {
			return derr
		}
		if derr = tx.Extensions().SetPaymentIntent(ctx, tx.DB(), extID, intentID); derr != nil {
			return derr
		}

		result = ExtensionResult{
			ExtensionID:     extID,
			PaymentIntentID: intentID,
			NewEndsAt:       ext.NewEndsAt(),
			PriceCents:      ext.PriceCents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
