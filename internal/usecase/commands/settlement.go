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

var ErrPaymentNotFound = errs.New("payment intent not found")

type SettlePaymentRequest struct {
	IntentID       uuid.UUID
	Outcome        payment.Outcome
	ExternalTxnRef string
}

type SettlePaymentResult struct {
	AlreadySettled bool
	Status         string
}

type PaymentCommands interface {
	SettlePayment(ctx context.Context, actor shared.Actor, req SettlePaymentRequest) (*SettlePaymentResult, error)
	SweepExpiredHolds(ctx context.Context) (int64, error)
}

type paymentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, clock: clk}
}

// SettlePayment records the gateway's verdict on a pending intent and
// carries it into reservation, extension, and promo state in one
// transaction. Duplicate callbacks observe a terminal status and come back
// with AlreadySettled set, re-applying nothing.
func (uc *paymentUseCaseImpl) SettlePayment(ctx context.Context, actor shared.Actor, req SettlePaymentRequest) (*SettlePaymentResult, error) {
	// Lock-free fast fail; the settled check runs again under the row lock.
	snap, err := uc.uow.CommandReads().PaymentIntentByID(ctx, req.IntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(snap.UserID) {
		return nil, ErrForbidden
	}
	if payment.Status(snap.Status).Settled() {
		return &SettlePaymentResult{AlreadySettled: true, Status: snap.Status}, nil
	}

	var result SettlePaymentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		locked, derr := tx.Payments().FindByIDForUpdate(ctx, tx.DB(), req.IntentID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return derr
		}
		if payment.Status(locked.Status).Settled() {
			result = SettlePaymentResult{AlreadySettled: true, Status: locked.Status}
			return nil
		}

		intent := payment.ReconstructIntent(
			locked.ID, locked.ReservationID, locked.ExtensionID, locked.UserID,
			payment.Purpose(locked.Purpose), locked.AmountCents, locked.Method,
			payment.Status(locked.Status), locked.ExternalTxnRef, locked.SettledAt,
			now, now,
		)
		if derr = intent.Settle(req.Outcome, req.ExternalTxnRef, now); derr != nil {
			return derr
		}

		updated, derr := tx.Payments().MarkSettled(ctx, tx.DB(), intent.ID(), intent.Status(), req.ExternalTxnRef, now)
		if derr != nil {
			return derr
		}
		if !updated {
			result = SettlePaymentResult{AlreadySettled: true, Status: locked.Status}
			return nil
		}

		if intent.Succeeded() {
			derr = applySettlementSuccess(ctx, tx, intent, now)
		} else {
			derr = applySettlementFailure(ctx, tx, intent, now)
		}
		if derr != nil {
			return derr
		}

		result = SettlePaymentResult{Status: intent.Status().String()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SweepExpiredHolds cancels every hold whose deadline has passed. The
// update re-evaluates its predicate under the row lock, so a hold that a
// late success callback just confirmed is skipped rather than cancelled.
func (uc *paymentUseCaseImpl) SweepExpiredHolds(ctx context.Context) (int64, error) {
	var count int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Reservations().CancelExpiredHolds(ctx, tx.DB(), uc.clock.Now())
		if derr != nil {
			return derr
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// applySettlementSuccess moves the linked aggregate forward. Extension
// settlements push the new end onto the reservation; direct reservation
// settlements charge the promo counter and classify the payment as a hold
// deposit or a full confirmation.
func applySettlementSuccess(ctx context.Context, tx shared.Tx, intent *payment.Intent, now time.Time) error {
	if extID := intent.ExtensionID(); extID != nil {
		return applyExtensionSuccess(ctx, tx, *extID, now)
	}
	return applyReservationSuccess(ctx, tx, intent, now)
}

func applyReservationSuccess(ctx context.Context, tx shared.Tx, intent *payment.Intent, now time.Time) error {
	resID := intent.ReservationID()
	if resID == nil {
		return errs.New("payment intent links to neither a reservation nor an extension")
	}

	snap, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), *resID)
	if err != nil {
		return err
	}
	res, err := reservationFromSnapshot(snap, now)
	if err != nil {
		return err
	}

	// The counter charges on the settlement that moves the reservation out
	// of pending_payment. Balance settlements arrive with the reservation
	// already on hold and leave the counter alone; extensions never reach
	// this path at all.
	if res.Status() == reservation.StatusPendingPayment && res.PromoID() != nil {
		if _, err := tx.Promos().FindByIDForUpdate(ctx, tx.DB(), *res.PromoID()); err != nil {
			return err
		}
		if err := tx.Promos().RecordUse(ctx, tx.DB(), *res.PromoID(), now); err != nil {
			return err
		}
	}

	switch {
	case res.Status() == reservation.StatusPendingPayment && payment.IsHoldAmount(intent.AmountCents(), snap.TotalCents):
		if err := res.MarkHold(now.Add(payment.HoldDuration)); err != nil {
			return err
		}
	case res.Status() == reservation.StatusPendingPayment || res.Status() == reservation.StatusHold:
		if err := res.Confirm(); err != nil {
			return err
		}
	default:
		// A swept reservation stays cancelled; the settled intent remains
		// on record but resurrects nothing.
		return nil
	}

	return tx.Reservations().UpdateStatus(ctx, tx.DB(), res.ID(), res.Status(), res.HoldDeadline())
}

func applyExtensionSuccess(ctx context.Context, tx shared.Tx, extensionID uuid.UUID, now time.Time) error {
	extSnap, err := tx.Extensions().FindByIDForUpdate(ctx, tx.DB(), extensionID)
	if err != nil {
		return err
	}
	ext := extensionFromSnapshot(extSnap, now)
	if err := ext.MarkApplied(); err != nil {
		return err
	}

	resSnap, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), extSnap.ReservationID)
	if err != nil {
		return err
	}
	res, err := reservationFromSnapshot(resSnap, now)
	if err != nil {
		return err
	}
	if err := res.ExtendEnd(ext.NewEndsAt()); err != nil {
		return err
	}

	if err := tx.Extensions().UpdateStatus(ctx, tx.DB(), ext.ID(), ext.Status()); err != nil {
		return err
	}
	return tx.Reservations().ExtendEnd(ctx, tx.DB(), res.ID(), res.Period().End())
}

// applySettlementFailure releases what the failed payment was holding. A
// failed extension payment leaves the reservation untouched, a failed
// balance payment leaves the hold in place for a retry or the sweeper, and
// a failed booking payment cancels the reservation.
func applySettlementFailure(ctx context.Context, tx shared.Tx, intent *payment.Intent, now time.Time) error {
	if extID := intent.ExtensionID(); extID != nil {
		extSnap, err := tx.Extensions().FindByIDForUpdate(ctx, tx.DB(), *extID)
		if err != nil {
			return err
		}
		ext := extensionFromSnapshot(extSnap, now)
		if err := ext.MarkPaymentFailed(); err != nil {
			return err
		}
		return tx.Extensions().UpdateStatus(ctx, tx.DB(), ext.ID(), ext.Status())
	}

	if intent.Purpose() == payment.PurposeBalance {
		return nil
	}

	resID := intent.ReservationID()
	if resID == nil {
		return errs.New("payment intent links to neither a reservation nor an extension")
	}
	snap, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), *resID)
	if err != nil {
		return err
	}
	res, err := reservationFromSnapshot(snap, now)
	if err != nil {
		return err
	}
	if err := res.Cancel(); err != nil {
		// Confirmed reservations keep their window; a hold the sweeper got
		// to first stays cancelled.
		return nil
	}
	return tx.Reservations().UpdateStatus(ctx, tx.DB(), res.ID(), res.Status(), res.HoldDeadline())
}

// reservationFromSnapshot rebuilds the aggregate so status transitions run
// through the domain rules rather than raw column writes. The timestamps
// are not written back, so the current instant stands in for both.
func reservationFromSnapshot(snap *shared.ReservationSnapshot, at time.Time) (*reservation.Reservation, error) {
	period, err := reservation.NewPeriod(snap.StartsAt, snap.EndsAt)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has an invalid period")
	}
	quote := reservation.ReconstructQuote(snap.SubtotalCents, snap.DiscountCents, snap.ServiceChargeCents, snap.TotalCents)
	return reservation.ReconstructReservation(
		snap.ID, snap.VehicleID, snap.UserID, period,
		reservation.Status(snap.Status), quote,
		snap.PromoCodeID, snap.HoldDeadline, at, at,
	), nil
}

func extensionFromSnapshot(snap *shared.ExtensionSnapshot, at time.Time) *extension.Extension {
	return extension.ReconstructExtension(
		snap.ID, snap.ReservationID, snap.UserID,
		snap.AddedHours, snap.NewEndsAt, snap.PriceCents,
		extension.Status(snap.Status), snap.PaymentIntentID, at, at,
	)
}
