package commands

import (
	"context"
	"time"

	"fleetbook/internal/domain/payment"
	"fleetbook/internal/domain/promo"
	"fleetbook/internal/domain/reservation"
	"fleetbook/internal/domain/vehicle"
	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound          = errs.New("vehicle not found")
	ErrVehicleUnavailable       = errs.New("vehicle unavailable for the requested window")
	ErrPromoInvalid             = errs.New("promo code not eligible")
	ErrReservationNotFoundWrite = errs.New("reservation not found")
	ErrForbidden                = errs.New("reservation not owned by user")
	ErrNotPayable               = errs.New("reservation has no payable balance")
)

type CreateReservationRequest struct {
	VehicleID     uuid.UUID
	StartsAt      time.Time
	EndsAt        time.Time
	PromoCodeID   *uuid.UUID
	PaymentAmount int64
	PaymentMethod string
}

type CreateReservationResult struct {
	ReservationID   uuid.UUID
	PaymentIntentID uuid.UUID
}

type BalancePaymentRequest struct {
	Method string
}

type BalancePaymentResult struct {
	PaymentIntentID uuid.UUID
	AmountCents     int64
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, req CreateReservationRequest) (*CreateReservationResult, error)
	CreateBalancePayment(ctx context.Context, userID uuid.UUID, reservationID uuid.UUID, req BalancePaymentRequest) (*BalancePaymentResult, error)
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, clock: clk}
}

// CreateReservation books a vehicle for [StartsAt, EndsAt) and opens the
// booking payment intent in the same transaction. The promo row is locked
// before the vehicle row on every path that touches both.
func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, userID uuid.UUID, req CreateReservationRequest) (*CreateReservationResult, error) {
	period, err := reservation.NewPeriod(req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, err
	}

	// Lock-free fast fail; the same checks run again under the row lock.
	vsnap, err := uc.uow.CommandReads().VehicleByID(ctx, req.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	if !rentable(vsnap.Status) {
		return nil, ErrVehicleNotFound
	}

	var result CreateReservationResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		var (
			promoID  *uuid.UUID
			discount *reservation.DiscountSpec
		)
		if req.PromoCodeID != nil {
			psnap, derr := tx.Promos().FindByIDForUpdate(ctx, tx.DB(), *req.PromoCodeID)
			if derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return errs.Mark(derr, ErrPromoInvalid)
				}
				return derr
			}
			if derr = checkPromoEligibility(psnap, now); derr != nil {
				return derr
			}
			promoID = &psnap.ID
			discount = &reservation.DiscountSpec{
				FlatOffCents: psnap.FlatOffCents,
				PercentOff:   psnap.PercentOff,
			}
		}

		locked, derr := tx.Vehicles().FindByIDForUpdate(ctx, tx.DB(), req.VehicleID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return derr
		}
		if !rentable(locked.Status) {
			return ErrVehicleNotFound
		}

		blocked, derr := tx.Reservations().HasBlockingOverlap(ctx, tx.DB(), req.VehicleID, period.Start(), period.End(), now, nil)
		if derr != nil {
			return derr
		}
		if blocked {
			return ErrVehicleUnavailable
		}

		quote := reservation.NewQuote(locked.PricePerDayCents, period, discount)
		res := reservation.NewReservation(req.VehicleID, userID, period, quote, promoID)

		resID, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			return derr
		}

		intent, derr := payment.NewBookingIntent(resID, userID, req.PaymentAmount, req.PaymentMethod)
		if derr != nil {
			return derr
		}
		intentID, derr := tx.Payments().Create(ctx, tx.DB(), intent)
		if derr != nil {
			return derr
		}

		result = CreateReservationResult{ReservationID: resID, PaymentIntentID: intentID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateBalancePayment opens the intent that pays off the remainder of a
// held reservation. Owner only; the amount is whatever the quote total still
// leaves uncovered by successful payments.
func (uc *reservationUseCaseImpl) CreateBalancePayment(ctx context.Context, userID uuid.UUID, reservationID uuid.UUID, req BalancePaymentRequest) (*BalancePaymentResult, error) {
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

	var result BalancePaymentResult
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
		if reservation.Status(res.Status) != reservation.StatusHold {
			return ErrNotPayable
		}
		if res.HoldDeadline == nil || !res.HoldDeadline.After(now) {
			return ErrNotPayable
		}

		pending, derr := tx.Payments().HasPendingForReservation(ctx, tx.DB(), reservationID)
		if derr != nil {
			return derr
		}
		if pending {
			return ErrNotPayable
		}

		paid, derr := tx.Payments().SumSucceededCentsByReservation(ctx, tx.DB(), reservationID)
		if derr != nil {
			return derr
		}
		remaining := res.TotalCents - paid
		if remaining <= 0 {
			return ErrNotPayable
		}

		intent, derr := payment.NewBalanceIntent(reservationID, userID, remaining, req.Method)
		if derr != nil {
			return derr
		}
		intentID, derr := tx.Payments().Create(ctx, tx.DB(), intent)
		if derr != nil {
			return derr
		}

		result = BalancePaymentResult{PaymentIntentID: intentID, AmountCents: remaining}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func rentable(status string) bool {
	s, err := vehicle.NewStatus(status)
	if err != nil {
		return false
	}
	return s.Rentable()
}

// checkPromoEligibility re-runs the advisory checks against the row the
// transaction just locked. Any failure surfaces as ErrPromoInvalid with the
// domain sentinel still reachable for reason extraction.
func checkPromoEligibility(snap *shared.PromoSnapshot, now time.Time) error {
	code, err := promo.NewCode(snap.Code)
	if err != nil {
		return errs.Mark(err, ErrPromoInvalid)
	}
	discount, err := promo.NewDiscount(snap.FlatOffCents, snap.PercentOff)
	if err != nil {
		return errs.Mark(err, ErrPromoInvalid)
	}

	pr := promo.ReconstructPromo(snap.ID, code, discount,
		snap.Active, snap.ValidFrom, snap.ValidTo,
		snap.UsageCap, snap.TimesUsed, snap.LastUsedAt, now, now)
	if err := pr.EligibilityAt(now); err != nil {
		return errs.Mark(err, ErrPromoInvalid)
	}
	return nil
}
