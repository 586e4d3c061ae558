//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fleetbook/internal/domain/extension"
	"fleetbook/internal/domain/payment"
	"fleetbook/internal/domain/reservation"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/shared"
	"fleetbook/tests/common/builder"
	sharedmock "fleetbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	reservations *sharedmock.MockReservationRepository
	promos       *sharedmock.MockPromoRepository
	payments     *sharedmock.MockPaymentRepository
	extensions   *sharedmock.MockExtensionRepository
	clk          *clock.MockClock
	uc           commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.promos = sharedmock.NewMockPromoRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.extensions = sharedmock.NewMockExtensionRepository(s.ctrl)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Promos().Return(s.promos).AnyTimes()
	s.tx.EXPECT().Payments().Return(s.payments).AnyTimes()
	s.tx.EXPECT().Extensions().Return(s.extensions).AnyTimes()
	s.tx.EXPECT().DB().Return(db.Querier(nil)).AnyTimes()

	s.clk = clock.NewMockClock(time.Date(2026, 6, 30, 9, 0, 0, 0, time.UTC))
	s.uc = commands.NewPaymentUseCase(s.uow, s.clk)
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) actorFor(userID uuid.UUID) shared.Actor {
	return shared.Actor{ID: userID}
}

func (s *PaymentCommandsTestSuite) expectMarkSettled(intentID uuid.UUID, status payment.Status) *gomock.Call {
	return s.payments.EXPECT().
		MarkSettled(gomock.Any(), gomock.Any(), intentID, status, "txn-1", s.clk.Now()).
		Return(true, nil)
}

func (s *PaymentCommandsTestSuite) TestSettlePayment() {
	userID := uuid.New()

	s.Run("success: full booking payment confirms the reservation", func() {
		rb := builder.NewReservationBuilder().WithUserID(userID)
		rsnap := rb.BuildSnapshot()
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithReservationID(rsnap.ID).
			WithAmountCents(rsnap.TotalCents).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), isnap.ID).Return(isnap, nil)
		s.expectMarkSettled(isnap.ID, payment.StatusSuccess)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.reservations.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), rsnap.ID, reservation.StatusConfirmed, nil).
			Return(nil)

		result, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
		s.False(result.AlreadySettled)
		s.Equal("success", result.Status)
	})

	s.Run("success: deposit-sized payment parks the reservation on hold", func() {
		rsnap := builder.NewReservationBuilder().WithUserID(userID).BuildSnapshot()
		deposit := int64(float64(rsnap.TotalCents) * payment.HoldRatio)
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithReservationID(rsnap.ID).
			WithAmountCents(deposit).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), isnap.ID).Return(isnap, nil)
		s.expectMarkSettled(isnap.ID, payment.StatusSuccess)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(rsnap, nil)

		wantDeadline := s.clk.Now().Add(payment.HoldDuration)
		s.reservations.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), rsnap.ID, reservation.StatusHold, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Querier, _ uuid.UUID, _ reservation.Status, deadline *time.Time) error {
				s.Require().NotNil(deadline)
				s.True(deadline.Equal(wantDeadline))
				return nil
			})

		result, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
		s.Equal("success", result.Status)
	})

	s.Run("success: first settlement out of pending_payment charges the promo", func() {
		psnap := builder.NewPromoBuilder().BuildSnapshot()
		rsnap := builder.NewReservationBuilder().
			WithUserID(userID).
			WithPromoID(psnap.ID).
			WithFlatOff(50000).
			BuildSnapshot()
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithReservationID(rsnap.ID).
			WithAmountCents(rsnap.TotalCents).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), isnap.ID).Return(isnap, nil)
		s.expectMarkSettled(isnap.ID, payment.StatusSuccess)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.promos.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), psnap.ID).Return(psnap, nil)
		s.promos.EXPECT().RecordUse(gomock.Any(), gomock.Any(), psnap.ID, s.clk.Now()).Return(nil)
		s.reservations.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), rsnap.ID, reservation.StatusConfirmed, nil).
			Return(nil)

		_, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
	})

	s.Run("success: balance settlement leaves the promo counter alone", func() {
		promoID := uuid.New()
		deadline := s.clk.Now().Add(12 * time.Hour)
		rsnap := builder.NewReservationBuilder().
			WithUserID(userID).
			WithStatus(reservation.StatusHold).
			WithHoldDeadline(deadline).
			WithPromoID(promoID).
			BuildSnapshot()
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithReservationID(rsnap.ID).
			WithPurpose(payment.PurposeBalance).
			WithAmountCents(rsnap.TotalCents * 9 / 10).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), isnap.ID).Return(isnap, nil)
		s.expectMarkSettled(isnap.ID, payment.StatusSuccess)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(rsnap, nil)
		// No RecordUse expectation: charging again here would double-count.
		s.reservations.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), rsnap.ID, reservation.StatusConfirmed, nil).
			Return(nil)

		_, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
	})

	s.Run("success: extension settlement pushes the reservation end", func() {
		rsnap := builder.NewReservationBuilder().
			WithUserID(userID).
			WithStatus(reservation.StatusConfirmed).
			BuildSnapshot()
		eb := builder.NewExtensionBuilder().
			WithReservationID(rsnap.ID).
			WithUserID(userID).
			WithCurrentEnd(rsnap.EndsAt).
			WithAddedHours(36)
		esnap := eb.BuildSnapshot()
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithExtensionID(esnap.ID).
			WithPurpose(payment.PurposeExtension).
			WithAmountCents(esnap.PriceCents).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), isnap.ID).Return(isnap, nil)
		s.expectMarkSettled(isnap.ID, payment.StatusSuccess)
		s.extensions.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), esnap.ID).Return(esnap, nil)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.extensions.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), esnap.ID, extension.StatusApplied).
			Return(nil)
		s.reservations.EXPECT().
			ExtendEnd(gomock.Any(), gomock.Any(), rsnap.ID, esnap.NewEndsAt).
			Return(nil)

		_, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
	})

	s.Run("failure: failed booking payment cancels the reservation", func() {
		rsnap := builder.NewReservationBuilder().WithUserID(userID).BuildSnapshot()
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithReservationID(rsnap.ID).
			WithAmountCents(rsnap.TotalCents).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), isnap.ID).Return(isnap, nil)
		s.expectMarkSettled(isnap.ID, payment.StatusFailed)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.reservations.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), rsnap.ID, reservation.StatusCancelled, nil).
			Return(nil)

		result, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeFailure,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
		s.Equal("failed", result.Status)
	})

	s.Run("failure: failed balance payment keeps the hold for a retry", func() {
		deadline := s.clk.Now().Add(12 * time.Hour)
		rsnap := builder.NewReservationBuilder().
			WithUserID(userID).
			WithStatus(reservation.StatusHold).
			WithHoldDeadline(deadline).
			BuildSnapshot()
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithReservationID(rsnap.ID).
			WithPurpose(payment.PurposeBalance).
			WithAmountCents(rsnap.TotalCents * 9 / 10).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), isnap.ID).Return(isnap, nil)
		s.expectMarkSettled(isnap.ID, payment.StatusFailed)
		// No reservation lookup or update: the hold stands until paid or swept.

		result, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeFailure,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
		s.Equal("failed", result.Status)
	})

	s.Run("failure: failed extension payment marks only the extension", func() {
		esnap := builder.NewExtensionBuilder().WithUserID(userID).BuildSnapshot()
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithExtensionID(esnap.ID).
			WithPurpose(payment.PurposeExtension).
			WithAmountCents(esnap.PriceCents).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), isnap.ID).Return(isnap, nil)
		s.expectMarkSettled(isnap.ID, payment.StatusFailed)
		s.extensions.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), esnap.ID).Return(esnap, nil)
		s.extensions.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), esnap.ID, extension.StatusPaymentFailed).
			Return(nil)

		_, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeFailure,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
	})

	s.Run("idempotent: settled intent short-circuits before any lock", func() {
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithStatus(payment.StatusSuccess).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)

		result, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-2",
		})
		s.NoError(err)
		s.True(result.AlreadySettled)
		s.Equal("success", result.Status)
	})

	s.Run("idempotent: losing the settle race reports already settled", func() {
		rsnap := builder.NewReservationBuilder().WithUserID(userID).BuildSnapshot()
		isnap := builder.NewPaymentIntentBuilder().
			WithUserID(userID).
			WithReservationID(rsnap.ID).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), isnap.ID).Return(isnap, nil)
		s.payments.EXPECT().
			MarkSettled(gomock.Any(), gomock.Any(), isnap.ID, payment.StatusSuccess, "txn-1", s.clk.Now()).
			Return(false, nil)

		result, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
		s.True(result.AlreadySettled)
	})

	s.Run("error: unknown intent", func() {
		id := uuid.New()
		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.uc.SettlePayment(context.Background(), s.actorFor(userID), commands.SettlePaymentRequest{
			IntentID:       id,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-1",
		})
		s.ErrorIs(err, commands.ErrPaymentNotFound)
	})

	s.Run("error: settling someone else's intent is forbidden", func() {
		isnap := builder.NewPaymentIntentBuilder().BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)

		_, err := s.uc.SettlePayment(context.Background(), s.actorFor(uuid.New()), commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-1",
		})
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("admin can settle any intent", func() {
		rsnap := builder.NewReservationBuilder().BuildSnapshot()
		isnap := builder.NewPaymentIntentBuilder().
			WithReservationID(rsnap.ID).
			WithStatus(payment.StatusSuccess).
			BuildSnapshot()

		s.reads.EXPECT().PaymentIntentByID(gomock.Any(), isnap.ID).Return(isnap, nil)

		result, err := s.uc.SettlePayment(context.Background(), shared.Actor{ID: uuid.New(), IsAdmin: true}, commands.SettlePaymentRequest{
			IntentID:       isnap.ID,
			Outcome:        payment.OutcomeSuccess,
			ExternalTxnRef: "txn-1",
		})
		s.NoError(err)
		s.True(result.AlreadySettled)
	})
}

func (s *PaymentCommandsTestSuite) TestSweepExpiredHolds() {
	s.Run("reports how many holds were released", func() {
		s.reservations.EXPECT().
			CancelExpiredHolds(gomock.Any(), gomock.Any(), s.clk.Now()).
			Return(int64(3), nil)

		count, err := s.uc.SweepExpiredHolds(context.Background())
		s.NoError(err)
		s.Equal(int64(3), count)
	})
}
