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

type ExtensionCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	vehicles     *sharedmock.MockVehicleRepository
	reservations *sharedmock.MockReservationRepository
	payments     *sharedmock.MockPaymentRepository
	extensions   *sharedmock.MockExtensionRepository
	clk          *clock.MockClock
	uc           commands.ExtensionCommands
}

func (s *ExtensionCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.vehicles = sharedmock.NewMockVehicleRepository(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.extensions = sharedmock.NewMockExtensionRepository(s.ctrl)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()
	s.tx.EXPECT().Vehicles().Return(s.vehicles).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Payments().Return(s.payments).AnyTimes()
	s.tx.EXPECT().Extensions().Return(s.extensions).AnyTimes()
	s.tx.EXPECT().DB().Return(db.Querier(nil)).AnyTimes()

	s.clk = clock.NewMockClock(time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC))
	s.uc = commands.NewExtensionUseCase(s.uow, s.clk)
}

func (s *ExtensionCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExtensionCommandsSuite(t *testing.T) {
	suite.Run(t, new(ExtensionCommandsTestSuite))
}

func (s *ExtensionCommandsTestSuite) TestRequestExtension() {
	userID := uuid.New()
	vsnap := builder.NewVehicleBuilder().WithPricePerDayCents(200000).BuildSnapshot()
	rsnap := builder.NewReservationBuilder().
		WithUserID(userID).
		WithVehicleID(vsnap.ID).
		WithStatus(reservation.StatusConfirmed).
		BuildSnapshot()
	req := commands.ExtensionRequest{AddedHours: 36, Method: "card"}

	s.Run("success: 36 hours at the current daily rate", func() {
		extID := uuid.New()
		intentID := uuid.New()
		wantNewEnd := rsnap.EndsAt.Add(36 * time.Hour)

		s.reads.EXPECT().ReservationByID(gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.extensions.EXPECT().ExistsPendingForReservation(gomock.Any(), gomock.Any(), rsnap.ID).Return(false, nil)
		s.vehicles.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), vsnap.ID).Return(vsnap, nil)

		// Only the delta window is checked, with the caller's own row excluded.
		s.reservations.EXPECT().
			HasBlockingOverlap(gomock.Any(), gomock.Any(), vsnap.ID, rsnap.EndsAt, wantNewEnd, s.clk.Now(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Querier, _ uuid.UUID, _, _, _ time.Time, excludeID *uuid.UUID) (bool, error) {
				s.Require().NotNil(excludeID)
				s.Equal(rsnap.ID, *excludeID)
				return false, nil
			})

		var createdExt *extension.Extension
		s.extensions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Querier, ext *extension.Extension) (uuid.UUID, error) {
				createdExt = ext
				return extID, nil
			})
		var createdIntent *payment.Intent
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Querier, intent *payment.Intent) (uuid.UUID, error) {
				createdIntent = intent
				return intentID, nil
			})
		s.extensions.EXPECT().SetPaymentIntent(gomock.Any(), gomock.Any(), extID, intentID).Return(nil)

		result, err := s.uc.RequestExtension(context.Background(), userID, rsnap.ID, req)
		s.NoError(err)
		s.Equal(extID, result.ExtensionID)
		s.Equal(intentID, result.PaymentIntentID)
		s.True(result.NewEndsAt.Equal(wantNewEnd))
		// 36h at 2000.00/day prorates to a day and a half.
		s.Equal(int64(300000), result.PriceCents)

		s.Equal(extension.StatusPendingPayment, createdExt.Status())
		s.Equal(payment.PurposeExtension, createdIntent.Purpose())
		s.Equal(int64(300000), createdIntent.AmountCents())
	})

	s.Run("error: hours not a multiple of twelve", func() {
		s.reads.EXPECT().ReservationByID(gomock.Any(), rsnap.ID).Return(rsnap, nil)

		_, err := s.uc.RequestExtension(context.Background(), userID, rsnap.ID, commands.ExtensionRequest{
			AddedHours: 7, Method: "card",
		})
		s.ErrorIs(err, extension.ErrInvalidDuration)
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.uc.RequestExtension(context.Background(), userID, id, req)
		s.ErrorIs(err, commands.ErrReservationNotFoundWrite)
	})

	s.Run("error: not the owner", func() {
		s.reads.EXPECT().ReservationByID(gomock.Any(), rsnap.ID).Return(rsnap, nil)

		_, err := s.uc.RequestExtension(context.Background(), uuid.New(), rsnap.ID, req)
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("error: only confirmed reservations extend", func() {
		held := *rsnap
		held.Status = string(reservation.StatusHold)

		s.reads.EXPECT().ReservationByID(gomock.Any(), rsnap.ID).Return(&held, nil)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(&held, nil)

		_, err := s.uc.RequestExtension(context.Background(), userID, rsnap.ID, req)
		s.ErrorIs(err, commands.ErrNotExtendable)
	})

	s.Run("error: rental already over", func() {
		ended := *rsnap
		ended.EndsAt = s.clk.Now().Add(-time.Hour)

		s.reads.EXPECT().ReservationByID(gomock.Any(), rsnap.ID).Return(&ended, nil)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(&ended, nil)

		_, err := s.uc.RequestExtension(context.Background(), userID, rsnap.ID, req)
		s.ErrorIs(err, commands.ErrAlreadyEnded)
	})

	s.Run("error: an extension is already awaiting payment", func() {
		s.reads.EXPECT().ReservationByID(gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.extensions.EXPECT().ExistsPendingForReservation(gomock.Any(), gomock.Any(), rsnap.ID).Return(true, nil)

		_, err := s.uc.RequestExtension(context.Background(), userID, rsnap.ID, req)
		s.ErrorIs(err, commands.ErrNotExtendable)
	})

	s.Run("error: the extra window is already booked", func() {
		s.reads.EXPECT().ReservationByID(gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsnap.ID).Return(rsnap, nil)
		s.extensions.EXPECT().ExistsPendingForReservation(gomock.Any(), gomock.Any(), rsnap.ID).Return(false, nil)
		s.vehicles.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), vsnap.ID).Return(vsnap, nil)
		s.reservations.EXPECT().
			HasBlockingOverlap(gomock.Any(), gomock.Any(), vsnap.ID, rsnap.EndsAt, rsnap.EndsAt.Add(36*time.Hour), s.clk.Now(), gomock.Any()).
			Return(true, nil)

		_, err := s.uc.RequestExtension(context.Background(), userID, rsnap.ID, req)
		s.ErrorIs(err, commands.ErrVehicleUnavailable)
	})
}
