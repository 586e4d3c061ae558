//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/usecase/queries"
	"fleetbook/tests/common/builder"
	queriesmock "fleetbook/tests/mock/queries"
	sharedmock "fleetbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	readStore *queriesmock.MockVehicleReadStore
	clk       *clock.MockClock
	q         queries.VehicleQueries
}

func (s *VehicleQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.readStore = queriesmock.NewMockVehicleReadStore(s.ctrl)

	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.Querier) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()

	s.clk = clock.NewMockClock(time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC))
	s.q = queries.NewVehicleQueries(s.uow, s.readStore, s.clk)
}

func (s *VehicleQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestVehicleQueriesSuite(t *testing.T) {
	suite.Run(t, new(VehicleQueriesTestSuite))
}

func (s *VehicleQueriesTestSuite) TestList() {
	items := []*queries.VehicleListItem{
		builder.NewVehicleBuilder().WithName("Compact Sedan").BuildListItem(),
		builder.NewVehicleBuilder().WithName("Cargo Van").BuildListItem(),
	}
	s.readStore.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(items, nil)

	got, err := s.q.List(context.Background())
	s.NoError(err)
	s.Len(got, 2)
	s.Equal("Compact Sedan", got[0].Name)
}

func (s *VehicleQueriesTestSuite) TestAvailable() {
	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	s.Run("passes the window and the current instant to the store", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		items := []*queries.VehicleListItem{builder.NewVehicleBuilder().BuildListItem()}

		s.readStore.EXPECT().
			FindAvailable(gomock.Any(), gomock.Any(), start, end, s.clk.Now(), ids).
			Return(items, nil)

		got, err := s.q.Available(context.Background(), start, end, ids)
		s.NoError(err)
		s.Len(got, 1)
	})

	s.Run("error: end before start", func() {
		_, err := s.q.Available(context.Background(), end, start, nil)
		s.ErrorIs(err, queries.ErrInvalidRange)
	})

	s.Run("error: zero-length window", func() {
		_, err := s.q.Available(context.Background(), start, start, nil)
		s.ErrorIs(err, queries.ErrInvalidRange)
	})
}
