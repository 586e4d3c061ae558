//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"
	"fleetbook/tests/common/builder"
	queriesmock "fleetbook/tests/mock/queries"
	sharedmock "fleetbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	readStore *queriesmock.MockReservationReadStore
	q         queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.readStore = queriesmock.NewMockReservationReadStore(s.ctrl)

	s.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.Querier) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.Querier) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()

	s.q = queries.NewReservationQueries(s.uow, s.readStore)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	owner := uuid.New()
	view := builder.NewReservationBuilder().WithUserID(owner).BuildViewQuery()

	s.Run("owner sees the view with history attached", func() {
		payments := []queries.PaymentItem{{ID: uuid.New(), Purpose: "booking", AmountCents: 42000, Method: "card", Status: "success"}}
		extensions := []queries.ExtensionItem{{ID: uuid.New(), AddedHours: 24, PriceCents: 200000, Status: "applied"}}

		s.readStore.EXPECT().FindViewByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil)
		s.readStore.EXPECT().FindPaymentsByReservation(gomock.Any(), gomock.Any(), view.ID).Return(payments, nil)
		s.readStore.EXPECT().FindExtensionsByReservation(gomock.Any(), gomock.Any(), view.ID).Return(extensions, nil)

		got, err := s.q.GetByID(context.Background(), shared.Actor{ID: owner}, view.ID)
		s.NoError(err)
		s.Len(got.Payments, 1)
		s.Len(got.Extensions, 1)
	})

	s.Run("admin sees anyone's reservation", func() {
		s.readStore.EXPECT().FindViewByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil)
		s.readStore.EXPECT().FindPaymentsByReservation(gomock.Any(), gomock.Any(), view.ID).Return(nil, nil)
		s.readStore.EXPECT().FindExtensionsByReservation(gomock.Any(), gomock.Any(), view.ID).Return(nil, nil)

		_, err := s.q.GetByID(context.Background(), shared.Actor{ID: uuid.New(), IsAdmin: true}, view.ID)
		s.NoError(err)
	})

	s.Run("error: someone else's reservation is hidden", func() {
		s.readStore.EXPECT().FindViewByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil)
		s.readStore.EXPECT().FindPaymentsByReservation(gomock.Any(), gomock.Any(), view.ID).Return(nil, nil)
		s.readStore.EXPECT().FindExtensionsByReservation(gomock.Any(), gomock.Any(), view.ID).Return(nil, nil)

		_, err := s.q.GetByID(context.Background(), shared.Actor{ID: uuid.New()}, view.ID)
		s.ErrorIs(err, queries.ErrReservationAccess)
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.readStore.EXPECT().FindViewByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := s.q.GetByID(context.Background(), shared.Actor{ID: owner}, id)
		s.ErrorIs(err, queries.ErrReservationNotFound)
	})
}

func (s *ReservationQueriesTestSuite) TestListByUser() {
	owner := uuid.New()
	actor := shared.Actor{ID: owner}

	makeItems := func(n int) []*queries.ReservationListItem {
		items := make([]*queries.ReservationListItem, 0, n)
		base := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
		for i := range n {
			item := builder.NewReservationBuilder().WithUserID(owner).BuildListItem()
			item.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
			items = append(items, item)
		}
		return items
	}

	s.Run("first page fetches one extra row to detect more", func() {
		items := makeItems(4)
		s.readStore.EXPECT().
			FindByUserFirstPage(gomock.Any(), gomock.Any(), owner, int32(4)).
			Return(items, nil)

		got, next, err := s.q.ListByUser(context.Background(), actor, owner, nil, 3)
		s.NoError(err)
		s.Len(got, 3)
		s.Require().NotNil(next)

		at, id, derr := queries.DecodeAfterCursor(next.After)
		s.NoError(derr)
		s.Equal(items[2].ID, id)
		s.True(at.Equal(items[2].CreatedAt))
	})

	s.Run("short page returns no cursor", func() {
		items := makeItems(2)
		s.readStore.EXPECT().
			FindByUserFirstPage(gomock.Any(), gomock.Any(), owner, int32(4)).
			Return(items, nil)

		got, next, err := s.q.ListByUser(context.Background(), actor, owner, nil, 3)
		s.NoError(err)
		s.Len(got, 2)
		s.Nil(next)
	})

	s.Run("cursor resumes after the encoded row", func() {
		lastAt := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastAt, lastID)}

		s.readStore.EXPECT().
			FindByUserKeyset(gomock.Any(), gomock.Any(), owner, gomock.Any(), lastID, int32(21)).
			DoAndReturn(func(_ context.Context, _ db.Querier, _ uuid.UUID, at time.Time, _ uuid.UUID, _ int32) ([]*queries.ReservationListItem, error) {
				s.True(at.Equal(lastAt))
				return makeItems(1), nil
			})

		got, next, err := s.q.ListByUser(context.Background(), actor, owner, cursor, 0)
		s.NoError(err)
		s.Len(got, 1)
		s.Nil(next)
	})

	s.Run("error: malformed cursor", func() {
		_, _, err := s.q.ListByUser(context.Background(), actor, owner, &queries.Cursor{After: "garbage"}, 3)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})

	s.Run("error: listing someone else's reservations", func() {
		_, _, err := s.q.ListByUser(context.Background(), actor, uuid.New(), nil, 3)
		s.ErrorIs(err, queries.ErrReservationAccess)
	})
}
