package queries

import (
	"context"
	"time"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
	ErrInvalidCursor       = errs.New("invalid cursor")
)

type ReservationReadStore interface {
	FindViewByID(ctx context.Context, db db.Querier, id uuid.UUID) (*ReservationView, error)
	FindPaymentsByReservation(ctx context.Context, db db.Querier, reservationID uuid.UUID) ([]PaymentItem, error)
	FindExtensionsByReservation(ctx context.Context, db db.Querier, reservationID uuid.UUID) ([]ExtensionItem, error)
	FindByUserFirstPage(ctx context.Context, db db.Querier, userID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByUserKeyset(ctx context.Context, db db.Querier, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore ReservationReadStore
}

func NewReservationQueries(uow shared.UnitOfWork, readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

// GetByID loads the reservation head plus its payment and extension history
// inside one read-only transaction so the three reads agree on one snapshot.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.Querier) error {
		head, ferr := q.readStore.FindViewByID(ctx, db, id)
		if ferr != nil {
			return ferr
		}
		payments, ferr := q.readStore.FindPaymentsByReservation(ctx, db, id)
		if ferr != nil {
			return ferr
		}
		extensions, ferr := q.readStore.FindExtensionsByReservation(ctx, db, id)
		if ferr != nil {
			return ferr
		}
		head.Payments = payments
		head.Extensions = extensions
		view = head
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if !actor.CanAccess(view.UserID) {
		return nil, ErrReservationAccess
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if !actor.CanAccess(userID) {
		return nil, nil, ErrReservationAccess
	}

	limit = ValidateLimit(limit)

	var (
		hasCursor     bool
		lastCreatedAt time.Time
		lastID        uuid.UUID
	)
	if cursor != nil && cursor.After != "" {
		var derr error
		lastCreatedAt, lastID, derr = DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		hasCursor = true
	}

	var rows []*ReservationListItem
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.Querier) error {
		var ferr error
		if hasCursor {
			rows, ferr = q.readStore.FindByUserKeyset(ctx, db, userID, lastCreatedAt, lastID, int32(limit+1))
		} else {
			rows, ferr = q.readStore.FindByUserFirstPage(ctx, db, userID, int32(limit+1))
		}
		return ferr
	})
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
