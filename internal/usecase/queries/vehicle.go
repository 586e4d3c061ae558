package queries

import (
	"context"
	"time"

	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidRange = errs.New("window end must be after start")

type VehicleReadStore interface {
	FindAll(ctx context.Context, db db.Querier) ([]*VehicleListItem, error)
	FindAvailable(ctx context.Context, db db.Querier, start, end, now time.Time, vehicleIDs []uuid.UUID) ([]*VehicleListItem, error)
}

type VehicleQueries interface {
	List(ctx context.Context) ([]*VehicleListItem, error)
	Available(ctx context.Context, start, end time.Time, vehicleIDs []uuid.UUID) ([]*VehicleListItem, error)
}

type vehicleQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore VehicleReadStore
	clock     clock.Clock
}

func NewVehicleQueries(uow shared.UnitOfWork, readStore VehicleReadStore, clock clock.Clock) VehicleQueries {
	return &vehicleQueriesImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clock,
	}
}

func (q *vehicleQueriesImpl) List(ctx context.Context) ([]*VehicleListItem, error) {
	var items []*VehicleListItem
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.Querier) error {
		var ferr error
		items, ferr = q.readStore.FindAll(ctx, db)
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Available lists rentable vehicles with no blocking reservation inside
// [start, end). Only confirmed reservations and holds whose deadline has not
// passed block the public view; a pending_payment row does not, so this is
// advisory and the booking transaction re-checks with the stricter predicate.
func (q *vehicleQueriesImpl) Available(ctx context.Context, start, end time.Time, vehicleIDs []uuid.UUID) ([]*VehicleListItem, error) {
	if !end.After(start) {
		return nil, ErrInvalidRange
	}

	now := q.clock.Now()
	var items []*VehicleListItem
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.Querier) error {
		var ferr error
		items, ferr = q.readStore.FindAvailable(ctx, db, start, end, now, vehicleIDs)
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
