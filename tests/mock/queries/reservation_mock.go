// Code generated by MockGen. DO NOT EDIT.
// Source: internal/usecase/queries/reservation.go
//
// Generated by this command:
//
//	mockgen -source=internal/usecase/queries/reservation.go -destination=tests/mock/queries/reservation_mock.go -package=mock_queries
//

// Package mock_queries is a generated GoMock package.
package mock_queries

import (
	context "context"
	reflect "reflect"
	time "time"

	db "fleetbook/internal/infra/db"
	queries "fleetbook/internal/usecase/queries"
	shared "fleetbook/internal/usecase/shared"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockReservationReadStore is a mock of ReservationReadStore interface.
type MockReservationReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockReservationReadStoreMockRecorder
	isgomock struct{}
}

// MockReservationReadStoreMockRecorder is the mock recorder for MockReservationReadStore.
type MockReservationReadStoreMockRecorder struct {
	mock *MockReservationReadStore
}

// NewMockReservationReadStore creates a new mock instance.
func NewMockReservationReadStore(ctrl *gomock.Controller) *MockReservationReadStore {
	mock := &MockReservationReadStore{ctrl: ctrl}
	mock.recorder = &MockReservationReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationReadStore) EXPECT() *MockReservationReadStoreMockRecorder {
	return m.recorder
}

// FindByUserFirstPage mocks base method.
func (m *MockReservationReadStore) FindByUserFirstPage(ctx context.Context, db db.Querier, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByUserFirstPage", ctx, db, userID, limit)
	ret0, _ := ret[0].([]*queries.ReservationListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByUserFirstPage indicates an expected call of FindByUserFirstPage.
func (mr *MockReservationReadStoreMockRecorder) FindByUserFirstPage(ctx, db, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByUserFirstPage", reflect.TypeOf((*MockReservationReadStore)(nil).FindByUserFirstPage), ctx, db, userID, limit)
}

// FindByUserKeyset mocks base method.
func (m *MockReservationReadStore) FindByUserKeyset(ctx context.Context, db db.Querier, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByUserKeyset", ctx, db, userID, lastCreatedAt, lastID, limit)
	ret0, _ := ret[0].([]*queries.ReservationListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByUserKeyset indicates an expected call of FindByUserKeyset.
func (mr *MockReservationReadStoreMockRecorder) FindByUserKeyset(ctx, db, userID, lastCreatedAt, lastID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByUserKeyset", reflect.TypeOf((*MockReservationReadStore)(nil).FindByUserKeyset), ctx, db, userID, lastCreatedAt, lastID, limit)
}

// FindExtensionsByReservation mocks base method.
func (m *MockReservationReadStore) FindExtensionsByReservation(ctx context.Context, db db.Querier, reservationID uuid.UUID) ([]queries.ExtensionItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindExtensionsByReservation", ctx, db, reservationID)
	ret0, _ := ret[0].([]queries.ExtensionItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindExtensionsByReservation indicates an expected call of FindExtensionsByReservation.
func (mr *MockReservationReadStoreMockRecorder) FindExtensionsByReservation(ctx, db, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindExtensionsByReservation", reflect.TypeOf((*MockReservationReadStore)(nil).FindExtensionsByReservation), ctx, db, reservationID)
}

// FindPaymentsByReservation mocks base method.
func (m *MockReservationReadStore) FindPaymentsByReservation(ctx context.Context, db db.Querier, reservationID uuid.UUID) ([]queries.PaymentItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindPaymentsByReservation", ctx, db, reservationID)
	ret0, _ := ret[0].([]queries.PaymentItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindPaymentsByReservation indicates an expected call of FindPaymentsByReservation.
func (mr *MockReservationReadStoreMockRecorder) FindPaymentsByReservation(ctx, db, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindPaymentsByReservation", reflect.TypeOf((*MockReservationReadStore)(nil).FindPaymentsByReservation), ctx, db, reservationID)
}

// FindViewByID mocks base method.
func (m *MockReservationReadStore) FindViewByID(ctx context.Context, db db.Querier, id uuid.UUID) (*queries.ReservationView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindViewByID", ctx, db, id)
	ret0, _ := ret[0].(*queries.ReservationView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindViewByID indicates an expected call of FindViewByID.
func (mr *MockReservationReadStoreMockRecorder) FindViewByID(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindViewByID", reflect.TypeOf((*MockReservationReadStore)(nil).FindViewByID), ctx, db, id)
}

// MockReservationQueries is a mock of ReservationQueries interface.
type MockReservationQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReservationQueriesMockRecorder
	isgomock struct{}
}

// MockReservationQueriesMockRecorder is the mock recorder for MockReservationQueries.
type MockReservationQueriesMockRecorder struct {
	mock *MockReservationQueries
}

// NewMockReservationQueries creates a new mock instance.
func NewMockReservationQueries(ctrl *gomock.Controller) *MockReservationQueries {
	mock := &MockReservationQueries{ctrl: ctrl}
	mock.recorder = &MockReservationQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationQueries) EXPECT() *MockReservationQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockReservationQueries) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, actor, id)
	ret0, _ := ret[0].(*queries.ReservationView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockReservationQueriesMockRecorder) GetByID(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockReservationQueries)(nil).GetByID), ctx, actor, id)
}

// ListByUser mocks base method.
func (m *MockReservationQueries) ListByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, cursor *queries.Cursor, limit int) ([]*queries.ReservationListItem, *queries.Cursor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", ctx, actor, userID, cursor, limit)
	ret0, _ := ret[0].([]*queries.ReservationListItem)
	ret1, _ := ret[1].(*queries.Cursor)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockReservationQueriesMockRecorder) ListByUser(ctx, actor, userID, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockReservationQueries)(nil).ListByUser), ctx, actor, userID, cursor, limit)
}
