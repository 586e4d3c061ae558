// Code generated by MockGen. DO NOT EDIT.
// Source: internal/usecase/queries/vehicle.go
//
// Generated by this command:
//
//	mockgen -source=internal/usecase/queries/vehicle.go -destination=tests/mock/queries/vehicle_mock.go -package=mock_queries
//

// Package mock_queries is a generated GoMock package.
package mock_queries

import (
	context "context"
	reflect "reflect"
	time "time"

	db "fleetbook/internal/infra/db"
	queries "fleetbook/internal/usecase/queries"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockVehicleReadStore is a mock of VehicleReadStore interface.
type MockVehicleReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockVehicleReadStoreMockRecorder
	isgomock struct{}
}

// MockVehicleReadStoreMockRecorder is the mock recorder for MockVehicleReadStore.
type MockVehicleReadStoreMockRecorder struct {
	mock *MockVehicleReadStore
}

// NewMockVehicleReadStore creates a new mock instance.
func NewMockVehicleReadStore(ctrl *gomock.Controller) *MockVehicleReadStore {
	mock := &MockVehicleReadStore{ctrl: ctrl}
	mock.recorder = &MockVehicleReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVehicleReadStore) EXPECT() *MockVehicleReadStoreMockRecorder {
	return m.recorder
}

// FindAll mocks base method.
func (m *MockVehicleReadStore) FindAll(ctx context.Context, db db.Querier) ([]*queries.VehicleListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx, db)
	ret0, _ := ret[0].([]*queries.VehicleListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindAll indicates an expected call of FindAll.
func (mr *MockVehicleReadStoreMockRecorder) FindAll(ctx, db any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockVehicleReadStore)(nil).FindAll), ctx, db)
}

// FindAvailable mocks base method.
func (m *MockVehicleReadStore) FindAvailable(ctx context.Context, db db.Querier, start, end, now time.Time, vehicleIDs []uuid.UUID) ([]*queries.VehicleListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAvailable", ctx, db, start, end, now, vehicleIDs)
	ret0, _ := ret[0].([]*queries.VehicleListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindAvailable indicates an expected call of FindAvailable.
func (mr *MockVehicleReadStoreMockRecorder) FindAvailable(ctx, db, start, end, now, vehicleIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAvailable", reflect.TypeOf((*MockVehicleReadStore)(nil).FindAvailable), ctx, db, start, end, now, vehicleIDs)
}

// MockVehicleQueries is a mock of VehicleQueries interface.
type MockVehicleQueries struct {
	ctrl     *gomock.Controller
	recorder *MockVehicleQueriesMockRecorder
	isgomock struct{}
}

// MockVehicleQueriesMockRecorder is the mock recorder for MockVehicleQueries.
type MockVehicleQueriesMockRecorder struct {
	mock *MockVehicleQueries
}

// NewMockVehicleQueries creates a new mock instance.
func NewMockVehicleQueries(ctrl *gomock.Controller) *MockVehicleQueries {
	mock := &MockVehicleQueries{ctrl: ctrl}
	mock.recorder = &MockVehicleQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVehicleQueries) EXPECT() *MockVehicleQueriesMockRecorder {
	return m.recorder
}

// Available mocks base method.
func (m *MockVehicleQueries) Available(ctx context.Context, start, end time.Time, vehicleIDs []uuid.UUID) ([]*queries.VehicleListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Available", ctx, start, end, vehicleIDs)
	ret0, _ := ret[0].([]*queries.VehicleListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Available indicates an expected call of Available.
func (mr *MockVehicleQueriesMockRecorder) Available(ctx, start, end, vehicleIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Available", reflect.TypeOf((*MockVehicleQueries)(nil).Available), ctx, start, end, vehicleIDs)
}

// List mocks base method.
func (m *MockVehicleQueries) List(ctx context.Context) ([]*queries.VehicleListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*queries.VehicleListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockVehicleQueriesMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockVehicleQueries)(nil).List), ctx)
}
