// Code generated by MockGen. DO NOT EDIT.
// Source: internal/usecase/queries/promo.go
//
// Generated by this command:
//
//	mockgen -source=internal/usecase/queries/promo.go -destination=tests/mock/queries/promo_mock.go -package=mock_queries
//

// Package mock_queries is a generated GoMock package.
package mock_queries

import (
	context "context"
	reflect "reflect"

	db "fleetbook/internal/infra/db"
	queries "fleetbook/internal/usecase/queries"
	shared "fleetbook/internal/usecase/shared"
	gomock "go.uber.org/mock/gomock"
)

// MockPromoReadStore is a mock of PromoReadStore interface.
type MockPromoReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockPromoReadStoreMockRecorder
	isgomock struct{}
}

// MockPromoReadStoreMockRecorder is the mock recorder for MockPromoReadStore.
type MockPromoReadStoreMockRecorder struct {
	mock *MockPromoReadStore
}

// NewMockPromoReadStore creates a new mock instance.
func NewMockPromoReadStore(ctrl *gomock.Controller) *MockPromoReadStore {
	mock := &MockPromoReadStore{ctrl: ctrl}
	mock.recorder = &MockPromoReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPromoReadStore) EXPECT() *MockPromoReadStoreMockRecorder {
	return m.recorder
}

// FindByCode mocks base method.
func (m *MockPromoReadStore) FindByCode(ctx context.Context, db db.Querier, code string) (*shared.PromoSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByCode", ctx, db, code)
	ret0, _ := ret[0].(*shared.PromoSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByCode indicates an expected call of FindByCode.
func (mr *MockPromoReadStoreMockRecorder) FindByCode(ctx, db, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByCode", reflect.TypeOf((*MockPromoReadStore)(nil).FindByCode), ctx, db, code)
}

// MockPromoQueries is a mock of PromoQueries interface.
type MockPromoQueries struct {
	ctrl     *gomock.Controller
	recorder *MockPromoQueriesMockRecorder
	isgomock struct{}
}

// MockPromoQueriesMockRecorder is the mock recorder for MockPromoQueries.
type MockPromoQueriesMockRecorder struct {
	mock *MockPromoQueries
}

// NewMockPromoQueries creates a new mock instance.
func NewMockPromoQueries(ctrl *gomock.Controller) *MockPromoQueries {
	mock := &MockPromoQueries{ctrl: ctrl}
	mock.recorder = &MockPromoQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPromoQueries) EXPECT() *MockPromoQueriesMockRecorder {
	return m.recorder
}

// Validate mocks base method.
func (m *MockPromoQueries) Validate(ctx context.Context, code string) (*queries.PromoValidationView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Validate", ctx, code)
	ret0, _ := ret[0].(*queries.PromoValidationView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Validate indicates an expected call of Validate.
func (mr *MockPromoQueriesMockRecorder) Validate(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockPromoQueries)(nil).Validate), ctx, code)
}
