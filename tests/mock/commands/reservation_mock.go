// Code generated by MockGen. DO NOT EDIT.
// Source: internal/usecase/commands/reservation.go
//
// Generated by this command:
//
//	mockgen -source=internal/usecase/commands/reservation.go -destination=tests/mock/commands/reservation_mock.go -package=mock_commands
//

// Package mock_commands is a generated GoMock package.
package mock_commands

import (
	context "context"
	reflect "reflect"

	commands "fleetbook/internal/usecase/commands"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockReservationCommands is a mock of ReservationCommands interface.
type MockReservationCommands struct {
	ctrl     *gomock.Controller
	recorder *MockReservationCommandsMockRecorder
	isgomock struct{}
}

// MockReservationCommandsMockRecorder is the mock recorder for MockReservationCommands.
type MockReservationCommandsMockRecorder struct {
	mock *MockReservationCommands
}

// NewMockReservationCommands creates a new mock instance.
func NewMockReservationCommands(ctrl *gomock.Controller) *MockReservationCommands {
	mock := &MockReservationCommands{ctrl: ctrl}
	mock.recorder = &MockReservationCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationCommands) EXPECT() *MockReservationCommandsMockRecorder {
	return m.recorder
}

// CreateBalancePayment mocks base method.
func (m *MockReservationCommands) CreateBalancePayment(ctx context.Context, userID, reservationID uuid.UUID, req commands.BalancePaymentRequest) (*commands.BalancePaymentResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBalancePayment", ctx, userID, reservationID, req)
	ret0, _ := ret[0].(*commands.BalancePaymentResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateBalancePayment indicates an expected call of CreateBalancePayment.
func (mr *MockReservationCommandsMockRecorder) CreateBalancePayment(ctx, userID, reservationID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBalancePayment", reflect.TypeOf((*MockReservationCommands)(nil).CreateBalancePayment), ctx, userID, reservationID, req)
}

// CreateReservation mocks base method.
func (m *MockReservationCommands) CreateReservation(ctx context.Context, userID uuid.UUID, req commands.CreateReservationRequest) (*commands.CreateReservationResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateReservation", ctx, userID, req)
	ret0, _ := ret[0].(*commands.CreateReservationResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateReservation indicates an expected call of CreateReservation.
func (mr *MockReservationCommandsMockRecorder) CreateReservation(ctx, userID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateReservation", reflect.TypeOf((*MockReservationCommands)(nil).CreateReservation), ctx, userID, req)
}
