// Code generated by MockGen. DO NOT EDIT.
// Source: internal/usecase/commands/settlement.go
//
// Generated by this command:
//
//	mockgen -source=internal/usecase/commands/settlement.go -destination=tests/mock/commands/settlement_mock.go -package=mock_commands
//

// Package mock_commands is a generated GoMock package.
package mock_commands

import (
	context "context"
	reflect "reflect"

	commands "fleetbook/internal/usecase/commands"
	shared "fleetbook/internal/usecase/shared"
	gomock "go.uber.org/mock/gomock"
)

// MockPaymentCommands is a mock of PaymentCommands interface.
type MockPaymentCommands struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentCommandsMockRecorder
	isgomock struct{}
}

// MockPaymentCommandsMockRecorder is the mock recorder for MockPaymentCommands.
type MockPaymentCommandsMockRecorder struct {
	mock *MockPaymentCommands
}

// NewMockPaymentCommands creates a new mock instance.
func NewMockPaymentCommands(ctrl *gomock.Controller) *MockPaymentCommands {
	mock := &MockPaymentCommands{ctrl: ctrl}
	mock.recorder = &MockPaymentCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentCommands) EXPECT() *MockPaymentCommandsMockRecorder {
	return m.recorder
}

// SettlePayment mocks base method.
func (m *MockPaymentCommands) SettlePayment(ctx context.Context, actor shared.Actor, req commands.SettlePaymentRequest) (*commands.SettlePaymentResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SettlePayment", ctx, actor, req)
	ret0, _ := ret[0].(*commands.SettlePaymentResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SettlePayment indicates an expected call of SettlePayment.
func (mr *MockPaymentCommandsMockRecorder) SettlePayment(ctx, actor, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SettlePayment", reflect.TypeOf((*MockPaymentCommands)(nil).SettlePayment), ctx, actor, req)
}

// SweepExpiredHolds mocks base method.
func (m *MockPaymentCommands) SweepExpiredHolds(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SweepExpiredHolds", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SweepExpiredHolds indicates an expected call of SweepExpiredHolds.
func (mr *MockPaymentCommandsMockRecorder) SweepExpiredHolds(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SweepExpiredHolds", reflect.TypeOf((*MockPaymentCommands)(nil).SweepExpiredHolds), ctx)
}
