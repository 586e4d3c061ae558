// Code generated by MockGen. DO NOT EDIT.
// Source: internal/usecase/commands/extension.go
//
// Generated by this command:
//
//	mockgen -source=internal/usecase/commands/extension.go -destination=tests/mock/commands/extension_mock.go -package=mock_commands
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

// MockExtensionCommands is a mock of ExtensionCommands interface.
type MockExtensionCommands struct {
	ctrl     *gomock.Controller
	recorder *MockExtensionCommandsMockRecorder
	isgomock struct{}
}

// MockExtensionCommandsMockRecorder is the mock recorder for MockExtensionCommands.
type MockExtensionCommandsMockRecorder struct {
	mock *MockExtensionCommands
}

// NewMockExtensionCommands creates a new mock instance.
func NewMockExtensionCommands(ctrl *gomock.Controller) *MockExtensionCommands {
	mock := &MockExtensionCommands{ctrl: ctrl}
	mock.recorder = &MockExtensionCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExtensionCommands) EXPECT() *MockExtensionCommandsMockRecorder {
	return m.recorder
}

// RequestExtension mocks base method.
func (m *MockExtensionCommands) RequestExtension(ctx context.Context, userID, reservationID uuid.UUID, req commands.ExtensionRequest) (*commands.ExtensionResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RequestExtension", ctx, userID, reservationID, req)
	ret0, _ := ret[0].(*commands.ExtensionResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RequestExtension indicates an expected call of RequestExtension.
func (mr *MockExtensionCommandsMockRecorder) RequestExtension(ctx, userID, reservationID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RequestExtension", reflect.TypeOf((*MockExtensionCommands)(nil).RequestExtension), ctx, userID, reservationID, req)
}
