// Code generated by MockGen. DO NOT EDIT.
// Source: internal/usecase/shared/uow.go
//
// Generated by this command:
//
//	mockgen -source=internal/usecase/shared/uow.go -destination=tests/mock/shared/uow_mock.go -package=mock_shared
//

// Package mock_shared is a generated GoMock package.
package mock_shared

import (
	context "context"
	extension "fleetbook/internal/domain/extension"
	payment "fleetbook/internal/domain/payment"
	reservation "fleetbook/internal/domain/reservation"
	db "fleetbook/internal/infra/db"
	shared "fleetbook/internal/usecase/shared"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockUnitOfWork is a mock of UnitOfWork interface.
type MockUnitOfWork struct {
	ctrl     *gomock.Controller
	recorder *MockUnitOfWorkMockRecorder
	isgomock struct{}
}

// MockUnitOfWorkMockRecorder is the mock recorder for MockUnitOfWork.
type MockUnitOfWorkMockRecorder struct {
	mock *MockUnitOfWork
}

// NewMockUnitOfWork creates a new mock instance.
func NewMockUnitOfWork(ctrl *gomock.Controller) *MockUnitOfWork {
	mock := &MockUnitOfWork{ctrl: ctrl}
	mock.recorder = &MockUnitOfWorkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUnitOfWork) EXPECT() *MockUnitOfWorkMockRecorder {
	return m.recorder
}

// CommandReads mocks base method.
func (m *MockUnitOfWork) CommandReads() shared.CommandReads {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CommandReads")
	ret0, _ := ret[0].(shared.CommandReads)
	return ret0
}

// CommandReads indicates an expected call of CommandReads.
func (mr *MockUnitOfWorkMockRecorder) CommandReads() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CommandReads", reflect.TypeOf((*MockUnitOfWork)(nil).CommandReads))
}

// WithDB mocks base method.
func (m *MockUnitOfWork) WithDB(ctx context.Context, fn func(context.Context, db.Querier) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithDB", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithDB indicates an expected call of WithDB.
func (mr *MockUnitOfWorkMockRecorder) WithDB(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithDB", reflect.TypeOf((*MockUnitOfWork)(nil).WithDB), ctx, fn)
}

// Within mocks base method.
func (m *MockUnitOfWork) Within(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Within", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Within indicates an expected call of Within.
func (mr *MockUnitOfWorkMockRecorder) Within(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Within", reflect.TypeOf((*MockUnitOfWork)(nil).Within), ctx, fn)
}

// WithinReadOnly mocks base method.
func (m *MockUnitOfWork) WithinReadOnly(ctx context.Context, fn func(context.Context, db.Querier) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithinReadOnly", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithinReadOnly indicates an expected call of WithinReadOnly.
func (mr *MockUnitOfWorkMockRecorder) WithinReadOnly(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithinReadOnly", reflect.TypeOf((*MockUnitOfWork)(nil).WithinReadOnly), ctx, fn)
}

// MockTx is a mock of Tx interface.
type MockTx struct {
	ctrl     *gomock.Controller
	recorder *MockTxMockRecorder
	isgomock struct{}
}

// MockTxMockRecorder is the mock recorder for MockTx.
type MockTxMockRecorder struct {
	mock *MockTx
}

// NewMockTx creates a new mock instance.
func NewMockTx(ctrl *gomock.Controller) *MockTx {
	mock := &MockTx{ctrl: ctrl}
	mock.recorder = &MockTxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTx) EXPECT() *MockTxMockRecorder {
	return m.recorder
}

// DB mocks base method.
func (m *MockTx) DB() db.Querier {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DB")
	ret0, _ := ret[0].(db.Querier)
	return ret0
}

// DB indicates an expected call of DB.
func (mr *MockTxMockRecorder) DB() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DB", reflect.TypeOf((*MockTx)(nil).DB))
}

// Extensions mocks base method.
func (m *MockTx) Extensions() shared.ExtensionRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Extensions")
	ret0, _ := ret[0].(shared.ExtensionRepository)
	return ret0
}

// Extensions indicates an expected call of Extensions.
func (mr *MockTxMockRecorder) Extensions() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Extensions", reflect.TypeOf((*MockTx)(nil).Extensions))
}

// Payments mocks base method.
func (m *MockTx) Payments() shared.PaymentRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Payments")
	ret0, _ := ret[0].(shared.PaymentRepository)
	return ret0
}

// Payments indicates an expected call of Payments.
func (mr *MockTxMockRecorder) Payments() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Payments", reflect.TypeOf((*MockTx)(nil).Payments))
}

// Promos mocks base method.
func (m *MockTx) Promos() shared.PromoRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Promos")
	ret0, _ := ret[0].(shared.PromoRepository)
	return ret0
}

// Promos indicates an expected call of Promos.
func (mr *MockTxMockRecorder) Promos() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Promos", reflect.TypeOf((*MockTx)(nil).Promos))
}

// Reservations mocks base method.
func (m *MockTx) Reservations() shared.ReservationRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reservations")
	ret0, _ := ret[0].(shared.ReservationRepository)
	return ret0
}

// Reservations indicates an expected call of Reservations.
func (mr *MockTxMockRecorder) Reservations() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reservations", reflect.TypeOf((*MockTx)(nil).Reservations))
}

// Vehicles mocks base method.
func (m *MockTx) Vehicles() shared.VehicleRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Vehicles")
	ret0, _ := ret[0].(shared.VehicleRepository)
	return ret0
}

// Vehicles indicates an expected call of Vehicles.
func (mr *MockTxMockRecorder) Vehicles() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Vehicles", reflect.TypeOf((*MockTx)(nil).Vehicles))
}

// MockCommandReads is a mock of CommandReads interface.
type MockCommandReads struct {
	ctrl     *gomock.Controller
	recorder *MockCommandReadsMockRecorder
	isgomock struct{}
}

// MockCommandReadsMockRecorder is the mock recorder for MockCommandReads.
type MockCommandReadsMockRecorder struct {
	mock *MockCommandReads
}

// NewMockCommandReads creates a new mock instance.
func NewMockCommandReads(ctrl *gomock.Controller) *MockCommandReads {
	mock := &MockCommandReads{ctrl: ctrl}
	mock.recorder = &MockCommandReadsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommandReads) EXPECT() *MockCommandReadsMockRecorder {
	return m.recorder
}

// PaymentIntentByID mocks base method.
func (m *MockCommandReads) PaymentIntentByID(ctx context.Context, id uuid.UUID) (*shared.PaymentIntentSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PaymentIntentByID", ctx, id)
	ret0, _ := ret[0].(*shared.PaymentIntentSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PaymentIntentByID indicates an expected call of PaymentIntentByID.
func (mr *MockCommandReadsMockRecorder) PaymentIntentByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PaymentIntentByID", reflect.TypeOf((*MockCommandReads)(nil).PaymentIntentByID), ctx, id)
}

// ReservationByID mocks base method.
func (m *MockCommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReservationByID", ctx, id)
	ret0, _ := ret[0].(*shared.ReservationSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReservationByID indicates an expected call of ReservationByID.
func (mr *MockCommandReadsMockRecorder) ReservationByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReservationByID", reflect.TypeOf((*MockCommandReads)(nil).ReservationByID), ctx, id)
}

// VehicleByID mocks base method.
func (m *MockCommandReads) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VehicleByID", ctx, id)
	ret0, _ := ret[0].(*shared.VehicleSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VehicleByID indicates an expected call of VehicleByID.
func (mr *MockCommandReadsMockRecorder) VehicleByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VehicleByID", reflect.TypeOf((*MockCommandReads)(nil).VehicleByID), ctx, id)
}

// MockVehicleRepository is a mock of VehicleRepository interface.
type MockVehicleRepository struct {
	ctrl     *gomock.Controller
	recorder *MockVehicleRepositoryMockRecorder
	isgomock struct{}
}

// MockVehicleRepositoryMockRecorder is the mock recorder for MockVehicleRepository.
type MockVehicleRepositoryMockRecorder struct {
	mock *MockVehicleRepository
}

// NewMockVehicleRepository creates a new mock instance.
func NewMockVehicleRepository(ctrl *gomock.Controller) *MockVehicleRepository {
	mock := &MockVehicleRepository{ctrl: ctrl}
	mock.recorder = &MockVehicleRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVehicleRepository) EXPECT() *MockVehicleRepositoryMockRecorder {
	return m.recorder
}

// FindByIDForUpdate mocks base method.
func (m *MockVehicleRepository) FindByIDForUpdate(ctx context.Context, arg1 db.Querier, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByIDForUpdate", ctx, arg1, id)
	ret0, _ := ret[0].(*shared.VehicleSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByIDForUpdate indicates an expected call of FindByIDForUpdate.
func (mr *MockVehicleRepositoryMockRecorder) FindByIDForUpdate(ctx, arg1, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByIDForUpdate", reflect.TypeOf((*MockVehicleRepository)(nil).FindByIDForUpdate), ctx, arg1, id)
}

// MockReservationRepository is a mock of ReservationRepository interface.
type MockReservationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockReservationRepositoryMockRecorder
	isgomock struct{}
}

// MockReservationRepositoryMockRecorder is the mock recorder for MockReservationRepository.
type MockReservationRepositoryMockRecorder struct {
	mock *MockReservationRepository
}

// NewMockReservationRepository creates a new mock instance.
func NewMockReservationRepository(ctrl *gomock.Controller) *MockReservationRepository {
	mock := &MockReservationRepository{ctrl: ctrl}
	mock.recorder = &MockReservationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationRepository) EXPECT() *MockReservationRepositoryMockRecorder {
	return m.recorder
}

// CancelExpiredHolds mocks base method.
func (m *MockReservationRepository) CancelExpiredHolds(ctx context.Context, arg1 db.Querier, now time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelExpiredHolds", ctx, arg1, now)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CancelExpiredHolds indicates an expected call of CancelExpiredHolds.
func (mr *MockReservationRepositoryMockRecorder) CancelExpiredHolds(ctx, arg1, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelExpiredHolds", reflect.TypeOf((*MockReservationRepository)(nil).CancelExpiredHolds), ctx, arg1, now)
}

// Create mocks base method.
func (m *MockReservationRepository) Create(ctx context.Context, arg1 db.Querier, res *reservation.Reservation) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, arg1, res)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockReservationRepositoryMockRecorder) Create(ctx, arg1, res any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockReservationRepository)(nil).Create), ctx, arg1, res)
}

// ExtendEnd mocks base method.
func (m *MockReservationRepository) ExtendEnd(ctx context.Context, arg1 db.Querier, id uuid.UUID, newEnd time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtendEnd", ctx, arg1, id, newEnd)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExtendEnd indicates an expected call of ExtendEnd.
func (mr *MockReservationRepositoryMockRecorder) ExtendEnd(ctx, arg1, id, newEnd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtendEnd", reflect.TypeOf((*MockReservationRepository)(nil).ExtendEnd), ctx, arg1, id, newEnd)
}

// FindByIDForUpdate mocks base method.
func (m *MockReservationRepository) FindByIDForUpdate(ctx context.Context, arg1 db.Querier, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByIDForUpdate", ctx, arg1, id)
	ret0, _ := ret[0].(*shared.ReservationSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByIDForUpdate indicates an expected call of FindByIDForUpdate.
func (mr *MockReservationRepositoryMockRecorder) FindByIDForUpdate(ctx, arg1, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByIDForUpdate", reflect.TypeOf((*MockReservationRepository)(nil).FindByIDForUpdate), ctx, arg1, id)
}

// HasBlockingOverlap mocks base method.
func (m *MockReservationRepository) HasBlockingOverlap(ctx context.Context, arg1 db.Querier, vehicleID uuid.UUID, start, end, now time.Time, excludeID *uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasBlockingOverlap", ctx, arg1, vehicleID, start, end, now, excludeID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasBlockingOverlap indicates an expected call of HasBlockingOverlap.
func (mr *MockReservationRepositoryMockRecorder) HasBlockingOverlap(ctx, arg1, vehicleID, start, end, now, excludeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasBlockingOverlap", reflect.TypeOf((*MockReservationRepository)(nil).HasBlockingOverlap), ctx, arg1, vehicleID, start, end, now, excludeID)
}

// UpdateStatus mocks base method.
func (m *MockReservationRepository) UpdateStatus(ctx context.Context, arg1 db.Querier, id uuid.UUID, status reservation.Status, holdDeadline *time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, arg1, id, status, holdDeadline)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockReservationRepositoryMockRecorder) UpdateStatus(ctx, arg1, id, status, holdDeadline any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockReservationRepository)(nil).UpdateStatus), ctx, arg1, id, status, holdDeadline)
}

// MockPromoRepository is a mock of PromoRepository interface.
type MockPromoRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPromoRepositoryMockRecorder
	isgomock struct{}
}

// MockPromoRepositoryMockRecorder is the mock recorder for MockPromoRepository.
type MockPromoRepositoryMockRecorder struct {
	mock *MockPromoRepository
}

// NewMockPromoRepository creates a new mock instance.
func NewMockPromoRepository(ctrl *gomock.Controller) *MockPromoRepository {
	mock := &MockPromoRepository{ctrl: ctrl}
	mock.recorder = &MockPromoRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPromoRepository) EXPECT() *MockPromoRepositoryMockRecorder {
	return m.recorder
}

// FindByIDForUpdate mocks base method.
func (m *MockPromoRepository) FindByIDForUpdate(ctx context.Context, arg1 db.Querier, id uuid.UUID) (*shared.PromoSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByIDForUpdate", ctx, arg1, id)
	ret0, _ := ret[0].(*shared.PromoSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByIDForUpdate indicates an expected call of FindByIDForUpdate.
func (mr *MockPromoRepositoryMockRecorder) FindByIDForUpdate(ctx, arg1, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByIDForUpdate", reflect.TypeOf((*MockPromoRepository)(nil).FindByIDForUpdate), ctx, arg1, id)
}

// RecordUse mocks base method.
func (m *MockPromoRepository) RecordUse(ctx context.Context, arg1 db.Querier, id uuid.UUID, usedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordUse", ctx, arg1, id, usedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordUse indicates an expected call of RecordUse.
func (mr *MockPromoRepositoryMockRecorder) RecordUse(ctx, arg1, id, usedAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordUse", reflect.TypeOf((*MockPromoRepository)(nil).RecordUse), ctx, arg1, id, usedAt)
}

// MockPaymentRepository is a mock of PaymentRepository interface.
type MockPaymentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentRepositoryMockRecorder
	isgomock struct{}
}

// MockPaymentRepositoryMockRecorder is the mock recorder for MockPaymentRepository.
type MockPaymentRepositoryMockRecorder struct {
	mock *MockPaymentRepository
}

// NewMockPaymentRepository creates a new mock instance.
func NewMockPaymentRepository(ctrl *gomock.Controller) *MockPaymentRepository {
	mock := &MockPaymentRepository{ctrl: ctrl}
	mock.recorder = &MockPaymentRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentRepository) EXPECT() *MockPaymentRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockPaymentRepository) Create(ctx context.Context, arg1 db.Querier, intent *payment.Intent) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, arg1, intent)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockPaymentRepositoryMockRecorder) Create(ctx, arg1, intent any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPaymentRepository)(nil).Create), ctx, arg1, intent)
}

// FindByIDForUpdate mocks base method.
func (m *MockPaymentRepository) FindByIDForUpdate(ctx context.Context, arg1 db.Querier, id uuid.UUID) (*shared.PaymentIntentSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByIDForUpdate", ctx, arg1, id)
	ret0, _ := ret[0].(*shared.PaymentIntentSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByIDForUpdate indicates an expected call of FindByIDForUpdate.
func (mr *MockPaymentRepositoryMockRecorder) FindByIDForUpdate(ctx, arg1, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByIDForUpdate", reflect.TypeOf((*MockPaymentRepository)(nil).FindByIDForUpdate), ctx, arg1, id)
}

// HasPendingForReservation mocks base method.
func (m *MockPaymentRepository) HasPendingForReservation(ctx context.Context, arg1 db.Querier, reservationID uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasPendingForReservation", ctx, arg1, reservationID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasPendingForReservation indicates an expected call of HasPendingForReservation.
func (mr *MockPaymentRepositoryMockRecorder) HasPendingForReservation(ctx, arg1, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasPendingForReservation", reflect.TypeOf((*MockPaymentRepository)(nil).HasPendingForReservation), ctx, arg1, reservationID)
}

// MarkSettled mocks base method.
func (m *MockPaymentRepository) MarkSettled(ctx context.Context, arg1 db.Querier, id uuid.UUID, status payment.Status, externalTxnRef string, settledAt time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkSettled", ctx, arg1, id, status, externalTxnRef, settledAt)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MarkSettled indicates an expected call of MarkSettled.
func (mr *MockPaymentRepositoryMockRecorder) MarkSettled(ctx, arg1, id, status, externalTxnRef, settledAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkSettled", reflect.TypeOf((*MockPaymentRepository)(nil).MarkSettled), ctx, arg1, id, status, externalTxnRef, settledAt)
}

// SumSucceededCentsByReservation mocks base method.
func (m *MockPaymentRepository) SumSucceededCentsByReservation(ctx context.Context, arg1 db.Querier, reservationID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumSucceededCentsByReservation", ctx, arg1, reservationID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SumSucceededCentsByReservation indicates an expected call of SumSucceededCentsByReservation.
func (mr *MockPaymentRepositoryMockRecorder) SumSucceededCentsByReservation(ctx, arg1, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumSucceededCentsByReservation", reflect.TypeOf((*MockPaymentRepository)(nil).SumSucceededCentsByReservation), ctx, arg1, reservationID)
}

// MockExtensionRepository is a mock of ExtensionRepository interface.
type MockExtensionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockExtensionRepositoryMockRecorder
	isgomock struct{}
}

// MockExtensionRepositoryMockRecorder is the mock recorder for MockExtensionRepository.
type MockExtensionRepositoryMockRecorder struct {
	mock *MockExtensionRepository
}

// NewMockExtensionRepository creates a new mock instance.
func NewMockExtensionRepository(ctrl *gomock.Controller) *MockExtensionRepository {
	mock := &MockExtensionRepository{ctrl: ctrl}
	mock.recorder = &MockExtensionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExtensionRepository) EXPECT() *MockExtensionRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockExtensionRepository) Create(ctx context.Context, arg1 db.Querier, ext *extension.Extension) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, arg1, ext)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockExtensionRepositoryMockRecorder) Create(ctx, arg1, ext any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockExtensionRepository)(nil).Create), ctx, arg1, ext)
}

// ExistsPendingForReservation mocks base method.
func (m *MockExtensionRepository) ExistsPendingForReservation(ctx context.Context, arg1 db.Querier, reservationID uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExistsPendingForReservation", ctx, arg1, reservationID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExistsPendingForReservation indicates an expected call of ExistsPendingForReservation.
func (mr *MockExtensionRepositoryMockRecorder) ExistsPendingForReservation(ctx, arg1, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExistsPendingForReservation", reflect.TypeOf((*MockExtensionRepository)(nil).ExistsPendingForReservation), ctx, arg1, reservationID)
}

// FindByIDForUpdate mocks base method.
func (m *MockExtensionRepository) FindByIDForUpdate(ctx context.Context, arg1 db.Querier, id uuid.UUID) (*shared.ExtensionSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByIDForUpdate", ctx, arg1, id)
	ret0, _ := ret[0].(*shared.ExtensionSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByIDForUpdate indicates an expected call of FindByIDForUpdate.
func (mr *MockExtensionRepositoryMockRecorder) FindByIDForUpdate(ctx, arg1, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByIDForUpdate", reflect.TypeOf((*MockExtensionRepository)(nil).FindByIDForUpdate), ctx, arg1, id)
}

// SetPaymentIntent mocks base method.
func (m *MockExtensionRepository) SetPaymentIntent(ctx context.Context, arg1 db.Querier, extensionID, intentID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetPaymentIntent", ctx, arg1, extensionID, intentID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetPaymentIntent indicates an expected call of SetPaymentIntent.
func (mr *MockExtensionRepositoryMockRecorder) SetPaymentIntent(ctx, arg1, extensionID, intentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPaymentIntent", reflect.TypeOf((*MockExtensionRepository)(nil).SetPaymentIntent), ctx, arg1, extensionID, intentID)
}

// UpdateStatus mocks base method.
func (m *MockExtensionRepository) UpdateStatus(ctx context.Context, arg1 db.Querier, id uuid.UUID, status extension.Status) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, arg1, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockExtensionRepositoryMockRecorder) UpdateStatus(ctx, arg1, id, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockExtensionRepository)(nil).UpdateStatus), ctx, arg1, id, status)
}
