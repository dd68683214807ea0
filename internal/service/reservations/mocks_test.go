package reservations

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	reservationRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/reservation"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus, update reservationRepo.StatusUpdate) error {
	return m.Called(ctx, id, from, to, update).Error(0)
}

func (m *MockReservationRepo) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockDriverRepo struct {
	mock.Mock
}

func (m *MockDriverRepo) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverRepo) IncrementCompletedTrips(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) PostSystemMessage(ctx context.Context, reservationID int64, content string) error {
	return m.Called(ctx, reservationID, content).Error(0)
}

func (m *MockMessenger) AttachDriver(ctx context.Context, reservationID, driverID int64) error {
	return m.Called(ctx, reservationID, driverID).Error(0)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) TransitionObserved(action, outcome string) {
	m.Called(action, outcome)
}

// passThroughTx выполняет функцию без настоящей транзакции
type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testDeps struct {
	repo      *MockReservationRepo
	drivers   *MockDriverRepo
	messenger *MockMessenger
	metrics   *MockMetrics
}

func newTestService() (*Service, *testDeps) {
	deps := &testDeps{
		repo:      new(MockReservationRepo),
		drivers:   new(MockDriverRepo),
		messenger: new(MockMessenger),
		metrics:   new(MockMetrics),
	}
	svc := NewService(deps.repo, deps.drivers, deps.messenger, passThroughTx{}, deps.metrics, logger.Nop())
	return svc, deps
}
