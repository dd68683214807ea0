package reservations

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	reservationRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/reservation"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus, update reservationRepo.StatusUpdate) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

// DriverRepository интерфейс репозитория водителей
type DriverRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	IncrementCompletedTrips(ctx context.Context, id int64) error
}

// Messenger переписка по бронированию (уведомления о смене статуса)
type Messenger interface {
	PostSystemMessage(ctx context.Context, reservationID int64, content string) error
	AttachDriver(ctx context.Context, reservationID, driverID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики переходов статуса
type Metrics interface {
	TransitionObserved(action, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
