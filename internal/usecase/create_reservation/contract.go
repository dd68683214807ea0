package create_reservation

import (
	"context"
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/internal/usecase/calculate_price"
)

// PriceCalculator пересчитывает стоимость на сервере
type PriceCalculator interface {
	Compute(ctx context.Context, req *calculate_price.Request) (*calculate_price.Calculation, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	AddExtras(ctx context.Context, reservationID int64, extras []domain.ReservationExtra) error
}

// VehicleTypeRepository интерфейс каталога типов автомобилей
type VehicleTypeRepository interface {
	GetVehicleType(ctx context.Context, id int64) (*domain.VehicleType, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	IncrementReservationCount(ctx context.Context, id int64) error
}

// ConversationCreator создает переписку для нового бронирования
type ConversationCreator interface {
	CreateConversation(ctx context.Context, reservationID int64, userID, adminID *int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	ReservationCreated(source, tripType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
