package calculate_price

import (
	"context"
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
)

// PriceRuleRepository интерфейс репозитория ценовых правил
type PriceRuleRepository interface {
	FindApplicable(ctx context.Context, fromID, toID, vehicleTypeID int64, date time.Time) (*domain.PriceRule, error)
}

// ExtraServiceRepository интерфейс каталога дополнительных услуг
type ExtraServiceRepository interface {
	GetActiveExtraServicesByIDs(ctx context.Context, ids []int64) ([]*domain.ExtraService, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
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
