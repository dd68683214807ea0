package send_voucher

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/internal/integrations/sendgrid"
	"github.com/mfkayan044/securedrive-sub000/internal/voucher"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// CatalogRepository справочники для названий в ваучере
type CatalogRepository interface {
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
	GetVehicleType(ctx context.Context, id int64) (*domain.VehicleType, error)
}

// Mailer отправка писем
type Mailer interface {
	Send(ctx context.Context, msg *sendgrid.Message) error
}

// SettingsProvider настройки сайта для шапки и подвала ваучера
type SettingsProvider interface {
	VoucherSettings(ctx context.Context) voucher.Settings
}

// Metrics бизнес-метрики ваучеров
type Metrics interface {
	VoucherRendered(channel string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
