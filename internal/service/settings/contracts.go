package settings

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек сайта
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Save(ctx context.Context, s *domain.SiteSettings) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
