package settings

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	settingsRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/settings"
	"github.com/mfkayan044/securedrive-sub000/internal/service/settings/models"
	"github.com/mfkayan044/securedrive-sub000/internal/voucher"
)

const maxCurrencyLength = 8

// Service сервис настроек сайта
// Сохранённые в БД значения перекрывают значения из конфигурации
type Service struct {
	repo     SettingsRepository
	defaults domain.SiteSettings
	logger   Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, defaults domain.SiteSettings, logger Logger) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// Get возвращает действующие настройки сайта
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomain(current), nil
}

// Update изменяет настройки сайта (только администратор, проверяется в роутере)
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, err := s.repo.Get(ctx)
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		stored = &domain.SiteSettings{}
	} else if err != nil {
		s.logger.Error("Update: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	apply(&stored.CompanyName, req.CompanyName)
	apply(&stored.SupportPhone, req.SupportPhone)
	apply(&stored.SupportEmail, req.SupportEmail)
	apply(&stored.Website, req.Website)
	apply(&stored.Currency, req.Currency)
	apply(&stored.VoucherFooter, req.VoucherFooter)

	if err := s.repo.Save(ctx, stored); err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: failed to save settings: %v", ErrInternal, err)
	}

	s.logger.Info("Update: site settings updated")
	return models.FromDomain(stored.MergeOver(s.defaults)), nil
}

// VoucherSettings настройки для шапки и подвала ваучера
// При ошибке БД используются значения из конфигурации, ваучер всё равно выдается
func (s *Service) VoucherSettings(ctx context.Context) voucher.Settings {
	current, err := s.current(ctx)
	if err != nil {
		current = s.defaults
	}
	return voucher.Settings{
		CompanyName:  current.CompanyName,
		SupportPhone: current.SupportPhone,
		SupportEmail: current.SupportEmail,
		Website:      current.Website,
		Currency:     current.Currency,
		Footer:       current.VoucherFooter,
	}
}

func (s *Service) current(ctx context.Context) (domain.SiteSettings, error) {
	stored, err := s.repo.Get(ctx)
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return s.defaults, nil
	}
	if err != nil {
		s.logger.Error("Get: failed to get settings: %v", err)
		return domain.SiteSettings{}, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return stored.MergeOver(s.defaults), nil
}

func validateUpdate(req *models.UpdateSettingsRequest) error {
	if req.SupportEmail != nil && strings.TrimSpace(*req.SupportEmail) != "" {
		if _, err := mail.ParseAddress(strings.TrimSpace(*req.SupportEmail)); err != nil {
			return fmt.Errorf("supportEmail is not a valid address")
		}
	}
	if req.Currency != nil && len(strings.TrimSpace(*req.Currency)) > maxCurrencyLength {
		return fmt.Errorf("currency must be at most %d characters", maxCurrencyLength)
	}
	return nil
}

func apply(field *string, value *string) {
	if value != nil {
		*field = strings.TrimSpace(*value)
	}
}
