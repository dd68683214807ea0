package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/dbmetrics"
	"github.com/mfkayan044/securedrive-sub000/pkg/psqlbuilder"
)

// singletonID в таблице site_settings всегда одна строка
const singletonID = 1

// Repository репозиторий настроек сайта
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает сохранённые настройки сайта
func (r *Repository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"company_name",
		"support_phone",
		"support_email",
		"website",
		"currency",
		"voucher_footer",
		"updated_at",
	).
		From("site_settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SiteSettings
	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.CompanyName,
		&s.SupportPhone,
		&s.SupportEmail,
		&s.Website,
		&s.Currency,
		&s.VoucherFooter,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Save создает или перезаписывает настройки сайта
func (r *Repository) Save(ctx context.Context, s *domain.SiteSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("site_settings").
		Columns("id", "company_name", "support_phone", "support_email", "website", "currency", "voucher_footer").
		Values(singletonID, s.CompanyName, s.SupportPhone, s.SupportEmail, s.Website, s.Currency, s.VoucherFooter).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			support_phone = EXCLUDED.support_phone,
			support_email = EXCLUDED.support_email,
			website = EXCLUDED.website,
			currency = EXCLUDED.currency,
			voucher_footer = EXCLUDED.voucher_footer,
			updated_at = NOW()
			RETURNING updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.UpdatedAt); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
