package pricerule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/dbmetrics"
	"github.com/mfkayan044/securedrive-sub000/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"from_location_id",
	"to_location_id",
	"vehicle_type_id",
	"price",
	"is_active",
	"valid_from",
	"valid_to",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил цены (маршрут + тип автомобиля -> базовая цена)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил цены
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindApplicable ищет активное правило для маршрута и типа автомобиля на дату
// Если подходит несколько правил, побеждает правило с самым поздним valid_from
// Возвращает ErrPriceRuleNotFound, если правила нет
func (r *Repository) FindApplicable(ctx context.Context, fromID, toID, vehicleTypeID int64, date time.Time) (*domain.PriceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := date.Format(domain.DateFormat)

	query, args, err := psqlbuilder.Select(columns...).
		From("price_rules").
		Where(squirrel.Eq{
			"from_location_id": fromID,
			"to_location_id":   toID,
			"vehicle_type_id":  vehicleTypeID,
			"is_active":        true,
		}).
		Where(squirrel.LtOrEq{"valid_from": day}).
		Where(squirrel.Or{
			squirrel.Eq{"valid_to": nil},
			squirrel.GtOrEq{"valid_to": day},
		}).
		OrderBy("valid_from DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindApplicable - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPriceRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindApplicable - scan price rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PriceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("price_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPriceRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan price rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// List возвращает правила для админки с опциональной фильтрацией
func (r *Repository) List(ctx context.Context, filter domain.PriceRuleFilter) ([]*domain.PriceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("price_rules").
		OrderBy("from_location_id ASC", "to_location_id ASC", "vehicle_type_id ASC", "valid_from DESC")

	if filter.FromLocation != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"from_location_id": *filter.FromLocation})
	}
	if filter.ToLocation != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"to_location_id": *filter.ToLocation})
	}
	if filter.VehicleTypeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"vehicle_type_id": *filter.VehicleTypeID})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.PriceRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Create создает правило цены
func (r *Repository) Create(ctx context.Context, rule *domain.PriceRule) (*domain.PriceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("price_rules").
		Columns("from_location_id", "to_location_id", "vehicle_type_id", "price", "is_active", "valid_from", "valid_to").
		Values(
			rule.FromLocation,
			rule.ToLocation,
			rule.VehicleTypeID,
			rule.Price,
			rule.IsActive,
			rule.ValidFrom,
			rule.ValidTo,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rule, nil
}

// Update обновляет правило цены
func (r *Repository) Update(ctx context.Context, rule *domain.PriceRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("price_rules").
		Set("from_location_id", rule.FromLocation).
		Set("to_location_id", rule.ToLocation).
		Set("vehicle_type_id", rule.VehicleTypeID).
		Set("price", rule.Price).
		Set("is_active", rule.IsActive).
		Set("valid_from", rule.ValidFrom).
		Set("valid_to", rule.ValidTo).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// Delete удаляет правило цены
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("price_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrPriceRuleNotFound
	}
	return nil
}

func scanRule(row interface{ Scan(dest ...interface{}) error }) (*domain.PriceRule, error) {
	var rule domain.PriceRule
	var validTo, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.FromLocation,
		&rule.ToLocation,
		&rule.VehicleTypeID,
		&rule.Price,
		&rule.IsActive,
		&rule.ValidFrom,
		&validTo,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if validTo.Valid {
		rule.ValidTo = &validTo.Time
	}
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
