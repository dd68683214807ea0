package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/dbmetrics"
	"github.com/mfkayan044/securedrive-sub000/pkg/psqlbuilder"
)

var extraServiceColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"icon",
	"category",
	"is_active",
	"priority",
	"created_at",
	"updated_at",
}

// ListExtraServices возвращает дополнительные услуги, отсортированные по приоритету
func (r *Repository) ListExtraServices(ctx context.Context, activeOnly bool) ([]*domain.ExtraService, error) {
	selectBuilder := psqlbuilder.Select(extraServiceColumns...).
		From("extra_services").
		OrderBy("priority ASC", "name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	return r.queryExtraServices(ctx, "ListExtraServices", selectBuilder)
}

// GetActiveExtraServicesByIDs возвращает активные услуги из списка ids
// Неизвестные и неактивные ids просто отсутствуют в результате
func (r *Repository) GetActiveExtraServicesByIDs(ctx context.Context, ids []int64) ([]*domain.ExtraService, error) {
	if len(ids) == 0 {
		return []*domain.ExtraService{}, nil
	}

	selectBuilder := psqlbuilder.Select(extraServiceColumns...).
		From("extra_services").
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("priority ASC")

	return r.queryExtraServices(ctx, "GetActiveExtraServicesByIDs", selectBuilder)
}

// GetExtraService получает дополнительную услугу по ID
func (r *Repository) GetExtraService(ctx context.Context, id int64) (*domain.ExtraService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(extraServiceColumns...).
		From("extra_services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExtraService - build select query: %v", ErrBuildQuery, err)
	}

	es, err := scanExtraService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrExtraServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetExtraService - scan extra service: %v", ErrScanRow, err)
	}

	return es, nil
}

// CreateExtraService создает дополнительную услугу
func (r *Repository) CreateExtraService(ctx context.Context, es *domain.ExtraService) (*domain.ExtraService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("extra_services").
		Columns("name", "description", "price", "icon", "category", "is_active", "priority").
		Values(es.Name, es.Description, es.Price, es.Icon, es.Category, es.IsActive, es.Priority).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateExtraService - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&es.ID, &es.CreatedAt, &es.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateExtraService - execute insert: %v", ErrExecQuery, err)
	}

	return es, nil
}

// UpdateExtraService обновляет дополнительную услугу
func (r *Repository) UpdateExtraService(ctx context.Context, es *domain.ExtraService) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("extra_services").
		Set("name", es.Name).
		Set("description", es.Description).
		Set("price", es.Price).
		Set("icon", es.Icon).
		Set("category", es.Category).
		Set("is_active", es.IsActive).
		Set("priority", es.Priority).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": es.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateExtraService - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateExtraService - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateExtraService", ErrExtraServiceNotFound)
}

// DeleteExtraService удаляет дополнительную услугу
func (r *Repository) DeleteExtraService(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DeleteExtraService", "extra_services", id, ErrExtraServiceNotFound)
}

func (r *Repository) queryExtraServices(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.ExtraService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	services := make([]*domain.ExtraService, 0)
	for rows.Next() {
		es, err := scanExtraService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		services = append(services, es)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return services, nil
}

func scanExtraService(row interface{ Scan(dest ...interface{}) error }) (*domain.ExtraService, error) {
	var es domain.ExtraService
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&es.ID,
		&es.Name,
		&es.Description,
		&es.Price,
		&es.Icon,
		&es.Category,
		&es.IsActive,
		&es.Priority,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	es.CreatedAt = createdAt.Time
	es.UpdatedAt = updatedAt.Time

	return &es, nil
}
