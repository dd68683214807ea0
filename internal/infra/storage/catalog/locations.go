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

var locationColumns = []string{
	"id",
	"name",
	"type",
	"address",
	"is_active",
	"priority",
	"created_at",
	"updated_at",
}

// ListLocations возвращает локации, отсортированные по приоритету
// activeOnly=true для публичного списка
func (r *Repository) ListLocations(ctx context.Context, activeOnly bool) ([]*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(locationColumns...).
		From("locations").
		OrderBy("priority ASC", "name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListLocations - scan row: %v", ErrScanRow, err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLocations - rows error: %v", ErrScanRow, err)
	}

	return locations, nil
}

// GetLocation получает локацию по ID
func (r *Repository) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locationColumns...).
		From("locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocation - build select query: %v", ErrBuildQuery, err)
	}

	location, err := scanLocation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocation - scan location: %v", ErrScanRow, err)
	}

	return location, nil
}

// CreateLocation создает локацию
func (r *Repository) CreateLocation(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("locations").
		Columns("name", "type", "address", "is_active", "priority").
		Values(location.Name, location.Type, location.Address, location.IsActive, location.Priority).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLocation - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLocation - execute insert: %v", ErrExecQuery, err)
	}

	return location, nil
}

// UpdateLocation обновляет все редактируемые поля локации
func (r *Repository) UpdateLocation(ctx context.Context, location *domain.Location) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("locations").
		Set("name", location.Name).
		Set("type", location.Type).
		Set("address", location.Address).
		Set("is_active", location.IsActive).
		Set("priority", location.Priority).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": location.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateLocation - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLocation - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateLocation", ErrLocationNotFound)
}

// DeleteLocation удаляет локацию
func (r *Repository) DeleteLocation(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DeleteLocation", "locations", id, ErrLocationNotFound)
}

func scanLocation(row interface{ Scan(dest ...interface{}) error }) (*domain.Location, error) {
	var location domain.Location
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&location.ID,
		&location.Name,
		&location.Type,
		&location.Address,
		&location.IsActive,
		&location.Priority,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	location.CreatedAt = createdAt.Time
	location.UpdatedAt = updatedAt.Time

	return &location, nil
}
