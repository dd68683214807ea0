package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/dbmetrics"
	"github.com/mfkayan044/securedrive-sub000/pkg/psqlbuilder"
)

var vehicleTypeColumns = []string{
	"id",
	"name",
	"capacity",
	"description",
	"image",
	"features",
	"base_price",
	"is_active",
	"priority",
	"created_at",
	"updated_at",
}

// ListVehicleTypes возвращает типы автомобилей, отсортированные по приоритету
func (r *Repository) ListVehicleTypes(ctx context.Context, activeOnly bool) ([]*domain.VehicleType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(vehicleTypeColumns...).
		From("vehicle_types").
		OrderBy("priority ASC", "name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicleTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicleTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicleTypes := make([]*domain.VehicleType, 0)
	for rows.Next() {
		vt, err := scanVehicleType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListVehicleTypes - scan row: %v", ErrScanRow, err)
		}
		vehicleTypes = append(vehicleTypes, vt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVehicleTypes - rows error: %v", ErrScanRow, err)
	}

	return vehicleTypes, nil
}

// GetVehicleType получает тип автомобиля по ID
func (r *Repository) GetVehicleType(ctx context.Context, id int64) (*domain.VehicleType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleTypeColumns...).
		From("vehicle_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetVehicleType - build select query: %v", ErrBuildQuery, err)
	}

	vt, err := scanVehicleType(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVehicleTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVehicleType - scan vehicle type: %v", ErrScanRow, err)
	}

	return vt, nil
}

// CreateVehicleType создает тип автомобиля
func (r *Repository) CreateVehicleType(ctx context.Context, vt *domain.VehicleType) (*domain.VehicleType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicle_types").
		Columns("name", "capacity", "description", "image", "features", "base_price", "is_active", "priority").
		Values(
			vt.Name,
			vt.Capacity,
			vt.Description,
			vt.Image,
			pq.StringArray(vt.Features),
			vt.BasePrice,
			vt.IsActive,
			vt.Priority,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateVehicleType - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&vt.ID, &vt.CreatedAt, &vt.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateVehicleType - execute insert: %v", ErrExecQuery, err)
	}

	return vt, nil
}

// UpdateVehicleType обновляет тип автомобиля
func (r *Repository) UpdateVehicleType(ctx context.Context, vt *domain.VehicleType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicle_types").
		Set("name", vt.Name).
		Set("capacity", vt.Capacity).
		Set("description", vt.Description).
		Set("image", vt.Image).
		Set("features", pq.StringArray(vt.Features)).
		Set("base_price", vt.BasePrice).
		Set("is_active", vt.IsActive).
		Set("priority", vt.Priority).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": vt.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateVehicleType - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateVehicleType - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateVehicleType", ErrVehicleTypeNotFound)
}

// DeleteVehicleType удаляет тип автомобиля
func (r *Repository) DeleteVehicleType(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DeleteVehicleType", "vehicle_types", id, ErrVehicleTypeNotFound)
}

func scanVehicleType(row interface{ Scan(dest ...interface{}) error }) (*domain.VehicleType, error) {
	var vt domain.VehicleType
	var features pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&vt.ID,
		&vt.Name,
		&vt.Capacity,
		&vt.Description,
		&vt.Image,
		&features,
		&vt.BasePrice,
		&vt.IsActive,
		&vt.Priority,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	vt.Features = []string(features)
	vt.CreatedAt = createdAt.Time
	vt.UpdatedAt = updatedAt.Time

	return &vt, nil
}
