package driver

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

var columns = []string{
	"id",
	"full_name",
	"email",
	"phone",
	"license_number",
	"vehicle_plate",
	"vehicle_model",
	"vehicle_year",
	"vehicle_color",
	"work_start",
	"work_end",
	"languages",
	"rating",
	"total_trips",
	"completed_trips",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий водителей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория водителей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает водителя
func (r *Repository) Create(ctx context.Context, d *domain.Driver) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("drivers").
		Columns(
			"full_name",
			"email",
			"phone",
			"license_number",
			"vehicle_plate",
			"vehicle_model",
			"vehicle_year",
			"vehicle_color",
			"work_start",
			"work_end",
			"languages",
			"is_active",
		).
		Values(
			d.FullName,
			d.Email,
			d.Phone,
			d.LicenseNumber,
			d.VehiclePlate,
			d.VehicleModel,
			d.VehicleYear,
			d.VehicleColor,
			d.WorkStart,
			d.WorkEnd,
			pq.StringArray(d.Languages),
			d.IsActive,
		).
		Suffix("RETURNING id, rating, total_trips, completed_trips, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.Rating,
		&d.TotalTrips,
		&d.CompletedTrips,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return d, nil
}

// Update обновляет профиль водителя
// Счетчики поездок и рейтинг здесь не меняются
func (r *Repository) Update(ctx context.Context, d *domain.Driver) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("drivers").
		Set("full_name", d.FullName).
		Set("email", d.Email).
		Set("phone", d.Phone).
		Set("license_number", d.LicenseNumber).
		Set("vehicle_plate", d.VehiclePlate).
		Set("vehicle_model", d.VehicleModel).
		Set("vehicle_year", d.VehicleYear).
		Set("vehicle_color", d.VehicleColor).
		Set("work_start", d.WorkStart).
		Set("work_end", d.WorkEnd).
		Set("languages", pq.StringArray(d.Languages)).
		Set("is_active", d.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID}).
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

// GetByID получает водителя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("drivers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	d, err := scanDriver(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan driver: %v", ErrScanRow, err)
	}

	return d, nil
}

// List возвращает водителей по имени
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("drivers").
		OrderBy("full_name ASC")

	if activeOnly {
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

	drivers := make([]*domain.Driver, 0)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return drivers, nil
}

// IncrementCompletedTrips увеличивает счетчики поездок после завершения трансфера
func (r *Repository) IncrementCompletedTrips(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("drivers").
		Set("total_trips", squirrel.Expr("total_trips + 1")).
		Set("completed_trips", squirrel.Expr("completed_trips + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementCompletedTrips - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementCompletedTrips - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "IncrementCompletedTrips")
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrDriverNotFound
	}
	return nil
}

func scanDriver(row interface{ Scan(dest ...interface{}) error }) (*domain.Driver, error) {
	var d domain.Driver
	var languages pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.FullName,
		&d.Email,
		&d.Phone,
		&d.LicenseNumber,
		&d.VehiclePlate,
		&d.VehicleModel,
		&d.VehicleYear,
		&d.VehicleColor,
		&d.WorkStart,
		&d.WorkEnd,
		&languages,
		&d.Rating,
		&d.TotalTrips,
		&d.CompletedTrips,
		&d.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Languages = []string(languages)
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}
