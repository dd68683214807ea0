package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/dbmetrics"
	"github.com/mfkayan044/securedrive-sub000/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var columns = []string{
	"id",
	"reservation_number",
	"user_id",
	"driver_id",
	"source",
	"customer_name",
	"customer_email",
	"customer_phone",
	"trip_type",
	"from_location_id",
	"to_location_id",
	"vehicle_type_id",
	"departure_date",
	"departure_time",
	"return_date",
	"return_time",
	"passengers",
	"passenger_names",
	"flight_code",
	"return_flight_code",
	"total_price",
	"coupon_code",
	"discount_amount",
	"status",
	"payment_status",
	"notes",
	"cancellation_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований трансферов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// StatusUpdate дополнительные поля, которые пишутся вместе со сменой статуса
type StatusUpdate struct {
	DriverID           *int64
	CancellationReason *string
}

// Create создает бронирование
// Если в контексте передана активная транзакция, использует её.
// Дополнительные услуги сохраняются отдельно через AddExtras в той же транзакции.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(columns[1 : len(columns)-2]...).
		Values(
			reservation.ReservationNumber,
			reservation.UserID,
			reservation.DriverID,
			reservation.Source,
			reservation.CustomerName,
			reservation.CustomerEmail,
			reservation.CustomerPhone,
			reservation.TripType,
			reservation.FromLocation,
			reservation.ToLocation,
			reservation.VehicleTypeID,
			reservation.DepartureDate,
			reservation.DepartureTime,
			reservation.ReturnDate,
			reservation.ReturnTime,
			reservation.Passengers,
			pq.StringArray(reservation.PassengerNames),
			reservation.FlightCode,
			reservation.ReturnFlight,
			reservation.TotalPrice,
			reservation.CouponCode,
			reservation.DiscountAmount,
			reservation.Status,
			reservation.PaymentStatus,
			reservation.Notes,
			reservation.CancellationReason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reservation.ID, &createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return nil, ErrNumberTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// AddExtras сохраняет выбранные дополнительные услуги бронирования одним запросом
// Имя и цена денормализуются, чтобы ваучер не зависел от последующих правок справочника
func (r *Repository) AddExtras(ctx context.Context, reservationID int64, extras []domain.ReservationExtra) error {
	if len(extras) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("reservation_extras").
		Columns("reservation_id", "extra_service_id", "name", "price")
	for _, e := range extras {
		insertBuilder = insertBuilder.Values(reservationID, e.ExtraServiceID, e.Name, e.Price)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddExtras - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddExtras - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронирование по ID вместе с дополнительными услугами
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	extras, err := r.extrasByReservation(ctx, []int64{reservation.ID})
	if err != nil {
		return nil, err
	}
	reservation.Extras = extras[reservation.ID]

	return reservation, nil
}

// List получает бронирования по фильтру
// Сортировка: ближайшие поездки последними (departure_date DESC, departure_time DESC)
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		OrderBy("departure_date DESC", "departure_time DESC", "id DESC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.DriverID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"driver_id": *filter.DriverID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.PaymentStatus != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *filter.PaymentStatus})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"departure_date": filter.From.Format(domain.DateFormat)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"departure_date": filter.To.Format(domain.DateFormat)})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(filter.Offset)
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

	reservations := make([]*domain.Reservation, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
		ids = append(ids, reservation.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return reservations, nil
	}

	extras, err := r.extrasByReservation(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, reservation := range reservations {
		reservation.Extras = extras[reservation.ID]
	}

	return reservations, nil
}

// UpdateStatus меняет статус, только если текущий статус равен from
// Если строка не обновлена (статус уже изменил кто-то другой), возвращает ErrStatusChanged
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus, update StatusUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})

	if update.DriverID != nil {
		updateBuilder = updateBuilder.Set("driver_id", *update.DriverID)
	}
	if update.CancellationReason != nil {
		updateBuilder = updateBuilder.Set("cancellation_reason", *update.CancellationReason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

// ApplyDiscount сохраняет купон и скидку, примененные на шаге оплаты
// total_price не меняется
func (r *Repository) ApplyDiscount(ctx context.Context, id int64, couponCode string, discount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("coupon_code", couponCode).
		Set("discount_amount", discount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ApplyDiscount - build update query: %v", ErrBuildQuery, err)
	}

	return r.execUpdate(ctx, executor, "ApplyDiscount", query, args)
}

// UpdatePaymentStatus обновляет статус оплаты
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execUpdate(ctx, executor, "UpdatePaymentStatus", query, args)
}

func (r *Repository) execUpdate(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// extrasByReservation загружает дополнительные услуги для набора бронирований
func (r *Repository) extrasByReservation(ctx context.Context, ids []int64) (map[int64][]domain.ReservationExtra, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("reservation_id", "extra_service_id", "name", "price").
		From("reservation_extras").
		Where(squirrel.Eq{"reservation_id": ids}).
		OrderBy("reservation_id ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: extrasByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: extrasByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	extras := make(map[int64][]domain.ReservationExtra, len(ids))
	for rows.Next() {
		var reservationID int64
		var e domain.ReservationExtra
		if err := rows.Scan(&reservationID, &e.ExtraServiceID, &e.Name, &e.Price); err != nil {
			return nil, fmt.Errorf("%w: extrasByReservation - scan row: %v", ErrScanRow, err)
		}
		extras[reservationID] = append(extras[reservationID], e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: extrasByReservation - rows error: %v", ErrScanRow, err)
	}

	return extras, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

func scanReservation(row interface{ Scan(dest ...interface{}) error }) (*domain.Reservation, error) {
	var res domain.Reservation
	var passengerNames pq.StringArray
	var returnDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ReservationNumber,
		&res.UserID,
		&res.DriverID,
		&res.Source,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.CustomerPhone,
		&res.TripType,
		&res.FromLocation,
		&res.ToLocation,
		&res.VehicleTypeID,
		&res.DepartureDate,
		&res.DepartureTime,
		&returnDate,
		&res.ReturnTime,
		&res.Passengers,
		&passengerNames,
		&res.FlightCode,
		&res.ReturnFlight,
		&res.TotalPrice,
		&res.CouponCode,
		&res.DiscountAmount,
		&res.Status,
		&res.PaymentStatus,
		&res.Notes,
		&res.CancellationReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if returnDate.Valid {
		res.ReturnDate = &returnDate.Time
	}
	res.PassengerNames = []string(passengerNames)
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
