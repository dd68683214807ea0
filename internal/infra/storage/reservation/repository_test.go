package reservation

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/pkg/dbmetrics"
	"github.com/mfkayan044/securedrive-sub000/pkg/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func reservationRow(id int64, status string, now time.Time) []driver.Value {
	return []driver.Value{
		id, "AB12CD34", int64(7), nil, "web",
		"Ayşe Yılmaz", "ayse@example.com", "+905551112233",
		"round-trip", int64(1), int64(2), int64(3),
		now, "10:30:00", now.AddDate(0, 0, 5), "18:00:00",
		2, "{Ayşe,Mehmet}", "TK1923", nil,
		385.0, nil, 0.0, status, "pending", nil, nil, now, now,
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations (reservation_number,user_id,driver_id,source")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

	res, err := repo.Create(context.Background(), &domain.Reservation{
		ReservationNumber: "AB12CD34",
		Source:            domain.SourceWeb,
		TripType:          domain.TripOneWay,
		DepartureDate:     now,
		DepartureTime:     "10:30",
		Passengers:        1,
		PassengerNames:    []string{"Ayşe"},
		TotalPrice:        180,
		Status:            domain.StatusPending,
		PaymentStatus:     domain.PaymentPending,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), res.ID)
	assert.Equal(t, now, res.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddExtras_SingleStatement(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservation_extras (reservation_id,extra_service_id,name,price) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)")).
		WithArgs(int64(11), int64(5), "Child seat", 25.0, int64(11), int64(6), "Meet & Greet", 40.0).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.AddExtras(context.Background(), 11, []domain.ReservationExtra{
		{ExtraServiceID: 5, Name: "Child seat", Price: 25},
		{ExtraServiceID: 6, Name: "Meet & Greet", Price: 40},
	})

	require.NoError(t, err)
	assert.NoError(t, repo.AddExtras(context.Background(), 11, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_WithExtras(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(reservationRow(11, "pending", now)...))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservation_extras WHERE reservation_id IN ($1)")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "extra_service_id", "name", "price"}).
			AddRow(11, 5, "Child seat", 25.0))

	res, err := repo.GetByID(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, "10:30", res.DepartureTime.String())
	require.NotNil(t, res.ReturnTime)
	assert.Equal(t, "18:00", res.ReturnTime.String())
	assert.Equal(t, []string{"Ayşe", "Mehmet"}, res.PassengerNames)
	assert.Nil(t, res.DriverID)
	assert.Equal(t, int64(7), *res.UserID)
	assert.Equal(t, []int64{5}, res.ExtraIDs())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_LocksRowInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(reservationRow(11, "pending", now)...))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservation_extras WHERE reservation_id IN ($1)")).
		WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "extra_service_id", "name", "price"}))

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), &dbmetrics.SqlTxWrapper{Tx: tx})

	_, err = repo.GetByID(ctx, 11)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_DriverScope(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	driverID := int64(3)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE driver_id = $1 ORDER BY departure_date DESC, departure_time DESC, id DESC LIMIT 20")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(reservationRow(1, "assigned", now)...).
			AddRow(reservationRow(2, "on-route", now)...))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE reservation_id IN ($1,$2)")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "extra_service_id", "name", "price"}))

	list, err := repo.List(context.Background(), domain.ReservationFilter{DriverID: &driverID, Limit: 20})

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.StatusOnRoute, list[1].Status)
	assert.Empty(t, list[0].Extras)
}

func TestUpdateStatus_OptimisticCheck(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = $1, updated_at = NOW(), driver_id = $2 WHERE id = $3 AND status = $4")).
		WithArgs("assigned", int64(3), int64(11), "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = $1")).
		WithArgs("cancelled", "müşteri vazgeçti", int64(11), "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 11, domain.StatusConfirmed, domain.StatusAssigned, StatusUpdate{DriverID: ptr.Ptr(int64(3))})
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), 11, domain.StatusPending, domain.StatusCancelled, StatusUpdate{CancellationReason: ptr.Ptr("müşteri vazgeçti")})
	assert.ErrorIs(t, err, ErrStatusChanged)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDiscount_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET coupon_code = $1, discount_amount = $2")).
		WithArgs("SAVE10", 39.0, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ApplyDiscount(context.Background(), 5, "SAVE10", 39)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}
