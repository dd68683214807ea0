package customer

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "email", "phone", "loyalty_points", "reservation_count",
			"language", "email_verified", "phone_verified", "created_at", "updated_at",
		}).AddRow(7, "Ayşe Yılmaz", "ayse@example.com", nil, 120, 4, "tr", true, false, now, now))

	c, err := NewRepository(db).GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 4, c.ReservationCount)
	assert.Nil(t, c.Phone)
	assert.Equal(t, "tr", c.Language)
}

func TestIncrementReservationCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET reservation_count = reservation_count + 1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET reservation_count = reservation_count + 1")).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.IncrementReservationCount(context.Background(), 7))
	assert.ErrorIs(t, repo.IncrementReservationCount(context.Background(), 8), ErrCustomerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
