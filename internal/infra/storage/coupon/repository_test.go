package coupon

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
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

func TestGetByCode_CaseSensitiveExactMatch(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM coupons WHERE code = $1")).
		WithArgs("SAVE10").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "SAVE10", "percent", 10.0, nil, true, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM coupons WHERE code = $1")).
		WithArgs("save10").
		WillReturnRows(sqlmock.NewRows(columns))

	coupon, err := repo.GetByCode(context.Background(), "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, domain.DiscountPercent, coupon.DiscountType)
	assert.Nil(t, coupon.ExpiresAt)
	assert.Nil(t, coupon.AssignedUserID)

	_, err = repo.GetByCode(context.Background(), "save10")
	assert.ErrorIs(t, err, ErrCouponNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateCode(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO coupons")).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Coupon{Code: "SAVE10", DiscountType: domain.DiscountAmount, DiscountValue: 20})

	assert.ErrorIs(t, err, ErrCodeTaken)
}

func TestDeactivateExpired(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2025, 8, 1, 3, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE coupons SET is_active = $1, updated_at = NOW() WHERE is_active = $2 AND expires_at IS NOT NULL AND expires_at < $3")).
		WithArgs(false, true, now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeactivateExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
