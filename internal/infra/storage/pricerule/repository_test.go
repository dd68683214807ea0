package pricerule

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestFindApplicable(t *testing.T) {
	repo, mock := newMockRepo(t)
	date := time.Date(2025, 7, 1, 15, 0, 0, 0, time.UTC)
	validFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).
		AddRow(7, 1, 2, 3, 180.0, true, validFrom, nil, date, date)

	mock.ExpectQuery(regexp.QuoteMeta("FROM price_rules WHERE")).
		WithArgs(int64(1), true, int64(2), int64(3), "2025-07-01", "2025-07-01").
		WillReturnRows(rows)

	rule, err := repo.FindApplicable(context.Background(), 1, 2, 3, date)

	require.NoError(t, err)
	assert.Equal(t, 180.0, rule.Price)
	assert.Nil(t, rule.ValidTo)
	assert.True(t, rule.AppliesAt(date))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindApplicable_LatestValidFromWins(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY valid_from DESC, id DESC LIMIT 1")).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.FindApplicable(context.Background(), 1, 2, 3, time.Now())

	assert.ErrorIs(t, err, ErrPriceRuleNotFound)
}

func TestList_Filters(t *testing.T) {
	repo, mock := newMockRepo(t)
	from := int64(4)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE from_location_id = $1 AND is_active = $2")).
		WithArgs(from, true).
		WillReturnRows(sqlmock.NewRows(columns))

	rules, err := repo.List(context.Background(), domain.PriceRuleFilter{FromLocation: &from, ActiveOnly: true})

	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE price_rules SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.PriceRule{ID: 9, Price: 200, ValidFrom: time.Now()})

	assert.ErrorIs(t, err, ErrPriceRuleNotFound)
}
