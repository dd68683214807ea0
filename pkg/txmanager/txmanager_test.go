package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfkayan044/securedrive-sub000/pkg/dbmetrics"
)

func TestTransactionManager(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mgr := NewTransactionManager(dbmetrics.Wrap(db, nil, "test"))
	ctx := context.Background()

	t.Run("Commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := mgr.DoSerializable(ctx, func(txCtx context.Context) error {
			assert.True(t, dbmetrics.IsInTransaction(txCtx))
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("RollbackOnError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := mgr.Do(ctx, func(context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("NestedReusesTransaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := mgr.Do(ctx, func(txCtx context.Context) error {
			return mgr.Do(txCtx, func(context.Context) error { return nil })
		})
		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
