package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManagerCommit(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectCommit()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tx)

	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestTxManagerBeginError(t *testing.T) {
	mockPool := newMockPool(t)
	beginErr := errors.New("begin failed")
	mockPool.ExpectBegin().WillReturnError(beginErr)

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	require.ErrorIs(t, err, beginErr)
	assert.Nil(t, tx)
}

func TestTxManagerRollback(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectRollback()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, tx.Rollback(context.Background()))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestTxExposesUnderlyingTx(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectRollback()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	require.NoError(t, err)

	pgTx, ok := tx.(*Tx)
	require.True(t, ok)
	assert.NotNil(t, pgTx.PgxTx())

	require.NoError(t, tx.Rollback(context.Background()))
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}
