package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

func TestDoSerializable_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	m := NewTransactionManager(SQLBeginner{DB: db})
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		_, ok := dbmetrics.TxFromContext(ctx)
		assert.True(t, ok)
		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, "UPDATE salon_settings SET name = 'x'")
		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("validation failed")
	m := NewTransactionManager(SQLBeginner{DB: db})
	err = m.Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

	m := NewTransactionManager(SQLBeginner{DB: db})
	err = m.DoReadOnly(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not be called")
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
}

func TestNoopManager_CallsFnWithSameContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")

	var m NoopManager
	called := false
	err := m.DoSerializable(ctx, func(inner context.Context) error {
		called = true
		assert.Equal(t, "v", inner.Value(ctxKey{}))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}
