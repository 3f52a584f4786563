package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/monnas-booking/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.DBExecutor
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	opts     *sql.TxOptions
	beginErr error
	begins   int
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	b.opts = opts
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestDoSerializable_Commit(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, sql.LevelSerializable, beginner.opts.Isolation)
	assert.True(t, beginner.tx.committed)
	assert.False(t, beginner.tx.rolledBack)
}

func TestDoSerializable_RollbackOnError(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)
	boom := errors.New("boom")

	err := m.DoSerializable(context.Background(), func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.True(t, beginner.tx.rolledBack)
	assert.False(t, beginner.tx.committed)
}

func TestDoSerializable_NestedReusesOuterTx(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.begins)
}

func TestDoSerializable_SerializationFailure(t *testing.T) {
	pqErr := &pq.Error{Code: "40001", Message: "could not serialize access"}

	t.Run("on commit", func(t *testing.T) {
		m := NewTransactionManager(&fakeBeginner{tx: &fakeTx{commitErr: pqErr}})
		err := m.DoSerializable(context.Background(), func(context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrSerializationFailure)
	})

	t.Run("inside fn", func(t *testing.T) {
		m := NewTransactionManager(&fakeBeginner{tx: &fakeTx{}})
		err := m.DoSerializable(context.Background(), func(context.Context) error {
			return fmt.Errorf("insert: %w", pqErr)
		})
		assert.ErrorIs(t, err, ErrSerializationFailure)
	})
}

func TestDoSerializable_BeginError(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{beginErr: errors.New("conn refused")})
	err := m.DoSerializable(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBeginTx)
}
