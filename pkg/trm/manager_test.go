package trm

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestNewManager_Options(t *testing.T) {
	m := NewManager(nil).(*txManager)
	assert.Nil(t, m.opts)

	m = NewManager(nil, WithIsolation(sql.LevelReadCommitted)).(*txManager)
	if assert.NotNil(t, m.opts) {
		assert.Equal(t, sql.LevelReadCommitted, m.opts.Isolation)
		assert.False(t, m.opts.ReadOnly)
	}
}

func TestDo_ReusesTxFromContext(t *testing.T) {
	m := NewManager(nil)
	tx := &sqlx.Tx{}
	ctx := withTx(context.Background(), tx)

	called := false
	err := m.Do(ctx, func(ctx context.Context) error {
		called = true
		assert.Same(t, tx, ExtractTx(ctx))
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestExtractTx_Empty(t *testing.T) {
	assert.Nil(t, ExtractTx(context.Background()))
}
