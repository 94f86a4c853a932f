package tracing_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/SergeyBogomolovv/sneaker-store/internal/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Disabled(t *testing.T) {
	tp, err := tracing.New(context.Background(), config.Tracing{ServiceName: "sneaker-store"}, "development")
	require.NoError(t, err)
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestNew_Enabled(t *testing.T) {
	// экспортер подключается лениво, поэтому коллектор не нужен
	tp, err := tracing.New(context.Background(), config.Tracing{Endpoint: "localhost:4317", ServiceName: "sneaker-store"}, "development")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = tp.Shutdown(ctx)
}
