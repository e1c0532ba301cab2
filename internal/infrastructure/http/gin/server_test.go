package gin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bannerstore/internal/config"
	"bannerstore/pkg/logger"
)

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second}
	srv := NewServer(cfg, NewEngine(logger.NewNop(), nil), logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunWithoutEngine(t *testing.T) {
	srv := NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0}, nil, logger.NewNop())
	assert.EqualError(t, srv.Run(context.Background()), "gin engine is nil")
}
