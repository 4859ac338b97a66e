package cmd

import (
	"context"
	"net/http"
	"testing"
	"time"

	"movie-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewServer_UsesConfiguredTimeouts(t *testing.T) {
	config := &utils.Config{
		App:  utils.AppConfig{Port: "9000"},
		HTTP: utils.HTTPConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 7 * time.Second},
	}

	srv := newServer(http.NotFoundHandler(), config)

	assert.Equal(t, ":9000", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 7*time.Second, srv.WriteTimeout)
	assert.Equal(t, 10*time.Second, srv.IdleTimeout)
}

func TestServe_StopsWhenContextCancelled(t *testing.T) {
	config := &utils.Config{
		App:  utils.AppConfig{Port: "0"},
		HTTP: utils.HTTPConfig{ShutdownTimeout: time.Second},
	}
	srv := newServer(http.NotFoundHandler(), config)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, config, zap.NewNop()) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
