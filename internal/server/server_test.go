package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(nil, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.True(t, errors.Is(err, errNoHTTPServer))
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := &server{
		httpServer: newHTTPServer(handler, config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_Run_ReturnsWhenListenFails(t *testing.T) {
	busy := httptest.NewServer(http.NotFoundHandler())
	defer busy.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: busy.Listener.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	done := make(chan struct{})
	go func() {
		s.run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.Fail(t, "server kept running although the address is taken")
	}
}

func TestHTTPServer_Settings(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "localhost:4000", ShutdownTimeout: 3 * time.Second}, logger.Nop())

	assert.Equal(t, "localhost:4000", h.server.Addr)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
	assert.Equal(t, 3*time.Second, h.shutdownTimeout)
}
