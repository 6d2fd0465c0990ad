package main

import (
	"bufio"
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "zenith-hr", Env: "test", LogLevel: "error", FrontendURL: "http://localhost:3000"},
		JWT: config.JWTConfig{Secret: "test-secret", AccessExpiration: "1h"},
		Store: config.StoreConfig{
			Timezone:          "UTC",
			DeductionRate:     decimal.NewFromFloat(0.15),
			SeedFixtures:      true,
			DefaultEmployeeID: "emp1",
		},
	}
}

func TestServer_ShutdownEndsEventStreams(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := testConfig()
	server, scheduler, err := newServer(ctx, cfg, newLogger(cfg))
	require.NoError(t, err)
	defer scheduler.Stop()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "event: connected\n", line)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancelShutdown()

	start := time.Now()
	require.NoError(t, server.Shutdown(shutdownCtx))
	assert.Less(t, time.Since(start), 3*time.Second)
	assert.ErrorIs(t, <-serveErr, http.ErrServerClosed)

	_, err = io.ReadAll(reader)
	assert.NoError(t, err)
}
