package config_test

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
	"github.com/AntonStoeckl/bookstore-go/config"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("bookserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func Test_ParseFlags_Defaults(t *testing.T) {
	cfg, err := config.ParseFlags(newFlagSet(), nil)

	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.BindAddr)
	assert.Empty(t, cfg.StaticDir)
	assert.False(t, cfg.ObservabilityEnabled)
	assert.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "bookstore", cfg.ServiceName)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, bookstore.AllowDuplicateIDs, cfg.DuplicateIDPolicy())
}

func Test_ParseFlags_AllFlags(t *testing.T) {
	cfg, err := config.ParseFlags(newFlagSet(), []string{
		"-bind", "127.0.0.1:8080",
		"-static-dir", "./static",
		"-reject-duplicate-ids",
		"-observability-enabled",
		"-otlp-endpoint", "collector:4317",
		"-service-name", "books",
		"-log-level", "debug",
		"-shutdown-timeout", "3s",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.BindAddr)
	assert.Equal(t, "./static", cfg.StaticDir)
	assert.True(t, cfg.ObservabilityEnabled)
	assert.Equal(t, "collector:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "books", cfg.ServiceName)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, bookstore.RejectDuplicateIDs, cfg.DuplicateIDPolicy())
}

func Test_ParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected error
	}{
		{"unknown log level", []string{"-log-level", "chatty"}, config.ErrInvalidLogLevel},
		{"negative shutdown timeout", []string{"-shutdown-timeout", "-1s"}, config.ErrInvalidShutdownTimeout},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.ParseFlags(newFlagSet(), tc.args)

			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, cfg)
		})
	}
}

func Test_ParseFlags_UnknownFlag(t *testing.T) {
	_, err := config.ParseFlags(newFlagSet(), []string{"-port", "3000"})

	assert.Error(t, err)
}

func Test_Validate_FillsEmptyValues(t *testing.T) {
	cfg := &config.ServerConfig{}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":3000", cfg.BindAddr)
	assert.Equal(t, "bookstore", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func Test_NewObservabilityProviders_Disabled(t *testing.T) {
	providers, err := config.NewObservabilityProviders(context.Background(), &config.ServerConfig{})

	assert.ErrorIs(t, err, config.ErrObservabilityDisabled)
	assert.Nil(t, providers)
}
