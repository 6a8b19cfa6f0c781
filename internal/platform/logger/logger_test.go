package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpereira/taskflow-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"mixed case", "INFO"},
		{"invalid level falls back to info", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)

			// Setup installs the logger as the process default
			assert.Equal(t, logger, slog.Default())
		})
	}
}

func TestContextLogger(t *testing.T) {
	scoped := slog.Default().With(slog.String("trace_id", "abc123"))

	t.Run("FromContext returns the stored logger", func(t *testing.T) {
		ctx := WithLogger(context.Background(), scoped)
		assert.Equal(t, scoped, FromContext(ctx))
	})

	t.Run("FromContext falls back to the default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("FromContextOrDefault prefers the context logger", func(t *testing.T) {
		def := slog.Default().With(slog.String("component", "test"))
		ctx := WithLogger(context.Background(), scoped)
		assert.Equal(t, scoped, FromContextOrDefault(ctx, def))
	})

	t.Run("FromContextOrDefault uses the provided default", func(t *testing.T) {
		def := slog.Default().With(slog.String("component", "test"))
		assert.Equal(t, def, FromContextOrDefault(context.Background(), def))
	})

	t.Run("FromContextOrDefault survives a nil default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
	})
}
