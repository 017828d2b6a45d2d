package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"debug level", "debug", false},
		{"info level", "info", false},
		{"warn level", "warn", false},
		{"error level", "error", false},
		{"empty defaults to info", "", false},
		{"mixed case accepted", "DEBUG", false},
		{"unknown level rejected", "verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(Config{Level: tt.level})

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// Without a logger in the context the process default comes back
	assert.Equal(t, slog.Default(), FromContext(ctx))

	scoped := slog.Default().With("trace_id", "abc123")
	ctx = WithLogger(ctx, scoped)
	assert.Equal(t, scoped, FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	ctx := context.Background()
	fallback := slog.Default().With("component", "test")

	// Fallback wins when the context is empty
	assert.Equal(t, fallback, FromContextOrDefault(ctx, fallback))

	// The context logger wins when present
	scoped := slog.Default().With("trace_id", "abc123")
	ctx = WithLogger(ctx, scoped)
	assert.Equal(t, scoped, FromContextOrDefault(ctx, fallback))

	// A nil fallback degrades to the process default
	assert.Equal(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
