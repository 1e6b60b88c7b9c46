package logger

import (
	"context"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level    string
		format   string
		env      string
		expected zapcore.Level
	}{
		{"debug", "console", "development", zapcore.DebugLevel},
		{"warn", "json", "staging", zapcore.WarnLevel},
		{"nonsense", "console", "production", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := NewLogger(&config.LoggingConfig{Level: tt.level, Format: tt.format},
				&config.AppConfig{Name: "fieldservice", Environment: tt.env})
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.expected))
			assert.False(t, l.Core().Enabled(tt.expected-1))
		})
	}
}

func TestContextLogger(t *testing.T) {
	fallback := zap.NewNop()
	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	scoped := WithRequest(zap.NewNop(), "GET", "/api/v1/offers", "req-1")
	ctx := NewContext(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx, fallback))
}
