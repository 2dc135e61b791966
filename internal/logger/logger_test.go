package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/threads-backend/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, zerolog.InfoLevel, "threads-backend", "test")

	log.Debug().Msg("dropped")
	log.Info().Str("event_type", "organization.created").Msg("webhook received")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "threads-backend", line["service"])
	assert.Equal(t, "test", line["environment"])
	assert.Equal(t, "organization.created", line["event_type"])
	assert.Equal(t, "webhook received", line["message"])
}

func TestNewLoggerService_disabledWithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	require.NotNil(t, svc)
	assert.Nil(t, svc.GetApplication())

	// Shutdown on a disabled service is a no-op.
	svc.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestWithTraceContext_nilTransaction(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, zerolog.InfoLevel, "svc", "test")

	out := WithTraceContext(log, nil)
	out.Info().Msg("x")
	assert.NotContains(t, buf.String(), "trace.id")
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			require.Equal(t, int(tt.want), GetPgxTraceLogLevel(tt.level))
		})
	}
}
