package logger

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = previous })
	return logs
}

func TestStructuredLogger_Fields(t *testing.T) {
	logs := observeLogs(t)

	base := NewStructuredLogger(ComponentPayments)
	child := base.WithField("payment_method", "stripe").WithCorrelationID("abc-123")
	child.Info("toggled")
	base.Info("untouched")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "payments_task", fields["component"])
	assert.Equal(t, "stripe", fields["payment_method"])
	assert.Equal(t, "abc-123", fields["correlation_id"])

	// WithField returns a copy
	assert.NotContains(t, entries[1].ContextMap(), "payment_method")
}

func TestStructuredLogger_WithCorrelationID_Empty(t *testing.T) {
	sl := NewStructuredLogger(ComponentAPI)
	assert.Same(t, sl, sl.WithCorrelationID(""))
}

func TestStructuredLogger_LogOperation(t *testing.T) {
	logs := observeLogs(t)
	sl := NewStructuredLogger(ComponentCharts)

	require.NoError(t, sl.LogOperation("prepare_chart", func() error { return nil }))

	err := sl.LogOperation("prepare_chart", func() error { return errors.New("bad data") })
	require.EqualError(t, err, "bad data")

	failed := logs.FilterMessage("Operation failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, "prepare_chart", failed[0].ContextMap()["operation"])
	assert.Equal(t, 1, logs.FilterMessage("Operation completed").Len())
}

func TestStructuredLogger_LogPaymentMethodTransition(t *testing.T) {
	logs := observeLogs(t)

	NewStructuredLogger(ComponentPayments).LogPaymentMethodTransition("bacs", "configure", map[string]interface{}{
		"mode": "inline",
	})

	entries := logs.FilterMessage("Payment method transition").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "bacs", fields["payment_method"])
	assert.Equal(t, "configure", fields["transition"])
	assert.Equal(t, "inline", fields["mode"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestInitLogger(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	InitLogger("prod")
	require.NotNil(t, Log)
	assert.False(t, Log.Core().Enabled(zapcore.DebugLevel))

	t.Setenv("LOG_LEVEL", "debug")
	InitLogger("local")
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))
}
