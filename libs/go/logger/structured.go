package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentAPI        LogComponent = "api"
	ComponentCharts     LogComponent = "charts"
	ComponentPayments   LogComponent = "payments_task"
	ComponentMarketing  LogComponent = "marketing"
	ComponentOptions    LogComponent = "options"
	ComponentTracks     LogComponent = "tracks"
	ComponentNotices    LogComponent = "notices"
	ComponentPlugins    LogComponent = "plugins"
	ComponentMiddleware LogComponent = "middleware"
	ComponentServer     LogComponent = "server"
	ComponentProcessor  LogComponent = "tracks_processor"
)

// StructuredLogger attaches a component name and a fixed set of fields to
// every entry it writes.
type StructuredLogger struct {
	component LogComponent
	fields    map[string]interface{}
}

// NewStructuredLogger creates a new structured logger for a specific component
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	return &StructuredLogger{
		component: component,
		fields:    make(map[string]interface{}),
	}
}

// WithField adds a field to the log context
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.fields[key] = value
	return newLogger
}

// WithFields adds multiple fields to the log context
func (sl *StructuredLogger) WithFields(fields map[string]interface{}) *StructuredLogger {
	newLogger := sl.clone()
	for k, v := range fields {
		newLogger.fields[k] = v
	}
	return newLogger
}

// WithCorrelationID adds correlation ID to the log context
func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	if correlationID == "" {
		return sl
	}
	return sl.WithField("correlation_id", correlationID)
}

func (sl *StructuredLogger) clone() *StructuredLogger {
	newFields := make(map[string]interface{}, len(sl.fields))
	for k, v := range sl.fields {
		newFields[k] = v
	}
	return &StructuredLogger{component: sl.component, fields: newFields}
}

func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := make([]zapcore.Field, 0, len(sl.fields)+1)
	fields = append(fields, zap.String("component", string(sl.component)))
	for key, value := range sl.fields {
		fields = append(fields, zap.Any(key, value))
	}
	return fields
}

// Log is read on every call so a logger re-initialized after construction
// (InitLogger in main) is picked up.
func (sl *StructuredLogger) base() *zap.Logger {
	return Log
}

// Debug logs a debug message with structured context
func (sl *StructuredLogger) Debug(msg string) {
	sl.base().Debug(msg, sl.buildFields()...)
}

// Info logs an info message with structured context
func (sl *StructuredLogger) Info(msg string) {
	sl.base().Info(msg, sl.buildFields()...)
}

// Warn logs a warning message with structured context
func (sl *StructuredLogger) Warn(msg string) {
	sl.base().Warn(msg, sl.buildFields()...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.base().Error(msg, fields...)
}

// LogOperation logs the start and end of an operation with timing
func (sl *StructuredLogger) LogOperation(operation string, fn func() error) error {
	start := time.Now()
	opLogger := sl.WithField("operation", operation)

	opLogger.Debug("Operation started")

	err := fn()
	finalLogger := opLogger.WithField("duration", time.Since(start))
	if err != nil {
		finalLogger.Error("Operation failed", err)
	} else {
		finalLogger.Debug("Operation completed")
	}

	return err
}

// LogOptionWrite logs the outcome of an options store write
func (sl *StructuredLogger) LogOptionWrite(names []string, duration time.Duration, err error) {
	l := sl.WithFields(map[string]interface{}{
		"option_names":   names,
		"write_duration": duration,
	})
	if err != nil {
		l.Error("Option write failed", err)
		return
	}
	l.Debug("Option write completed")
}

// LogTrackEvent logs a recorded tracking event
func (sl *StructuredLogger) LogTrackEvent(eventName string, properties map[string]interface{}) {
	sl.WithFields(map[string]interface{}{
		"event_name":       eventName,
		"event_properties": properties,
	}).Info("Track event recorded")
}

// LogPaymentMethodTransition logs a payment method state change
func (sl *StructuredLogger) LogPaymentMethodTransition(methodKey, transition string, metadata map[string]interface{}) {
	fields := map[string]interface{}{
		"payment_method": methodKey,
		"transition":     transition,
	}
	for k, v := range metadata {
		fields[k] = v
	}
	sl.WithFields(fields).Info("Payment method transition")
}
