package tracks

import "github.com/cyphera/store-admin/libs/go/logger"

// LogRecorder writes tracking events to the application log
type LogRecorder struct {
	log *logger.StructuredLogger
}

// NewLogRecorder creates a recorder that only logs
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{log: logger.NewStructuredLogger(logger.ComponentTracks)}
}

func (r *LogRecorder) Record(eventName string, properties map[string]interface{}) {
	r.log.LogTrackEvent(eventName, properties)
}
