package notices

import (
	"sync"

	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/cyphera/store-admin/libs/go/types/business"
	"github.com/google/uuid"
)

// Queue collects notices until the dashboard drains them
type Queue struct {
	mu      sync.Mutex
	notices []business.Notice
	log     *logger.StructuredLogger
}

// NewQueue creates an empty notice queue
func NewQueue() *Queue {
	return &Queue{log: logger.NewStructuredLogger(logger.ComponentNotices)}
}

// Notify queues a notice
func (q *Queue) Notify(severity, message string) {
	notice := business.Notice{
		ID:       uuid.New().String(),
		Severity: severity,
		Message:  message,
	}

	q.mu.Lock()
	q.notices = append(q.notices, notice)
	q.mu.Unlock()

	q.log.WithFields(map[string]interface{}{
		"notice_id": notice.ID,
		"severity":  severity,
	}).Info(message)
}

// Pending returns the queued notices without removing them
func (q *Queue) Pending() []business.Notice {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]business.Notice, len(q.notices))
	copy(out, q.notices)
	return out
}

// Drain returns and removes every queued notice
func (q *Queue) Drain() []business.Notice {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.notices
	q.notices = nil
	if out == nil {
		out = []business.Notice{}
	}
	return out
}
