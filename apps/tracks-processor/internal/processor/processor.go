package processor

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/cyphera/store-admin/libs/go/client/tracks"
	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrInvalidEvent marks a message body that can never be stored
var ErrInvalidEvent = errors.New("invalid tracking event")

// StoredEvent is one tracking event as persisted
type StoredEvent struct {
	MessageID  string
	Source     string
	Name       string
	Properties map[string]interface{}
	RecordedAt int64
	ReceivedAt time.Time
}

// EventStore persists tracking events. Save reports false when the message
// was already stored.
type EventStore interface {
	Save(ctx context.Context, event StoredEvent) (bool, error)
}

// Processor drains tracking events published by the API's SQS recorder
type Processor struct {
	store EventStore
	now   func() time.Time
	log   *logger.StructuredLogger
}

// New creates a processor writing to store
func New(store EventStore) *Processor {
	return &Processor{
		store: store,
		now:   time.Now,
		log:   logger.NewStructuredLogger(logger.ComponentProcessor),
	}
}

// HandleSQSEvent stores every record of the batch. Records that cannot be
// stored are returned as batch item failures so SQS redelivers only those;
// malformed bodies are dropped since a retry cannot fix them.
func (p *Processor) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	logger.Info("Tracks processor handling SQS event", zap.Int("record_count", len(event.Records)))

	var response events.SQSEventResponse
	stored, duplicates, dropped := 0, 0, 0

	for _, record := range event.Records {
		inserted, err := p.processRecord(ctx, record)
		switch {
		case errors.Is(err, ErrInvalidEvent):
			dropped++
			logger.Warn("Dropping malformed tracking event",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
		case err != nil:
			logger.Error("Failed to store tracking event",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		case inserted:
			stored++
		default:
			duplicates++
		}
	}

	logger.Info("Tracks processing completed",
		zap.Int("total", len(event.Records)),
		zap.Int("stored", stored),
		zap.Int("duplicates", duplicates),
		zap.Int("dropped", dropped),
		zap.Int("failed", len(response.BatchItemFailures)))

	return response, nil
}

func (p *Processor) processRecord(ctx context.Context, record events.SQSMessage) (bool, error) {
	event, err := decodeEvent(record)
	if err != nil {
		return false, err
	}
	event.ReceivedAt = p.now().UTC()

	var inserted bool
	err = p.log.WithField("message_id", record.MessageId).
		WithField("event_name", event.Name).
		LogOperation("store_track_event", func() error {
			var saveErr error
			inserted, saveErr = p.store.Save(ctx, event)
			return saveErr
		})
	return inserted, err
}

func decodeEvent(record events.SQSMessage) (StoredEvent, error) {
	var body tracks.TrackEvent
	if err := json.Unmarshal([]byte(record.Body), &body); err != nil {
		return StoredEvent{}, errors.Wrap(ErrInvalidEvent, err.Error())
	}
	if body.Name == "" {
		return StoredEvent{}, errors.Wrap(ErrInvalidEvent, "missing event name")
	}
	if attr, ok := record.MessageAttributes["EventName"]; ok && attr.StringValue != nil && *attr.StringValue != body.Name {
		return StoredEvent{}, errors.Wrapf(ErrInvalidEvent, "attribute %q does not match body %q", *attr.StringValue, body.Name)
	}
	if body.Properties == nil {
		body.Properties = map[string]interface{}{}
	}

	return StoredEvent{
		MessageID:  record.MessageId,
		Source:     record.EventSourceARN,
		Name:       body.Name,
		Properties: body.Properties,
		RecordedAt: body.Timestamp,
	}, nil
}
