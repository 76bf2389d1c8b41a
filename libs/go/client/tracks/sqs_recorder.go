package tracks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/cyphera/store-admin/libs/go/logger"
)

// SQSAPI is the part of the SQS client the recorder uses
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// TrackEvent is the message body published for each recorded event
type TrackEvent struct {
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties"`
	Timestamp  int64                  `json:"timestamp"`
}

const sendTimeout = 10 * time.Second

// SQSRecorder publishes tracking events to an SQS queue. Sends run in the
// background and failures are logged, never returned.
type SQSRecorder struct {
	client   SQSAPI
	queueURL string
	now      func() time.Time
	log      *logger.StructuredLogger
	wg       sync.WaitGroup
}

// NewSQSRecorder creates a recorder publishing to queueURL
func NewSQSRecorder(client SQSAPI, queueURL string) *SQSRecorder {
	return &SQSRecorder{
		client:   client,
		queueURL: queueURL,
		now:      time.Now,
		log:      logger.NewStructuredLogger(logger.ComponentTracks),
	}
}

func (r *SQSRecorder) Record(eventName string, properties map[string]interface{}) {
	body, err := json.Marshal(TrackEvent{
		Name:       eventName,
		Properties: properties,
		Timestamp:  r.now().Unix(),
	})
	if err != nil {
		r.log.WithField("event_name", eventName).Error("Failed to encode track event", err)
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		_, err := r.client.SendMessage(ctx, &sqs.SendMessageInput{
			QueueUrl:    aws.String(r.queueURL),
			MessageBody: aws.String(string(body)),
			MessageAttributes: map[string]types.MessageAttributeValue{
				"EventName": {
					StringValue: aws.String(eventName),
					DataType:    aws.String("String"),
				},
			},
		})
		if err != nil {
			r.log.WithField("event_name", eventName).Error("Failed to publish track event", err)
			return
		}
		r.log.LogTrackEvent(eventName, properties)
	}()
}

// Wait blocks until every in-flight send has finished
func (r *SQSRecorder) Wait() {
	r.wg.Wait()
}
