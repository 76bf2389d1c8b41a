package processor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu     sync.Mutex
	saved  map[string]StoredEvent
	failOn map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: map[string]StoredEvent{}, failOn: map[string]error{}}
}

func (f *fakeStore) Save(_ context.Context, event StoredEvent) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOn[event.MessageID]; err != nil {
		return false, err
	}
	if _, ok := f.saved[event.MessageID]; ok {
		return false, nil
	}
	f.saved[event.MessageID] = event
	return true, nil
}

func sqsMessage(id, body string) events.SQSMessage {
	return events.SQSMessage{
		MessageId:      id,
		Body:           body,
		EventSourceARN: "arn:aws:sqs:us-east-1:123456789012:store-admin-events",
	}
}

func newTestProcessor(store EventStore) *Processor {
	p := New(store)
	p.now = func() time.Time { return time.Date(2020, 9, 13, 12, 26, 40, 0, time.UTC) }
	return p
}

func TestHandleSQSEvent_StoresEvents(t *testing.T) {
	store := newFakeStore()
	p := newTestProcessor(store)

	resp, err := p.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		sqsMessage("m-1", `{"name":"tasklist_payment_toggle","properties":{"enabled":true,"payment_method":"stripe"},"timestamp":1600000000}`),
		sqsMessage("m-2", `{"name":"tasklist_payment_skip_task","timestamp":1600000001}`),
	}})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)

	require.Len(t, store.saved, 2)
	toggle := store.saved["m-1"]
	assert.Equal(t, "tasklist_payment_toggle", toggle.Name)
	assert.Equal(t, "stripe", toggle.Properties["payment_method"])
	assert.Equal(t, int64(1600000000), toggle.RecordedAt)
	assert.Equal(t, "arn:aws:sqs:us-east-1:123456789012:store-admin-events", toggle.Source)
	assert.Equal(t, time.Date(2020, 9, 13, 12, 26, 40, 0, time.UTC), toggle.ReceivedAt)

	assert.NotNil(t, store.saved["m-2"].Properties)
}

func TestHandleSQSEvent_RedeliveryIsIgnored(t *testing.T) {
	store := newFakeStore()
	p := newTestProcessor(store)
	msg := sqsMessage("m-1", `{"name":"tasklist_payment_done","properties":{"configured":["cod"]}}`)

	_, err := p.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{msg}})
	require.NoError(t, err)
	resp, err := p.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{msg}})
	require.NoError(t, err)

	assert.Empty(t, resp.BatchItemFailures)
	assert.Len(t, store.saved, 1)
}

func TestHandleSQSEvent_Failures(t *testing.T) {
	store := newFakeStore()
	store.failOn["m-2"] = errors.New("connection reset")
	p := newTestProcessor(store)

	mismatched := sqsMessage("m-4", `{"name":"tasklist_payment_setup"}`)
	mismatched.MessageAttributes = map[string]events.SQSMessageAttribute{
		"EventName": {StringValue: strPtr("tasklist_payment_done"), DataType: "String"},
	}

	resp, err := p.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		sqsMessage("m-1", `{"name":"tasklist_payment_connect_method","properties":{"payment_method":"bacs"}}`),
		sqsMessage("m-2", `{"name":"tasklist_payment_install_method","properties":{"plugins":["woocommerce-gateway-stripe"]}}`),
		sqsMessage("m-3", `not json`),
		mismatched,
		sqsMessage("m-5", `{"properties":{}}`),
	}})
	require.NoError(t, err)

	require.Len(t, resp.BatchItemFailures, 1)
	assert.Equal(t, "m-2", resp.BatchItemFailures[0].ItemIdentifier)
	assert.Len(t, store.saved, 1)
	assert.Contains(t, store.saved, "m-1")
}

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		attr    *string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"tasklist_payment_toggle","properties":{"enabled":false}}`},
		{name: "matching attribute", body: `{"name":"tasklist_payment_toggle"}`, attr: strPtr("tasklist_payment_toggle")},
		{name: "mismatched attribute", body: `{"name":"tasklist_payment_toggle"}`, attr: strPtr("other"), wantErr: true},
		{name: "missing name", body: `{"timestamp":1}`, wantErr: true},
		{name: "malformed", body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := sqsMessage("id", tt.body)
			if tt.attr != nil {
				msg.MessageAttributes = map[string]events.SQSMessageAttribute{"EventName": {StringValue: tt.attr}}
			}

			_, err := decodeEvent(msg)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidEvent))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func strPtr(s string) *string { return &s }
