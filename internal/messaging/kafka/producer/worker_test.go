package producer

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-leave/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeOutboxRepo struct {
	pending []kafka.OutboxEvent
	listErr error
	sent    []string
	failed  map[string]string
	onSent  func()
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error { return nil }

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return f.pending, f.listErr
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error {
	f.sent = append(f.sent, id)
	if f.onSent != nil {
		f.onSent()
	}
	return nil
}

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeWriter struct {
	failTopic string
	messages  []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestRelayBatch(t *testing.T) {
	repo := &fakeOutboxRepo{pending: []kafka.OutboxEvent{
		{ID: "evt-1", Topic: "leave.request.lifecycle.v1", AggregateID: "lr-1", EventType: "leave_request_created", Payload: []byte(`{}`)},
		{ID: "evt-2", Topic: "broken.topic", AggregateID: "lr-2", EventType: "leave_request_created", Payload: []byte(`{}`)},
	}}
	writer := &fakeWriter{failTopic: "broken.topic"}

	res, err := relayBatch(context.Background(), repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, batchResult{sent: 1, failed: 1}, res)
	assert.Equal(t, []string{"evt-1"}, repo.sent)
	assert.Equal(t, "broker unavailable", repo.failed["evt-2"])
	assert.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("lr-1"), writer.messages[0].Key)
	assert.Equal(t, "event_type", writer.messages[0].Headers[0].Key)
}

func TestRelayBatch_ListError(t *testing.T) {
	repo := &fakeOutboxRepo{listErr: errors.New("db down")}

	_, err := relayBatch(context.Background(), repo, &fakeWriter{}, zap.NewNop())

	assert.Error(t, err)
}

func TestRelayBatch_StopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &fakeOutboxRepo{pending: []kafka.OutboxEvent{{ID: "evt-1", Topic: "t"}}}
	writer := &fakeWriter{}

	res, err := relayBatch(ctx, repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, batchResult{}, res)
	assert.Empty(t, writer.messages)
}

func TestProcessOutboxEvents_RunsFirstBatchImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	writer := &fakeWriter{}
	repo := &fakeOutboxRepo{
		pending: []kafka.OutboxEvent{{ID: "evt-1", Topic: "t", AggregateID: "lr-1"}},
		onSent:  cancel,
	}

	go func() {
		ProcessOutboxEvents(ctx, repo, writer, zap.NewNop(), time.Hour)
		close(done)
	}()

	<-done
	assert.Equal(t, []string{"evt-1"}, repo.sent)
}
