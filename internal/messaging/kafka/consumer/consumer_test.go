package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/leaveallocation"
	leaveallocationerrors "go-leave/internal/leaveallocation/errors"
	"go-leave/internal/shared/clock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	messages  []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.messages) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func init() {
	retryBaseDelay = time.Millisecond
	retryMaxDelay = 5 * time.Millisecond
}

type fakeAllocator struct {
	calls    []string
	errs     map[string]error
	failures map[string]int
}

func (f *fakeAllocator) AllocateLeave(ctx context.Context, asOf time.Time, employeeID string) ([]leaveallocation.AllocationResponse, error) {
	f.calls = append(f.calls, employeeID)
	if err := f.errs[employeeID]; err != nil {
		return nil, err
	}
	if f.failures[employeeID] > 0 {
		f.failures[employeeID]--
		return nil, errors.New("db unavailable")
	}
	return []leaveallocation.AllocationResponse{{ID: "a-" + employeeID}}, nil
}

type fakeNotifier struct {
	notified []string
	failures int
	err      error
	onFail   func()
}

func (f *fakeNotifier) Notify(ctx context.Context, event events.LeaveRequestEvent) error {
	f.notified = append(f.notified, event.LeaveRequestID)
	if f.failures > 0 {
		f.failures--
		return errors.New("smtp down")
	}
	if f.err != nil && f.onFail != nil {
		f.onFail()
	}
	return f.err
}

func message(t *testing.T, offset int64, payload any) kafkago.Message {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: body}
}

func registered(employeeID string) events.EmployeeRegisteredEvent {
	return events.EmployeeRegisteredEvent{EventType: events.EmployeeRegistered, EmployeeID: employeeID}
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		messages: []kafkago.Message{
			message(t, 1, registered("emp-1")),
			{Offset: 2, Value: []byte("not json")},
			message(t, 3, registered("emp-dup")),
			message(t, 4, registered("emp-down")),
		},
	}
	allocator := &fakeAllocator{
		errs:     map[string]error{"emp-dup": leaveallocationerrors.ErrAllocationConflict},
		failures: map[string]int{"emp-down": 1},
	}

	ConsumeEmployeeLifecycle(ctx, reader, allocator, clock.Fixed(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)), zap.NewNop())

	assert.Equal(t, []string{"emp-1", "emp-dup", "emp-down", "emp-down"}, allocator.calls)
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
}

func TestConsumeLeaveRequestLifecycle(t *testing.T) {
	t.Run("commits handled events", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			cancel: cancel,
			messages: []kafkago.Message{
				message(t, 7, events.LeaveRequestEvent{EventType: events.LeaveRequestReviewed, LeaveRequestID: "lr-1"}),
			},
		}
		notifier := &fakeNotifier{}

		ConsumeLeaveRequestLifecycle(ctx, reader, notifier, zap.NewNop())

		assert.Equal(t, []string{"lr-1"}, notifier.notified)
		assert.Equal(t, []int64{7}, reader.committed)
	})

	t.Run("transient mail failure is retried before commit", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			cancel: cancel,
			messages: []kafkago.Message{
				message(t, 8, events.LeaveRequestEvent{EventType: events.LeaveRequestCanceled, LeaveRequestID: "lr-2"}),
				message(t, 9, events.LeaveRequestEvent{EventType: events.LeaveRequestReviewed, LeaveRequestID: "lr-3"}),
			},
		}
		notifier := &fakeNotifier{failures: 2}

		ConsumeLeaveRequestLifecycle(ctx, reader, notifier, zap.NewNop())

		assert.Equal(t, []string{"lr-2", "lr-2", "lr-2", "lr-3"}, notifier.notified)
		assert.Equal(t, []int64{8, 9}, reader.committed)
	})

	t.Run("shutdown while retrying leaves message uncommitted", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			cancel: cancel,
			messages: []kafkago.Message{
				message(t, 10, events.LeaveRequestEvent{EventType: events.LeaveRequestCanceled, LeaveRequestID: "lr-4"}),
				message(t, 11, events.LeaveRequestEvent{EventType: events.LeaveRequestReviewed, LeaveRequestID: "lr-5"}),
			},
		}
		notifier := &fakeNotifier{err: errors.New("smtp down"), onFail: cancel}

		ConsumeLeaveRequestLifecycle(ctx, reader, notifier, zap.NewNop())

		assert.Equal(t, []string{"lr-4"}, notifier.notified)
		assert.Empty(t, reader.committed)
	})
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, retryBaseDelay, retryDelay(0))
	assert.Equal(t, 2*retryBaseDelay, retryDelay(1))
	assert.Equal(t, retryMaxDelay, retryDelay(10))
	assert.Equal(t, retryMaxDelay, retryDelay(80))
}
