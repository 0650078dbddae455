package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/leaveallocation"
	leaveallocationerrors "go-leave/internal/leaveallocation/errors"
	"go-leave/internal/shared/clock"
	usererrors "go-leave/internal/user/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Allocator interface {
	AllocateLeave(ctx context.Context, asOf time.Time, employeeID string) ([]leaveallocation.AllocationResponse, error)
}

type Notifier interface {
	Notify(ctx context.Context, event events.LeaveRequestEvent) error
}

// handleFunc reports whether the message is done and may be committed.
type handleFunc func(ctx context.Context, msg kafkago.Message) bool

var (
	retryBaseDelay = time.Second
	retryMaxDelay  = time.Minute
)

func retryDelay(attempt int) time.Duration {
	d := retryBaseDelay << attempt
	if d <= 0 || d > retryMaxDelay {
		return retryMaxDelay
	}
	return d
}

// handleWithRetry keeps retrying a failed message so the group offset never moves past it.
// It returns false only when ctx is canceled first.
func handleWithRetry(ctx context.Context, msg kafkago.Message, log *zap.Logger, handle handleFunc) bool {
	for attempt := 0; ; attempt++ {
		if handle(ctx, msg) {
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		delay := retryDelay(attempt)
		log.Warn("message handling failed, retrying",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

func consume(ctx context.Context, reader MessageReader, log *zap.Logger, handle handleFunc) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if !handleWithRetry(ctx, msg, log, handle) {
			log.Info("consumer stopped",
				zap.String("topic", msg.Topic),
				zap.Int64("uncommitted_offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}

// ConsumeEmployeeLifecycle grants current-period allocations to newly registered employees.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	allocations Allocator,
	clk clock.Clock,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) bool {
		var event events.EmployeeRegisteredEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_registered event failed", zap.Error(err))
			return true
		}
		if event.EventType != events.EmployeeRegistered {
			return true
		}

		created, err := allocations.AllocateLeave(ctx, clk.Now(), event.EmployeeID)
		if err != nil {
			if errors.Is(err, leaveallocationerrors.ErrAllocationConflict) || errors.Is(err, usererrors.ErrUserNotFound) {
				log.Warn("skip employee_registered event",
					zap.String("employee_id", event.EmployeeID),
					zap.Error(err),
				)
				return true
			}

			log.Error("allocate leave for new employee failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			return false
		}

		log.Info("leave allocated from employee_registered event",
			zap.String("employee_id", event.EmployeeID),
			zap.Int("allocations", len(created)),
		)
		return true
	})
}

// ConsumeLeaveRequestLifecycle mails employees about reviewed and canceled requests.
func ConsumeLeaveRequestLifecycle(
	ctx context.Context,
	reader MessageReader,
	notifier Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_request_lifecycle")
	log.Info("leave request lifecycle consumer started")

	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) bool {
		var event events.LeaveRequestEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave request event failed", zap.Error(err))
			return true
		}

		if err := notifier.Notify(ctx, event); err != nil {
			if errors.Is(err, usererrors.ErrUserNotFound) {
				return true
			}
			log.Error("leave request notification failed",
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			return false
		}

		log.Debug("leave request event handled",
			zap.String("leave_request_id", event.LeaveRequestID),
			zap.String("event_type", event.EventType),
		)
		return true
	})
}
