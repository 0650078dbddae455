package producer

import (
	"context"
	"time"

	"go-leave/internal/messaging/kafka"

	"go.uber.org/zap"
)

const outboxBatchSize = 50

// ProcessOutboxEvents relays pending outbox rows every pollInterval until ctx is done.
// The first batch runs immediately so rows written while the worker was down go out on start.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if _, err := relayBatch(ctx, repo, writer, log); err != nil && ctx.Err() == nil {
			log.Error("relay outbox batch failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
		}
	}
}

type batchResult struct {
	sent   int
	failed int
}

func relayBatch(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	log *zap.Logger,
) (batchResult, error) {
	var res batchResult

	pending, err := repo.ListPending(ctx, outboxBatchSize)
	if err != nil || len(pending) == 0 {
		return res, err
	}

	for _, event := range pending {
		if ctx.Err() != nil {
			break
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			res.failed++
			log.Warn("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				log.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark outbox sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		res.sent++
	}

	log.Info("outbox batch relayed",
		zap.Int("pending", len(pending)),
		zap.Int("sent", res.sent),
		zap.Int("failed", res.failed),
	)
	return res, nil
}
