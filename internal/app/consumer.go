package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go-leave/internal/config"
	"go-leave/internal/events"
	"go-leave/internal/i18n"
	"go-leave/internal/leaveallocation"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/messaging/kafka/consumer"
	"go-leave/internal/notification"
	"go-leave/internal/period"
	"go-leave/internal/shared/clock"
	"go-leave/internal/shared/connection"
	"go-leave/internal/user"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer handles both lifecycle topics until SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
	if err != nil {
		return err
	}

	translator, err := i18n.New(cfg.DefaultLocale, logger)
	if err != nil {
		return err
	}

	userService := user.NewService(sqlDB, user.NewRepository(gormDB), kafka.NewOutboxRepository(gormDB))
	allocationService := leaveallocation.NewService(
		sqlDB,
		leaveallocation.NewRepository(gormDB),
		period.NewService(sqlDB, period.NewRepository(gormDB)),
		leavetype.NewService(sqlDB, leavetype.NewRepository(gormDB), rdb),
		userService,
	)
	notifier := notification.NewLeaveRequestNotifier(notification.NewMailer(cfg), userService, translator)

	employeeReader := newReader(cfg, events.EmployeeLifecycleTopic, "allocation")
	defer employeeReader.Close()
	requestReader := newReader(cfg, events.LeaveRequestLifecycleTopic, "notification")
	defer requestReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumeEmployeeLifecycle(ctx, employeeReader, allocationService, clock.System(), logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeLeaveRequestLifecycle(ctx, requestReader, notifier, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}

func newReader(cfg config.Config, topic, purpose string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          topic,
		GroupID:        cfg.KafkaConsumerGroup + "-" + purpose,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
		MaxWait:        time.Second,
	})
}
