package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-workforce/internal/allocation"
	"go-workforce/internal/availability"
	"go-workforce/internal/capacity"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/messaging/kafka/producer"
	"go-workforce/internal/shared/connection"
	"go-workforce/internal/snapshot"
	"go-workforce/internal/task"
	"go-workforce/internal/timeentry"
	"go-workforce/internal/user"
	"go-workforce/internal/workload"

	"go.uber.org/zap"
)

// RunWorker hosts the background side of the engine: the outbox producer
// that drains snapshot events to kafka and the scheduler that snapshots
// every active user on an interval.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// Same analysis stack as the API; the scheduler reuses it verbatim so
	// persisted snapshots match what the dashboard reads.
	allocationRepo := allocation.NewRepository(gormDB)
	availabilityRepo := availability.NewRepository(gormDB)
	capacityRepo := capacity.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	snapshotRepo := snapshot.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	timeEntryRepo := timeentry.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	capacityService := capacity.NewService(sqlDB, capacityRepo, availabilityRepo, capacityOptionsFromEnv())
	workloadService := workload.NewService(
		capacityService,
		allocationRepo,
		timeEntryRepo,
		taskRepo,
		userRepo,
		workload.Options{Policy: workloadPolicyFromEnv()},
	)
	snapshotService := snapshot.NewService(
		sqlDB,
		snapshotRepo,
		outboxRepo,
		workloadService,
		userRepo,
		redisClient,
		snapshot.Options{Upsert: os.Getenv("SNAPSHOT_UPSERT") != "false"},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	go snapshot.RunScheduler(ctx, snapshotService, logger, snapshotIntervalFromEnv())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
