package app

import (
	"database/sql"
	"os"
	"time"

	"go-workforce/internal/allocation"
	"go-workforce/internal/availability"
	"go-workforce/internal/capacity"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/middleware"
	"go-workforce/internal/recommendation"
	"go-workforce/internal/skill"
	"go-workforce/internal/snapshot"
	"go-workforce/internal/task"
	"go-workforce/internal/timeentry"
	"go-workforce/internal/user"
	"go-workforce/internal/workload"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	allocationRepo := allocation.NewRepository(gormDB)
	availabilityRepo := availability.NewRepository(gormDB)
	capacityRepo := capacity.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	skillRepo := skill.NewRepository(gormDB)
	snapshotRepo := snapshot.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	timeEntryRepo := timeentry.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- Services ---
	capacityService := capacity.NewService(db, capacityRepo, availabilityRepo, capacityOptionsFromEnv())
	workloadService := workload.NewService(
		capacityService,
		allocationRepo,
		timeEntryRepo,
		taskRepo,
		userRepo,
		workload.Options{Policy: workloadPolicyFromEnv()},
	)
	recommendationService := recommendation.NewService(skillRepo, workloadService, allocationRepo)
	snapshotService := snapshot.NewService(
		db,
		snapshotRepo,
		outboxRepo,
		workloadService,
		userRepo,
		rdb,
		snapshot.Options{Upsert: os.Getenv("SNAPSHOT_UPSERT") != "false"},
	)

	// --- Handlers ---
	capacityHandler := capacity.NewHandler(capacityService)
	workloadHandler := workload.NewHandler(workloadService, rdb)
	recommendationHandler := recommendation.NewHandler(recommendationService)
	snapshotHandler := snapshot.NewHandler(snapshotService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(10, 20))
	{
		capacity.RegisterRoutes(api, capacityHandler)
		snapshot.RegisterRoutes(api, snapshotHandler)
		workload.RegisterRoutes(api, workloadHandler)
		recommendation.RegisterRoutes(api, recommendationHandler)
	}

	return nil
}

// capacityOptionsFromEnv is shared by the API and worker builders so both
// processes resolve capacity identically for the same week.
func capacityOptionsFromEnv() capacity.Options {
	return capacity.Options{
		Defaults:               capacity.StandardDefaults,
		ClampNegativeAvailable: os.Getenv("CLAMP_NEGATIVE_AVAILABLE") == "true",
	}
}

func workloadPolicyFromEnv() workload.AggregationPolicy {
	if os.Getenv("AGGREGATION_POLICY") == string(workload.ProrateOverlap) {
		return workload.ProrateOverlap
	}
	return workload.CountFull
}

func snapshotIntervalFromEnv() time.Duration {
	raw := os.Getenv("SNAPSHOT_INTERVAL")
	if raw == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}
