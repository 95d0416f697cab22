package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/calendarutil"
	snapshoterrors "go-workforce/internal/snapshot/errors"
	"go-workforce/internal/user"
	"go-workforce/internal/workload"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Upsert makes re-runs for the same week overwrite the existing row
	// instead of failing with a conflict.
	Upsert       bool
	FanOutLimit  int
	BatchTimeout time.Duration
}

var DefaultOptions = Options{
	Upsert:       true,
	FanOutLimit:  8,
	BatchTimeout: 60 * time.Second,
}

//go:generate mockgen -source=snapshot_service.go -destination=mock/snapshot_service_mock.go -package=mock
type Service interface {
	Snapshot(ctx context.Context, userID string, at time.Time) (SnapshotResponse, error)
	GenerateForTeam(ctx context.Context, userIDs []string, at time.Time) (TeamSnapshotResult, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]SnapshotResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	outboxRepo  kafka.OutboxRepository
	workloadSvc workload.Service
	userRepo    user.Repository
	rdb         *redis.Client
	opts        Options
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	workloadSvc workload.Service,
	userRepo user.Repository,
	rdb *redis.Client,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("snapshot.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("snapshot.service")
	}
	if opts.FanOutLimit <= 0 {
		opts.FanOutLimit = DefaultOptions.FanOutLimit
	}
	if opts.BatchTimeout <= 0 {
		opts.BatchTimeout = DefaultOptions.BatchTimeout
	}
	return &service{
		db:          db,
		repo:        repo,
		outboxRepo:  outboxRepo,
		workloadSvc: workloadSvc,
		userRepo:    userRepo,
		rdb:         rdb,
		opts:        opts,
		logger:      l,
	}
}

// Snapshot measures the calendar week containing at and persists the
// rollup, keyed by the week's Sunday. The outbox event commits with the
// service transaction; the row write goes through the repository's own
// connection. Cache invalidation is best-effort.
func (s *service) Snapshot(ctx context.Context, userID string, at time.Time) (SnapshotResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return SnapshotResponse{}, snapshoterrors.ErrInvalidUserID
	}

	weekStart, weekEnd := calendarutil.WeekBounds(at)

	summary, err := s.workloadSvc.Analyze(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return SnapshotResponse{}, err
	}

	snap := &WorkloadSnapshot{
		ID:                    uuid.New(),
		UserID:                userUUID,
		SnapshotDate:          weekStart,
		TotalAllocatedHours:   summary.TotalAllocatedHours,
		ActualWorkedHours:     summary.ActualWorkedHours,
		AvailableHours:        summary.AvailableHours,
		UtilizationPercentage: summary.UtilizationPercent,
		OverallocationHours:   summary.OverallocationHours,
		ActiveProjectsCount:   summary.ActiveProjectsCount,
		ActiveTasksCount:      summary.ActiveTasksCount,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SnapshotResponse{}, apperror.ComputationUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if s.opts.Upsert {
		err = qtx.Upsert(ctx, snap)
	} else {
		err = qtx.Insert(ctx, snap)
	}
	if err != nil {
		if errors.Is(err, snapshoterrors.ErrSnapshotExists) {
			return SnapshotResponse{}, err
		}
		s.logger.Error("persist snapshot failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return SnapshotResponse{}, apperror.ComputationUnavailable(err)
	}

	if err := s.enqueueCreatedEvent(ctx, tx, snap); err != nil {
		s.logger.Error("enqueue snapshot event failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return SnapshotResponse{}, apperror.ComputationUnavailable(err)
	}

	if err := tx.Commit(); err != nil {
		return SnapshotResponse{}, apperror.ComputationUnavailable(err)
	}

	s.invalidateTeamCache(ctx, weekStart, weekEnd)

	s.logger.Info("snapshot persisted",
		zap.String("user_id", userID),
		zap.String("week_start", weekStart.Format("2006-01-02")),
		zap.Float64("utilization", snap.UtilizationPercentage),
	)
	return mapToResponse(snap), nil
}

// GenerateForTeam snapshots every listed user concurrently. An empty list
// means all active users. Individual failures are collected, not fatal.
func (s *service) GenerateForTeam(ctx context.Context, userIDs []string, at time.Time) (TeamSnapshotResult, error) {
	if len(userIDs) == 0 {
		ids, err := s.userRepo.ListActiveIDs(ctx)
		if err != nil {
			s.logger.Error("list active users failed", zap.Error(err))
			return TeamSnapshotResult{}, apperror.ComputationUnavailable(err)
		}
		userIDs = ids
	}
	if len(userIDs) == 0 {
		return TeamSnapshotResult{Snapshots: []SnapshotResponse{}}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.BatchTimeout)
	defer cancel()

	var (
		mu        sync.Mutex
		snapshots = make([]SnapshotResponse, 0, len(userIDs))
		failed    []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FanOutLimit)

	for _, id := range userIDs {
		id := id
		g.Go(func() error {
			resp, err := s.Snapshot(gctx, id, at)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Warn("team snapshot member failed",
					zap.String("user_id", id),
					zap.Error(err),
				)
				failed = append(failed, id)
				return nil
			}
			snapshots = append(snapshots, resp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return TeamSnapshotResult{}, apperror.ComputationUnavailable(err)
	}

	return TeamSnapshotResult{Snapshots: snapshots, FailedUserIDs: failed}, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, limit int) ([]SnapshotResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, snapshoterrors.ErrInvalidUserID
	}

	snaps, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Error("list snapshots failed", zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.ComputationUnavailable(err)
	}

	responses := make([]SnapshotResponse, 0, len(snaps))
	for i := range snaps {
		responses = append(responses, mapToResponse(&snaps[i]))
	}
	return responses, nil
}

func (s *service) enqueueCreatedEvent(ctx context.Context, tx *sql.Tx, snap *WorkloadSnapshot) error {
	payload, err := json.Marshal(events.SnapshotCreatedEvent{
		EventType:             "snapshot.created",
		SnapshotID:            snap.ID.String(),
		UserID:                snap.UserID.String(),
		SnapshotDate:          snap.SnapshotDate.Format("2006-01-02"),
		UtilizationPercentage: snap.UtilizationPercentage,
		OverallocationHours:   snap.OverallocationHours,
		OccurredAt:            time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "workload_snapshot",
		AggregateID:   snap.UserID.String(),
		EventType:     "snapshot.created",
		Topic:         events.SnapshotCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// invalidateTeamCache drops the cached team rollup for the snapshot week
// so the next read reflects the fresh numbers.
func (s *service) invalidateTeamCache(ctx context.Context, weekStart, weekEnd time.Time) {
	if s.rdb == nil {
		return
	}
	key := workload.TeamCacheKey(
		weekStart.Format("2006-01-02"),
		weekEnd.Format("2006-01-02"),
	)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("team cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func mapToResponse(snap *WorkloadSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:                    snap.ID.String(),
		UserID:                snap.UserID.String(),
		SnapshotDate:          snap.SnapshotDate.Format("2006-01-02"),
		TotalAllocatedHours:   snap.TotalAllocatedHours,
		ActualWorkedHours:     snap.ActualWorkedHours,
		AvailableHours:        snap.AvailableHours,
		UtilizationPercentage: snap.UtilizationPercentage,
		OverallocationHours:   snap.OverallocationHours,
		ActiveProjectsCount:   snap.ActiveProjectsCount,
		ActiveTasksCount:      snap.ActiveTasksCount,
	}
}
