package snapshot_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	kafkaMock "go-workforce/internal/messaging/kafka/mock"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/snapshot"
	snapshoterrors "go-workforce/internal/snapshot/errors"
	snapshotMock "go-workforce/internal/snapshot/mock"
	userMock "go-workforce/internal/user/mock"
	"go-workforce/internal/workload"
	workloadMock "go-workforce/internal/workload/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type snapshotDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   snapshot.Service
	repo      *snapshotMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	workloads *workloadMock.MockService
	users     *userMock.MockRepository
	redisMock redismock.ClientMock
}

func setupSnapshotTest(t *testing.T, opts snapshot.Options, withRedis bool) *snapshotDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := snapshotMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	workloads := workloadMock.NewMockService(ctrl)
	users := userMock.NewMockRepository(ctrl)

	var (
		rdb  *redis.Client
		rdbm redismock.ClientMock
	)
	if withRedis {
		rdb, rdbm = redismock.NewClientMock()
	}

	svc := snapshot.NewService(db, repo, outbox, workloads, users, rdb, opts)

	return &snapshotDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outbox,
		workloads: workloads,
		users:     users,
		redisMock: rdbm,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekSummary(userID string) workload.Summary {
	return workload.Summary{
		UserID:              userID,
		TotalAllocatedHours: 50,
		ActualWorkedHours:   38,
		AvailableHours:      40,
		UnavailableHours:    0,
		TotalCapacityHours:  40,
		UtilizationPercent:  125,
		OverallocationHours: 10,
		IsOverallocated:     true,
		ActiveProjectsCount: 2,
		ActiveTasksCount:    7,
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	userUUID := uuid.New()
	userID := userUUID.String()

	// Wednesday 2025-03-05 sits in the Sunday 03-02 through Saturday
	// 03-08 week.
	at := date(2025, 3, 5)
	weekStart, weekEnd := date(2025, 3, 2), date(2025, 3, 8)

	t.Run("persists week rollup and enqueues event in one transaction", func(t *testing.T) {
		deps := setupSnapshotTest(t, snapshot.Options{Upsert: true}, true)

		deps.workloads.EXPECT().
			Analyze(gomock.Any(), userID, weekStart, weekEnd).
			Return(weekSummary(userID), nil)

		deps.sqlMock.ExpectBegin()

		var persisted *snapshot.WorkloadSnapshot
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snap *snapshot.WorkloadSnapshot) error {
				persisted = snap
				return nil
			})

		var enqueued kafka.OutboxEvent
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event kafka.OutboxEvent) error {
				enqueued = event
				return nil
			})

		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(workload.TeamCacheKey("2025-03-02", "2025-03-08")).SetVal(1)

		resp, err := deps.service.Snapshot(ctx, userID, at)

		assert.NoError(t, err)
		assert.NotNil(t, persisted)
		assert.Equal(t, userUUID, persisted.UserID)
		assert.Equal(t, weekStart, persisted.SnapshotDate)
		assert.Equal(t, 50.0, persisted.TotalAllocatedHours)
		assert.Equal(t, 38.0, persisted.ActualWorkedHours)
		assert.Equal(t, 40.0, persisted.AvailableHours)
		assert.Equal(t, 125.0, persisted.UtilizationPercentage)
		assert.Equal(t, 10.0, persisted.OverallocationHours)
		assert.Equal(t, 2, persisted.ActiveProjectsCount)
		assert.Equal(t, 7, persisted.ActiveTasksCount)

		assert.Equal(t, events.SnapshotCreatedTopic, enqueued.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, enqueued.Status)
		assert.Equal(t, userID, enqueued.AggregateID)

		var payload events.SnapshotCreatedEvent
		assert.NoError(t, json.Unmarshal(enqueued.Payload, &payload))
		assert.Equal(t, userID, payload.UserID)
		assert.Equal(t, "2025-03-02", payload.SnapshotDate)
		assert.Equal(t, 125.0, payload.UtilizationPercentage)

		assert.Equal(t, "2025-03-02", resp.SnapshotDate)
		assert.Equal(t, 125.0, resp.UtilizationPercentage)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("insert mode rejects a second snapshot for the same week", func(t *testing.T) {
		deps := setupSnapshotTest(t, snapshot.Options{Upsert: false}, false)

		deps.workloads.EXPECT().
			Analyze(gomock.Any(), userID, weekStart, weekEnd).
			Return(weekSummary(userID), nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(snapshoterrors.ErrSnapshotExists)

		_, err := deps.service.Snapshot(ctx, userID, at)

		assert.ErrorIs(t, err, snapshoterrors.ErrSnapshotExists)
	})

	t.Run("analysis failure aborts before any write", func(t *testing.T) {
		deps := setupSnapshotTest(t, snapshot.Options{Upsert: true}, false)

		deps.workloads.EXPECT().
			Analyze(gomock.Any(), userID, weekStart, weekEnd).
			Return(workload.Summary{}, apperror.ComputationUnavailable(errors.New("db down")))

		_, err := deps.service.Snapshot(ctx, userID, at)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeComputationUnavailable, appErr.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cache invalidation failure does not fail the snapshot", func(t *testing.T) {
		deps := setupSnapshotTest(t, snapshot.Options{Upsert: true}, true)

		deps.workloads.EXPECT().
			Analyze(gomock.Any(), userID, weekStart, weekEnd).
			Return(weekSummary(userID), nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(workload.TeamCacheKey("2025-03-02", "2025-03-08")).
			SetErr(errors.New("redis down"))

		_, err := deps.service.Snapshot(ctx, userID, at)

		assert.NoError(t, err)
	})

	t.Run("invalid user id rejected", func(t *testing.T) {
		deps := setupSnapshotTest(t, snapshot.Options{Upsert: true}, false)

		_, err := deps.service.Snapshot(ctx, "not-a-uuid", at)

		assert.ErrorIs(t, err, snapshoterrors.ErrInvalidUserID)
	})
}

func TestGenerateForTeam(t *testing.T) {
	ctx := context.Background()
	at := date(2025, 3, 5)
	weekStart, weekEnd := date(2025, 3, 2), date(2025, 3, 8)

	okUUID := uuid.New()
	badUUID := uuid.New()
	okID, badID := okUUID.String(), badUUID.String()

	// Serialize the fan-out so the sqlmock expectations stay ordered.
	opts := snapshot.Options{Upsert: true, FanOutLimit: 1}

	t.Run("collects member failures without aborting the batch", func(t *testing.T) {
		deps := setupSnapshotTest(t, opts, false)

		deps.workloads.EXPECT().
			Analyze(gomock.Any(), okID, weekStart, weekEnd).
			Return(weekSummary(okID), nil)
		deps.workloads.EXPECT().
			Analyze(gomock.Any(), badID, weekStart, weekEnd).
			Return(workload.Summary{}, apperror.ComputationUnavailable(errors.New("db down")))

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := deps.service.GenerateForTeam(ctx, []string{okID, badID}, at)

		assert.NoError(t, err)
		assert.Len(t, result.Snapshots, 1)
		assert.Equal(t, okID, result.Snapshots[0].UserID)
		assert.Equal(t, []string{badID}, result.FailedUserIDs)
	})

	t.Run("empty list snapshots all active users", func(t *testing.T) {
		deps := setupSnapshotTest(t, opts, false)

		deps.users.EXPECT().ListActiveIDs(gomock.Any()).Return([]string{okID}, nil)
		deps.workloads.EXPECT().
			Analyze(gomock.Any(), okID, weekStart, weekEnd).
			Return(weekSummary(okID), nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := deps.service.GenerateForTeam(ctx, nil, at)

		assert.NoError(t, err)
		assert.Len(t, result.Snapshots, 1)
		assert.Empty(t, result.FailedUserIDs)
	})

	t.Run("user listing failure surfaces as computation unavailable", func(t *testing.T) {
		deps := setupSnapshotTest(t, opts, false)

		deps.users.EXPECT().ListActiveIDs(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.service.GenerateForTeam(ctx, nil, at)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeComputationUnavailable, appErr.Code)
	})

	t.Run("no active users yields an empty result", func(t *testing.T) {
		deps := setupSnapshotTest(t, opts, false)

		deps.users.EXPECT().ListActiveIDs(gomock.Any()).Return(nil, nil)

		result, err := deps.service.GenerateForTeam(ctx, nil, at)

		assert.NoError(t, err)
		assert.NotNil(t, result.Snapshots)
		assert.Empty(t, result.Snapshots)
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	userUUID := uuid.New()
	userID := userUUID.String()

	t.Run("maps stored rows newest first", func(t *testing.T) {
		deps := setupSnapshotTest(t, snapshot.Options{}, false)

		deps.repo.EXPECT().
			ListByUser(ctx, userID, 2).
			Return([]snapshot.WorkloadSnapshot{
				{
					ID:                    uuid.New(),
					UserID:                userUUID,
					SnapshotDate:          date(2025, 3, 9),
					UtilizationPercentage: 90,
				},
				{
					ID:                    uuid.New(),
					UserID:                userUUID,
					SnapshotDate:          date(2025, 3, 2),
					UtilizationPercentage: 125,
				},
			}, nil)

		snaps, err := deps.service.ListByUser(ctx, userID, 2)

		assert.NoError(t, err)
		assert.Len(t, snaps, 2)
		assert.Equal(t, "2025-03-09", snaps[0].SnapshotDate)
		assert.Equal(t, 90.0, snaps[0].UtilizationPercentage)
		assert.Equal(t, "2025-03-02", snaps[1].SnapshotDate)
	})

	t.Run("storage failure surfaces as computation unavailable", func(t *testing.T) {
		deps := setupSnapshotTest(t, snapshot.Options{}, false)

		deps.repo.EXPECT().
			ListByUser(ctx, userID, 0).
			Return(nil, errors.New("db down"))

		_, err := deps.service.ListByUser(ctx, userID, 0)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeComputationUnavailable, appErr.Code)
	})

	t.Run("invalid user id rejected", func(t *testing.T) {
		deps := setupSnapshotTest(t, snapshot.Options{}, false)

		_, err := deps.service.ListByUser(ctx, "nope", 5)

		assert.ErrorIs(t, err, snapshoterrors.ErrInvalidUserID)
	})
}
