package workload_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/allocation"
	allocationMock "go-workforce/internal/allocation/mock"
	"go-workforce/internal/capacity"
	capacityMock "go-workforce/internal/capacity/mock"
	"go-workforce/internal/shared/apperror"
	taskMock "go-workforce/internal/task/mock"
	timeentryMock "go-workforce/internal/timeentry/mock"
	userMock "go-workforce/internal/user/mock"
	"go-workforce/internal/workload"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type workloadDeps struct {
	service     workload.Service
	capacitySvc *capacityMock.MockService
	allocations *allocationMock.MockRepository
	timeEntries *timeentryMock.MockRepository
	tasks       *taskMock.MockRepository
	users       *userMock.MockRepository
}

func setupWorkloadTest(t *testing.T, opts workload.Options) *workloadDeps {
	ctrl := gomock.NewController(t)

	capacitySvc := capacityMock.NewMockService(ctrl)
	allocRepo := allocationMock.NewMockRepository(ctrl)
	teRepo := timeentryMock.NewMockRepository(ctrl)
	taskRepo := taskMock.NewMockRepository(ctrl)
	userRepo := userMock.NewMockRepository(ctrl)

	svc := workload.NewService(capacitySvc, allocRepo, teRepo, taskRepo, userRepo, opts)

	return &workloadDeps{
		service:     svc,
		capacitySvc: capacitySvc,
		allocations: allocRepo,
		timeEntries: teRepo,
		tasks:       taskRepo,
		users:       userRepo,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Monday through Friday, 5 working days.
var (
	winStart = date(2025, 3, 3)
	winEnd   = date(2025, 3, 7)
)

func fullWeekCapacity() capacity.WindowCapacity {
	return capacity.WindowCapacity{
		TotalCapacityHours: 40,
		AvailableHours:     40,
		UnavailableHours:   0,
		HoursPerDay:        8,
		WorkingDays:        5,
	}
}

func activeAlloc(userID uuid.UUID, hours float64, start, end time.Time, projectID *uuid.UUID) allocation.ResourceAllocation {
	return allocation.ResourceAllocation{
		ID:             uuid.New(),
		UserID:         userID,
		ProjectID:      projectID,
		AllocatedHours: hours,
		StartDate:      start,
		EndDate:        end,
		Status:         allocation.StatusActive,
	}
}

func (d *workloadDeps) expectGroundTruth(ctx any, userID string, worked float64, tasks int) {
	d.timeEntries.EXPECT().SumHours(ctx, userID, winStart, winEnd).Return(worked, nil)
	d.tasks.EXPECT().CountActiveForUser(ctx, userID).Return(tasks, nil)
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	userUUID := uuid.New()
	userID := userUUID.String()
	projectID := uuid.New()

	t.Run("exactly allocated week has no overallocation", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		deps.capacitySvc.EXPECT().
			ResolveWindow(ctx, userID, winStart, winEnd).
			Return(fullWeekCapacity(), nil)
		deps.allocations.EXPECT().
			FindActiveOverlapping(ctx, userID, winStart, winEnd).
			Return([]allocation.ResourceAllocation{
				activeAlloc(userUUID, 40, winStart, winEnd, &projectID),
			}, nil)
		deps.expectGroundTruth(ctx, userID, 38.5, 4)

		got, err := deps.service.Analyze(ctx, userID, winStart, winEnd)
		assert.NoError(t, err)
		assert.Equal(t, 40.0, got.TotalCapacityHours)
		assert.Equal(t, 40.0, got.AvailableHours)
		assert.Equal(t, 40.0, got.TotalAllocatedHours)
		assert.Equal(t, 100.0, got.UtilizationPercent)
		assert.Equal(t, 0.0, got.OverallocationHours)
		assert.False(t, got.IsOverallocated)
		assert.Equal(t, 38.5, got.ActualWorkedHours)
		assert.Equal(t, 1, got.ActiveProjectsCount)
		assert.Equal(t, 4, got.ActiveTasksCount)
		assert.Empty(t, got.Conflicts)
	})

	t.Run("second overlapping allocation overallocates the window", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		secondProject := uuid.New()
		deps.capacitySvc.EXPECT().
			ResolveWindow(ctx, userID, winStart, winEnd).
			Return(fullWeekCapacity(), nil)
		deps.allocations.EXPECT().
			FindActiveOverlapping(ctx, userID, winStart, winEnd).
			Return([]allocation.ResourceAllocation{
				activeAlloc(userUUID, 40, winStart, winEnd, &projectID),
				activeAlloc(userUUID, 10, winStart, winEnd, &secondProject),
			}, nil)
		deps.expectGroundTruth(ctx, userID, 0.0, 0)

		got, err := deps.service.Analyze(ctx, userID, winStart, winEnd)
		assert.NoError(t, err)
		assert.Equal(t, 50.0, got.TotalAllocatedHours)
		assert.Equal(t, 10.0, got.OverallocationHours)
		assert.Equal(t, 125.0, got.UtilizationPercent)
		assert.True(t, got.IsOverallocated)
		assert.Equal(t, 2, got.ActiveProjectsCount)

		// Every working day carries 8+2=10h against 8h capacity.
		assert.Len(t, got.Conflicts, 5)
		first := got.Conflicts[0]
		assert.Equal(t, "2025-03-03", first.Date)
		assert.InDelta(t, 10.0, first.TotalAllocatedHours, 1e-9)
		assert.InDelta(t, 2.0, first.OverallocationHours, 1e-9)
		assert.Len(t, first.ProjectIDs, 2)
	})

	t.Run("vacation-reduced availability counts against the full allocation", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		deps.capacitySvc.EXPECT().
			ResolveWindow(ctx, userID, winStart, winEnd).
			Return(capacity.WindowCapacity{
				TotalCapacityHours: 40,
				AvailableHours:     24,
				UnavailableHours:   16,
				HoursPerDay:        8,
				WorkingDays:        5,
			}, nil)
		deps.allocations.EXPECT().
			FindActiveOverlapping(ctx, userID, winStart, winEnd).
			Return([]allocation.ResourceAllocation{
				activeAlloc(userUUID, 40, winStart, winEnd, &projectID),
			}, nil)
		deps.expectGroundTruth(ctx, userID, 0.0, 0)

		got, err := deps.service.Analyze(ctx, userID, winStart, winEnd)
		assert.NoError(t, err)
		assert.Equal(t, 16.0, got.UnavailableHours)
		assert.Equal(t, 24.0, got.AvailableHours)
		assert.Equal(t, 16.0, got.OverallocationHours)
		assert.True(t, got.IsOverallocated)
	})

	t.Run("zero available hours yields zero utilization", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		deps.capacitySvc.EXPECT().
			ResolveWindow(ctx, userID, winStart, winEnd).
			Return(capacity.WindowCapacity{
				TotalCapacityHours: 40,
				AvailableHours:     0,
				UnavailableHours:   40,
				HoursPerDay:        8,
				WorkingDays:        5,
			}, nil)
		deps.allocations.EXPECT().
			FindActiveOverlapping(ctx, userID, winStart, winEnd).
			Return([]allocation.ResourceAllocation{
				activeAlloc(userUUID, 20, winStart, winEnd, nil),
			}, nil)
		deps.expectGroundTruth(ctx, userID, 0.0, 0)

		got, err := deps.service.Analyze(ctx, userID, winStart, winEnd)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, got.UtilizationPercent)
		assert.Equal(t, 20.0, got.OverallocationHours)
	})

	t.Run("negative available hours also yields zero utilization", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		deps.capacitySvc.EXPECT().
			ResolveWindow(ctx, userID, winStart, winEnd).
			Return(capacity.WindowCapacity{
				TotalCapacityHours: 40,
				AvailableHours:     -8,
				UnavailableHours:   48,
				HoursPerDay:        8,
				WorkingDays:        5,
			}, nil)
		deps.allocations.EXPECT().
			FindActiveOverlapping(ctx, userID, winStart, winEnd).
			Return(nil, nil)
		deps.expectGroundTruth(ctx, userID, 0.0, 0)

		got, err := deps.service.Analyze(ctx, userID, winStart, winEnd)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, got.UtilizationPercent)
		assert.Equal(t, 8.0, got.OverallocationHours)
	})

	t.Run("full hours counted for barely overlapping allocation", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		// Allocation runs two weeks but only Friday overlaps the window.
		deps.capacitySvc.EXPECT().
			ResolveWindow(ctx, userID, winStart, winEnd).
			Return(fullWeekCapacity(), nil)
		deps.allocations.EXPECT().
			FindActiveOverlapping(ctx, userID, winStart, winEnd).
			Return([]allocation.ResourceAllocation{
				activeAlloc(userUUID, 80, date(2025, 3, 7), date(2025, 3, 20), &projectID),
			}, nil)
		deps.expectGroundTruth(ctx, userID, 0.0, 0)

		got, err := deps.service.Analyze(ctx, userID, winStart, winEnd)
		assert.NoError(t, err)
		assert.Equal(t, 80.0, got.TotalAllocatedHours)
		assert.Equal(t, 40.0, got.OverallocationHours)
	})

	t.Run("prorate policy scales by working-day overlap", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{Policy: workload.ProrateOverlap})

		// 80h over 10 working days; 5 of them fall inside the window.
		deps.capacitySvc.EXPECT().
			ResolveWindow(ctx, userID, winStart, winEnd).
			Return(fullWeekCapacity(), nil)
		deps.allocations.EXPECT().
			FindActiveOverlapping(ctx, userID, winStart, winEnd).
			Return([]allocation.ResourceAllocation{
				activeAlloc(userUUID, 80, winStart, date(2025, 3, 14), &projectID),
			}, nil)
		deps.expectGroundTruth(ctx, userID, 0.0, 0)

		got, err := deps.service.Analyze(ctx, userID, winStart, winEnd)
		assert.NoError(t, err)
		assert.InDelta(t, 40.0, got.TotalAllocatedHours, 1e-9)
		assert.Equal(t, 0.0, got.OverallocationHours)
	})

	t.Run("allocation lookup failure maps to computation unavailable", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		deps.capacitySvc.EXPECT().
			ResolveWindow(ctx, userID, winStart, winEnd).
			Return(fullWeekCapacity(), nil)
		deps.allocations.EXPECT().
			FindActiveOverlapping(ctx, userID, winStart, winEnd).
			Return(nil, errors.New("connection refused"))

		_, err := deps.service.Analyze(ctx, userID, winStart, winEnd)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeComputationUnavailable, appErr.Code)
	})
}

func TestAnalyzeTeam(t *testing.T) {
	ctx := context.Background()

	expectMember := func(deps *workloadDeps, userID string, allocated float64) {
		userUUID := uuid.MustParse(userID)
		deps.capacitySvc.EXPECT().
			ResolveWindow(gomock.Any(), userID, winStart, winEnd).
			Return(fullWeekCapacity(), nil)
		deps.allocations.EXPECT().
			FindActiveOverlapping(gomock.Any(), userID, winStart, winEnd).
			Return([]allocation.ResourceAllocation{
				activeAlloc(userUUID, allocated, winStart, winEnd, nil),
			}, nil)
		deps.timeEntries.EXPECT().SumHours(gomock.Any(), userID, winStart, winEnd).Return(0.0, nil)
		deps.tasks.EXPECT().CountActiveForUser(gomock.Any(), userID).Return(0, nil)
	}

	t.Run("aggregates and classifies three members", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		ids := []string{uuid.New().String(), uuid.New().String(), uuid.New().String()}
		expectMember(deps, ids[0], 48) // 120% -> overallocated
		expectMember(deps, ids[1], 20) // 50%  -> underutilized
		expectMember(deps, ids[2], 34) // 85%  -> optimal

		got, err := deps.service.AnalyzeTeam(ctx, ids, winStart, winEnd)
		assert.NoError(t, err)
		assert.Equal(t, 120.0, got.TotalCapacityHours)
		assert.Equal(t, 102.0, got.TotalAllocatedHours)
		assert.Equal(t, 85.0, got.AverageUtilization)
		assert.Equal(t, 1, got.OverallocatedMembers)
		assert.Equal(t, 1, got.UnderutilizedMembers)
		assert.Equal(t, 1, got.OptimalUtilizationMembers)
		assert.Len(t, got.Members, 3)

		// Member order matches input order.
		assert.Equal(t, ids[0], got.Members[0].UserID)
		assert.Equal(t, workload.ClassOverallocated, got.Members[0].Classification)
		assert.Equal(t, workload.ClassUnderutilized, got.Members[1].Classification)
		assert.Equal(t, workload.ClassOptimal, got.Members[2].Classification)
	})

	t.Run("classification boundaries", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		cases := []struct {
			allocated float64
			want      string
		}{
			{28.0, workload.ClassOptimal},        // exactly 70%
			{40.0, workload.ClassOptimal},        // exactly 100%
			{40.004, workload.ClassOverallocated}, // 100.01%
			{27.996, workload.ClassUnderutilized}, // 69.99%
		}

		ids := make([]string, len(cases))
		for i, tc := range cases {
			ids[i] = uuid.New().String()
			expectMember(deps, ids[i], tc.allocated)
		}

		got, err := deps.service.AnalyzeTeam(ctx, ids, winStart, winEnd)
		assert.NoError(t, err)
		for i, tc := range cases {
			assert.Equal(t, tc.want, got.Members[i].Classification, "member %d", i)
		}
	})

	t.Run("defaults to all active users", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		id := uuid.New().String()
		deps.users.EXPECT().ListActiveIDs(gomock.Any()).Return([]string{id}, nil)
		expectMember(deps, id, 20)

		got, err := deps.service.AnalyzeTeam(ctx, nil, winStart, winEnd)
		assert.NoError(t, err)
		assert.Len(t, got.Members, 1)
	})

	t.Run("user listing failure maps to computation unavailable", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		deps.users.EXPECT().ListActiveIDs(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.service.AnalyzeTeam(ctx, nil, winStart, winEnd)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeComputationUnavailable, appErr.Code)
	})

	t.Run("empty team aggregates to zeroes", func(t *testing.T) {
		deps := setupWorkloadTest(t, workload.Options{})

		deps.users.EXPECT().ListActiveIDs(gomock.Any()).Return(nil, nil)

		got, err := deps.service.AnalyzeTeam(ctx, nil, winStart, winEnd)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, got.AverageUtilization)
		assert.Empty(t, got.Members)
	})
}
