package workload

import (
	"context"
	"time"

	"go-workforce/internal/allocation"
	"go-workforce/internal/capacity"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/calendarutil"
	"go-workforce/internal/task"
	"go-workforce/internal/timeentry"
	"go-workforce/internal/user"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Policy selects how overlapping allocations are counted; defaults to
	// CountFull.
	Policy AggregationPolicy

	// FanOutLimit bounds concurrent per-user computations in team batches.
	FanOutLimit int

	// BatchTimeout caps the total latency of a team batch. Individual
	// per-user reads carry no timeout of their own.
	BatchTimeout time.Duration
}

const (
	defaultFanOutLimit  = 8
	defaultBatchTimeout = 30 * time.Second
)

//go:generate mockgen -source=workload_service.go -destination=mock/workload_service_mock.go -package=mock
type Service interface {
	Analyze(ctx context.Context, userID string, start, end time.Time) (Summary, error)
	AnalyzeTeam(ctx context.Context, userIDs []string, start, end time.Time) (TeamSummary, error)
}

type service struct {
	capacitySvc    capacity.Service
	allocationRepo allocation.Repository
	timeEntryRepo  timeentry.Repository
	taskRepo       task.Repository
	userRepo       user.Repository
	opts           Options
	logger         *zap.Logger
}

func NewService(
	capacitySvc capacity.Service,
	allocationRepo allocation.Repository,
	timeEntryRepo timeentry.Repository,
	taskRepo task.Repository,
	userRepo user.Repository,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("workload.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workload.service")
	}
	if opts.Policy == "" {
		opts.Policy = CountFull
	}
	if opts.FanOutLimit <= 0 {
		opts.FanOutLimit = defaultFanOutLimit
	}
	if opts.BatchTimeout <= 0 {
		opts.BatchTimeout = defaultBatchTimeout
	}
	return &service{
		capacitySvc:    capacitySvc,
		allocationRepo: allocationRepo,
		timeEntryRepo:  timeEntryRepo,
		taskRepo:       taskRepo,
		userRepo:       userRepo,
		opts:           opts,
		logger:         l,
	}
}

// Analyze computes one user's workload for [start, end]. The result is a
// best-effort, eventually-consistent view: the underlying reads are not
// wrapped in a transaction, so concurrent writers can produce a torn read.
func (s *service) Analyze(ctx context.Context, userID string, start, end time.Time) (Summary, error) {
	winCap, err := s.capacitySvc.ResolveWindow(ctx, userID, start, end)
	if err != nil {
		return Summary{}, err
	}

	allocs, err := s.allocationRepo.FindActiveOverlapping(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("allocation lookup failed", zap.String("user_id", userID), zap.Error(err))
		return Summary{}, apperror.ComputationUnavailable(err)
	}

	var totalAllocated float64
	projects := make(map[string]struct{})
	for _, a := range allocs {
		totalAllocated += s.opts.Policy.CountedHours(a, start, end)
		if a.ProjectID != nil {
			projects[a.ProjectID.String()] = struct{}{}
		}
	}

	worked, err := s.timeEntryRepo.SumHours(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("time entry sum failed", zap.String("user_id", userID), zap.Error(err))
		return Summary{}, apperror.ComputationUnavailable(err)
	}

	taskCount, err := s.taskRepo.CountActiveForUser(ctx, userID)
	if err != nil {
		s.logger.Error("task count failed", zap.String("user_id", userID), zap.Error(err))
		return Summary{}, apperror.ComputationUnavailable(err)
	}

	utilization := 0.0
	if winCap.AvailableHours > 0 {
		utilization = totalAllocated / winCap.AvailableHours * 100
	}
	overallocation := totalAllocated - winCap.AvailableHours
	if overallocation < 0 {
		overallocation = 0
	}

	return Summary{
		UserID:              userID,
		StartDate:           start.Format("2006-01-02"),
		EndDate:             end.Format("2006-01-02"),
		TotalCapacityHours:  winCap.TotalCapacityHours,
		AvailableHours:      winCap.AvailableHours,
		UnavailableHours:    winCap.UnavailableHours,
		TotalAllocatedHours: totalAllocated,
		ActualWorkedHours:   worked,
		UtilizationPercent:  utilization,
		OverallocationHours: overallocation,
		IsOverallocated:     overallocation > 0,
		ActiveProjectsCount: len(projects),
		ActiveTasksCount:    taskCount,
		Conflicts:           scanDayConflicts(allocs, start, end, winCap.HoursPerDay),
	}, nil
}

// scanDayConflicts walks each working day of the window, derives a per-day
// rate for every allocation covering that day (total hours spread evenly
// over the allocation's working days) and flags days where the summed
// rates exceed the single-day capacity. O(days x overlapping allocations);
// windows are operationally bounded to weeks or months.
func scanDayConflicts(
	allocs []allocation.ResourceAllocation,
	start, end time.Time,
	hoursPerDay float64,
) []DayConflict {
	if len(allocs) == 0 {
		return nil
	}

	// Per-day rates are fixed per allocation; compute once.
	rates := make([]float64, len(allocs))
	for i, a := range allocs {
		if span := calendarutil.WorkingDays(a.StartDate, a.EndDate); span > 0 {
			rates[i] = a.AllocatedHours / float64(span)
		}
	}

	var conflicts []DayConflict
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		var dayTotal float64
		projects := make(map[string]struct{})
		for i, a := range allocs {
			if d.Before(a.StartDate) || d.After(a.EndDate) {
				continue
			}
			dayTotal += rates[i]
			if a.ProjectID != nil {
				projects[a.ProjectID.String()] = struct{}{}
			}
		}

		if dayTotal > hoursPerDay {
			ids := make([]string, 0, len(projects))
			for id := range projects {
				ids = append(ids, id)
			}
			conflicts = append(conflicts, DayConflict{
				Date:                d.Format("2006-01-02"),
				TotalAllocatedHours: dayTotal,
				AvailableHours:      hoursPerDay,
				OverallocationHours: dayTotal - hoursPerDay,
				ProjectIDs:          ids,
			})
		}
	}
	return conflicts
}

// AnalyzeTeam runs Analyze for each user and aggregates. An empty userIDs
// slice means all active users. Per-user computations are independent and
// fan out under a bounded errgroup with a batch-level deadline.
func (s *service) AnalyzeTeam(ctx context.Context, userIDs []string, start, end time.Time) (TeamSummary, error) {
	if len(userIDs) == 0 {
		ids, err := s.userRepo.ListActiveIDs(ctx)
		if err != nil {
			s.logger.Error("active user listing failed", zap.Error(err))
			return TeamSummary{}, apperror.ComputationUnavailable(err)
		}
		userIDs = ids
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.BatchTimeout)
	defer cancel()

	members := make([]TeamMemberSummary, len(userIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FanOutLimit)

	for i, uid := range userIDs {
		i, uid := i, uid
		g.Go(func() error {
			summary, err := s.Analyze(gctx, uid, start, end)
			if err != nil {
				return err
			}
			members[i] = TeamMemberSummary{
				Summary:        summary,
				Classification: classify(summary.UtilizationPercent),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return TeamSummary{}, err
	}

	team := TeamSummary{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Members:   members,
	}
	for _, m := range members {
		team.TotalCapacityHours += m.TotalCapacityHours
		team.TotalAllocatedHours += m.TotalAllocatedHours
		switch m.Classification {
		case ClassOverallocated:
			team.OverallocatedMembers++
		case ClassUnderutilized:
			team.UnderutilizedMembers++
		default:
			team.OptimalUtilizationMembers++
		}
	}
	if team.TotalCapacityHours > 0 {
		team.AverageUtilization = team.TotalAllocatedHours / team.TotalCapacityHours * 100
	}

	s.logger.Debug("team workload computed",
		zap.Int("members", len(members)),
		zap.Float64("average_utilization", team.AverageUtilization),
	)
	return team, nil
}

// classify buckets a utilization percentage. 70 and 100 are both optimal.
func classify(utilization float64) string {
	switch {
	case utilization > 100:
		return ClassOverallocated
	case utilization < 70:
		return ClassUnderutilized
	default:
		return ClassOptimal
	}
}
