package recommendation

import (
	"context"
	"errors"
	"sort"
	"time"

	"go-workforce/internal/allocation"
	recommendationerrors "go-workforce/internal/recommendation/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/skill"
	"go-workforce/internal/workload"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Scoring weights: skill coverage dominates, spare capacity breaks the
// rest. Proficiency is reported but not weighted into the score.
const (
	skillWeight        = 0.6
	availabilityWeight = 0.4
)

//go:generate mockgen -source=recommendation_service.go -destination=mock/recommendation_service_mock.go -package=mock
type Service interface {
	Recommend(ctx context.Context, req RecommendationRequest) ([]Candidate, error)
}

type service struct {
	skillRepo      skill.Repository
	workloadSvc    workload.Service
	allocationRepo allocation.Repository
	logger         *zap.Logger
}

func NewService(
	skillRepo skill.Repository,
	workloadSvc workload.Service,
	allocationRepo allocation.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("recommendation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("recommendation.service")
	}
	return &service{
		skillRepo:      skillRepo,
		workloadSvc:    workloadSvc,
		allocationRepo: allocationRepo,
		logger:         l,
	}
}

// Recommend scores every user holding at least one required skill and
// returns candidates sorted by descending score. Ties keep the skill
// repository's order. No matching users is an empty result, not an error.
func (s *service) Recommend(ctx context.Context, req RecommendationRequest) ([]Candidate, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, recommendationerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, recommendationerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return nil, recommendationerrors.ErrInvalidDateRange
	}

	matches, err := s.skillRepo.FindUsersBySkills(ctx, req.RequiredSkills)
	if err != nil {
		s.logger.Error("skill match lookup failed", zap.Error(err))
		return nil, apperror.ComputationUnavailable(err)
	}
	if len(matches) == 0 {
		return []Candidate{}, nil
	}

	candidates := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		summary, err := s.workloadSvc.Analyze(ctx, m.UserID, start, end)
		if err != nil {
			return nil, err
		}

		rate, err := s.latestRate(ctx, m.UserID)
		if err != nil {
			return nil, err
		}

		skillMatch := float64(len(m.MatchedSkills)) / float64(len(req.RequiredSkills)) * 100
		availability := 100 - summary.UtilizationPercent

		candidates = append(candidates, Candidate{
			UserID:              m.UserID,
			MatchedSkills:       m.MatchedSkills,
			SkillMatchPercent:   skillMatch,
			AvgProficiency:      m.AvgProficiency,
			AvailabilityPercent: availability,
			UtilizationPercent:  summary.UtilizationPercent,
			HourlyRate:          rate,
			EstimatedCost:       rate * req.EstimatedHours,
			Score:               skillWeight*skillMatch + availabilityWeight*availability,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	s.logger.Debug("recommendation computed",
		zap.Int("required_skills", len(req.RequiredSkills)),
		zap.Int("candidates", len(candidates)),
	)
	return candidates, nil
}

// latestRate returns the hourly rate from the user's most recent rated
// allocation, or zero when none exists.
func (s *service) latestRate(ctx context.Context, userID string) (float64, error) {
	alloc, err := s.allocationRepo.FindLatestRated(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		s.logger.Error("rated allocation lookup failed", zap.String("user_id", userID), zap.Error(err))
		return 0, apperror.ComputationUnavailable(err)
	}
	if alloc.HourlyRate == nil {
		return 0, nil
	}
	return *alloc.HourlyRate, nil
}
