package capacity

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-workforce/internal/availability"
	capacityerrors "go-workforce/internal/capacity/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/calendarutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultProfilePolicy is the synthesized profile used when a user has no
// capacity profile on record.
type DefaultProfilePolicy struct {
	HoursPerDay        float64
	HoursPerWeek       float64
	OvertimeMultiplier float64
}

var StandardDefaults = DefaultProfilePolicy{
	HoursPerDay:        8,
	HoursPerWeek:       40,
	OvertimeMultiplier: 1.5,
}

type Options struct {
	Defaults DefaultProfilePolicy

	// ClampNegativeAvailable floors available hours at zero when approved
	// unavailability exceeds raw capacity. Off by default: the negative
	// value is kept as a signal of impossible scheduling.
	ClampNegativeAvailable bool
}

//go:generate mockgen -source=capacity_service.go -destination=mock/capacity_service_mock.go -package=mock
type Service interface {
	ResolveWindow(ctx context.Context, userID string, start, end time.Time) (WindowCapacity, error)
	EnsureDefaultProfile(ctx context.Context, userID string) (ProfileResponse, error)
	CreateProfile(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error)
}

type service struct {
	db               *sql.DB
	repo             Repository
	availabilityRepo availability.Repository
	opts             Options
	logger           *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	availabilityRepo availability.Repository,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("capacity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("capacity.service")
	}
	if opts.Defaults == (DefaultProfilePolicy{}) {
		opts.Defaults = StandardDefaults
	}
	return &service{
		db:               db,
		repo:             repo,
		availabilityRepo: availabilityRepo,
		opts:             opts,
		logger:           l,
	}
}

// ResolveWindow computes a user's total, unavailable and available hours
// for [start, end]. The profile active at start is applied to the whole
// window. Missing data never fails the read: a missing profile falls back
// to the default policy and a best-effort provisioning write, and missing
// availability means zero unavailable hours.
func (s *service) ResolveWindow(
	ctx context.Context,
	userID string,
	start, end time.Time,
) (WindowCapacity, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return WindowCapacity{}, capacityerrors.ErrInvalidUserID
	}
	if end.Before(start) {
		return WindowCapacity{}, capacityerrors.ErrInvalidDateRange
	}

	profile, err := s.repo.FindActiveForDate(ctx, userID, start)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = s.defaultProfile(userID)
		// Provision the default for future reads; the current read
		// proceeds on the in-memory value even if this write fails.
		if _, provisionErr := s.EnsureDefaultProfile(ctx, userID); provisionErr != nil {
			s.logger.Warn("default profile provisioning failed",
				zap.String("user_id", userID),
				zap.Error(provisionErr),
			)
		}
	default:
		s.logger.Error("capacity profile lookup failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return WindowCapacity{}, apperror.ComputationUnavailable(err)
	}

	workingDays := calendarutil.WorkingDays(start, end)
	total := float64(workingDays) * profile.HoursPerDay

	periods, err := s.availabilityRepo.FindApprovedOverlapping(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("availability lookup failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return WindowCapacity{}, apperror.ComputationUnavailable(err)
	}

	var unavailable float64
	for _, p := range periods {
		clipStart, clipEnd, ok := calendarutil.Overlap(p.StartDate, p.EndDate, start, end)
		if !ok {
			continue
		}
		rate := profile.HoursPerDay
		if p.HoursPerDay != nil {
			rate = *p.HoursPerDay
		}
		unavailable += float64(calendarutil.WorkingDays(clipStart, clipEnd)) * rate
	}

	available := total - unavailable
	if s.opts.ClampNegativeAvailable && available < 0 {
		available = 0
	}

	return WindowCapacity{
		TotalCapacityHours: total,
		AvailableHours:     available,
		UnavailableHours:   unavailable,
		HoursPerDay:        profile.HoursPerDay,
		WorkingDays:        workingDays,
	}, nil
}

// EnsureDefaultProfile provisions an open-ended default profile for a user.
// Intended for setup paths and the resolver's missing-profile fallback.
func (s *service) EnsureDefaultProfile(ctx context.Context, userID string) (ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return ProfileResponse{}, capacityerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	profile := &CapacityProfile{
		ID:                 uuid.New(),
		UserID:             userUUID,
		HoursPerDay:        s.opts.Defaults.HoursPerDay,
		HoursPerWeek:       s.opts.Defaults.HoursPerWeek,
		OvertimeMultiplier: s.opts.Defaults.OvertimeMultiplier,
		EffectiveFrom:      time.Now().UTC().Truncate(24 * time.Hour),
	}

	if err := qtx.Create(ctx, profile); err != nil {
		return ProfileResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ProfileResponse{}, err
	}

	s.logger.Info("default capacity profile provisioned",
		zap.String("user_id", userID),
		zap.String("profile_id", profile.ID.String()),
	)
	return mapToResponse(*profile), nil
}

func (s *service) CreateProfile(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error) {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return ProfileResponse{}, capacityerrors.ErrInvalidUserID
	}

	effectiveFrom, err := parseDate(req.EffectiveFrom)
	if err != nil {
		return ProfileResponse{}, err
	}

	var effectiveTo *time.Time
	if req.EffectiveTo != nil && *req.EffectiveTo != "" {
		to, err := parseDate(*req.EffectiveTo)
		if err != nil {
			return ProfileResponse{}, err
		}
		if to.Before(effectiveFrom) {
			return ProfileResponse{}, capacityerrors.ErrInvalidEffectiveRange
		}
		effectiveTo = &to
	}

	overtime := s.opts.Defaults.OvertimeMultiplier
	if req.OvertimeMultiplier != nil {
		overtime = *req.OvertimeMultiplier
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	profile := &CapacityProfile{
		ID:                 uuid.New(),
		UserID:             userUUID,
		HoursPerDay:        req.HoursPerDay,
		HoursPerWeek:       req.HoursPerWeek,
		OvertimeMultiplier: overtime,
		EffectiveFrom:      effectiveFrom,
		EffectiveTo:        effectiveTo,
	}

	if err := qtx.Create(ctx, profile); err != nil {
		s.logger.Error("create capacity profile failed",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return ProfileResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ProfileResponse{}, err
	}

	s.logger.Info("capacity profile created",
		zap.String("user_id", req.UserID),
		zap.String("profile_id", profile.ID.String()),
		zap.Float64("hours_per_day", profile.HoursPerDay),
	)
	return mapToResponse(*profile), nil
}

func (s *service) defaultProfile(userID string) *CapacityProfile {
	return &CapacityProfile{
		UserID:             uuid.MustParse(userID),
		HoursPerDay:        s.opts.Defaults.HoursPerDay,
		HoursPerWeek:       s.opts.Defaults.HoursPerWeek,
		OvertimeMultiplier: s.opts.Defaults.OvertimeMultiplier,
		EffectiveFrom:      time.Now().UTC(),
	}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, capacityerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(p CapacityProfile) ProfileResponse {
	resp := ProfileResponse{
		ID:                 p.ID.String(),
		UserID:             p.UserID.String(),
		HoursPerDay:        p.HoursPerDay,
		HoursPerWeek:       p.HoursPerWeek,
		OvertimeMultiplier: p.OvertimeMultiplier,
		EffectiveFrom:      p.EffectiveFrom.Format("2006-01-02"),
	}
	if p.EffectiveTo != nil {
		v := p.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &v
	}
	return resp
}
