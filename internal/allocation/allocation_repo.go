package allocation

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=allocation_repo.go -destination=mock/allocation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, alloc *ResourceAllocation) error
	FindActiveOverlapping(ctx context.Context, userID string, start, end time.Time) ([]ResourceAllocation, error)
	FindActiveForProject(ctx context.Context, projectID string, start, end time.Time) ([]ResourceAllocation, error)
	FindLatestRated(ctx context.Context, userID string) (*ResourceAllocation, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, alloc *ResourceAllocation) error {
	return r.db.WithContext(ctx).Create(alloc).Error
}

// FindActiveOverlapping returns active allocations touching [start, end] at
// all. Callers decide how much of each allocation to count; see the
// workload aggregation policies.
func (r *repository) FindActiveOverlapping(
	ctx context.Context,
	userID string,
	start, end time.Time,
) ([]ResourceAllocation, error) {
	var allocs []ResourceAllocation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", StatusActive).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC").
		Find(&allocs).Error
	return allocs, err
}

func (r *repository) FindActiveForProject(
	ctx context.Context,
	projectID string,
	start, end time.Time,
) ([]ResourceAllocation, error) {
	var allocs []ResourceAllocation
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Where("status = ?", StatusActive).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC").
		Find(&allocs).Error
	return allocs, err
}

// FindLatestRated returns the user's most recent allocation carrying an
// hourly rate, for recommendation cost estimates. Returns
// gorm.ErrRecordNotFound when the user has never had a rated allocation.
func (r *repository) FindLatestRated(ctx context.Context, userID string) (*ResourceAllocation, error) {
	var alloc ResourceAllocation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("hourly_rate IS NOT NULL").
		Order("end_date DESC").
		First(&alloc).Error
	if err != nil {
		return nil, err
	}
	return &alloc, nil
}
