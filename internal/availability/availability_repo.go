package availability

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=availability_repo.go -destination=mock/availability_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, period *AvailabilityPeriod) error
	FindApprovedOverlapping(ctx context.Context, userID string, start, end time.Time) ([]AvailabilityPeriod, error)
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

func (r *repository) Create(ctx context.Context, period *AvailabilityPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *repository) FindApprovedOverlapping(
	ctx context.Context,
	userID string,
	start, end time.Time,
) ([]AvailabilityPeriod, error) {
	var periods []AvailabilityPeriod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}
