package timeentry

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeentry_repo.go -destination=mock/timeentry_repo_mock.go -package=mock
type Repository interface {
	SumHours(ctx context.Context, userID string, start, end time.Time) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SumHours(ctx context.Context, userID string, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&TimeEntry{}).
		Where("user_id = ?", userID).
		Where("entry_date BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error
	return total, err
}
