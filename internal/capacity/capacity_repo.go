package capacity

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=capacity_repo.go -destination=mock/capacity_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, profile *CapacityProfile) error
	FindActiveForDate(ctx context.Context, userID string, date time.Time) (*CapacityProfile, error)
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

func (r *repository) Create(ctx context.Context, profile *CapacityProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// FindActiveForDate returns the profile in effect on date: latest
// effective_from at or before date, with an open or still-valid
// effective_to. Returns gorm.ErrRecordNotFound when no profile matches.
func (r *repository) FindActiveForDate(
	ctx context.Context,
	userID string,
	date time.Time,
) (*CapacityProfile, error) {
	var profile CapacityProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("effective_from <= ?", date).
		Where("effective_to IS NULL OR effective_to >= ?", date).
		Order("effective_from DESC").
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
