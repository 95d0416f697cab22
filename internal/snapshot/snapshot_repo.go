package snapshot

import (
	"context"
	"database/sql"
	"errors"

	snapshoterrors "go-workforce/internal/snapshot/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

//go:generate mockgen -source=snapshot_repo.go -destination=mock/snapshot_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Insert(ctx context.Context, snap *WorkloadSnapshot) error
	Upsert(ctx context.Context, snap *WorkloadSnapshot) error
	ListByUser(ctx context.Context, userID string, limit int) ([]WorkloadSnapshot, error)
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

// Insert fails with ErrSnapshotExists when a snapshot for the same user
// and week is already present.
func (r *repository) Insert(ctx context.Context, snap *WorkloadSnapshot) error {
	err := r.db.WithContext(ctx).Create(snap).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return snapshoterrors.ErrSnapshotExists
		}
		return err
	}
	return nil
}

// Upsert overwrites the measured columns when the week already has a row,
// keeping re-runs idempotent.
func (r *repository) Upsert(ctx context.Context, snap *WorkloadSnapshot) error {
	return r.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "snapshot_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_allocated_hours",
				"actual_worked_hours",
				"available_hours",
				"utilization_percentage",
				"overallocation_hours",
				"active_projects_count",
				"active_tasks_count",
				"updated_at",
			}),
		}).
		Create(snap).Error
}

func (r *repository) ListByUser(ctx context.Context, userID string, limit int) ([]WorkloadSnapshot, error) {
	if limit <= 0 {
		limit = 26
	}
	var snaps []WorkloadSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("snapshot_date DESC").
		Limit(limit).
		Find(&snaps).Error
	return snaps, err
}
