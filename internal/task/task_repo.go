package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID  *uuid.UUID `gorm:"column:project_id;type:uuid;index"`
	AssignedTo uuid.UUID  `gorm:"column:assigned_to;type:uuid;not null;index"`
	Title      string     `gorm:"column:title;type:varchar(255);not null"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'todo';index"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// OpenStatuses are the task states counted as active workload. The count
// is deliberately not window-filtered.
var OpenStatuses = []string{StatusTodo, StatusInProgress}

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	CountActiveForUser(ctx context.Context, userID string) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountActiveForUser(ctx context.Context, userID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("assigned_to = ?", userID).
		Where("status IN ?", OpenStatuses).
		Count(&count).Error
	return int(count), err
}
