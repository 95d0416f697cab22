package snapshot

import (
	"time"

	"github.com/google/uuid"
)

// WorkloadSnapshot is a persisted weekly workload rollup. One row per user
// per week, keyed by the week's Sunday.
type WorkloadSnapshot struct {
	ID                    uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID                uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_snapshot_user_date"`
	SnapshotDate          time.Time `gorm:"column:snapshot_date;type:date;not null;uniqueIndex:idx_snapshot_user_date"`
	TotalAllocatedHours   float64   `gorm:"column:total_allocated_hours;type:numeric(8,2);not null"`
	ActualWorkedHours     float64   `gorm:"column:actual_worked_hours;type:numeric(8,2);not null"`
	AvailableHours        float64   `gorm:"column:available_hours;type:numeric(8,2);not null"`
	UtilizationPercentage float64   `gorm:"column:utilization_percentage;type:numeric(6,2);not null"`
	OverallocationHours   float64   `gorm:"column:overallocation_hours;type:numeric(8,2);not null"`
	ActiveProjectsCount   int       `gorm:"column:active_projects_count;not null"`
	ActiveTasksCount      int       `gorm:"column:active_tasks_count;not null"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (WorkloadSnapshot) TableName() string {
	return "workload_snapshots"
}
