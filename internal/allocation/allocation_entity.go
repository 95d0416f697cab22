package allocation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceAllocation is a planned commitment of a user's hours to a project
// or assignment over a date span. AllocatedHours is the total for the whole
// span, not a daily rate. Only ACTIVE allocations count toward workload.
type ResourceAllocation struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index:idx_allocations_user_dates"`
	ProjectID *uuid.UUID `gorm:"column:project_id;type:uuid;index"`

	AllocationType string   `gorm:"column:allocation_type;type:varchar(30);not null;default:'PROJECT'"`
	AllocatedHours float64  `gorm:"column:allocated_hours;type:numeric(8,2);not null"`
	HourlyRate     *float64 `gorm:"column:hourly_rate;type:numeric(10,2)"`

	StartDate time.Time `gorm:"column:start_date;type:date;not null;index:idx_allocations_user_dates"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null;index:idx_allocations_user_dates"`

	UtilizationTarget *float64 `gorm:"column:utilization_target;type:numeric(5,2)"`
	Priority          int      `gorm:"column:priority;not null;default:3"`
	Status            string   `gorm:"column:status;type:varchar(20);not null;default:'ACTIVE';index"`
	Notes             string   `gorm:"column:notes;type:text"`
	CreatedBy         uuid.UUID `gorm:"column:created_by;type:uuid;not null"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

const (
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"

	TypeProject     = "PROJECT"
	TypeMaintenance = "MAINTENANCE"
	TypeSupport     = "SUPPORT"
)
