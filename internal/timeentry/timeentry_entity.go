package timeentry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeEntry records actually-worked hours. It is the ground truth of time
// spent, independent of allocation planning data.
type TimeEntry struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index:idx_time_entries_user_date"`
	ProjectID *uuid.UUID `gorm:"column:project_id;type:uuid;index"`
	EntryDate time.Time  `gorm:"column:entry_date;type:date;not null;index:idx_time_entries_user_date"`
	Hours     float64    `gorm:"column:hours;type:numeric(5,2);not null"`
	Notes     string     `gorm:"column:notes;type:text"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}
