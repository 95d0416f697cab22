package capacity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CapacityProfile describes a user's effective working hours over a date
// range. Multiple profiles form a timeline per user; the profile active for
// a date is the one with the latest effective_from at or before that date
// whose effective_to is open or not yet passed. Overlap is not enforced at
// write time; reads apply most-recent-wins.
type CapacityProfile struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_capacity_profiles_user_effective"`

	HoursPerDay        float64 `gorm:"column:hours_per_day;type:numeric(5,2);not null;default:8"`
	HoursPerWeek       float64 `gorm:"column:hours_per_week;type:numeric(5,2);not null;default:40"`
	OvertimeMultiplier float64 `gorm:"column:overtime_multiplier;type:numeric(4,2);not null;default:1.5"`

	EffectiveFrom time.Time  `gorm:"column:effective_from;type:date;not null;index:idx_capacity_profiles_user_effective"`
	EffectiveTo   *time.Time `gorm:"column:effective_to;type:date"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}
