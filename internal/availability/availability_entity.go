package availability

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityPeriod is an approved block of time (vacation, training,
// holiday, sick leave) that reduces a user's available capacity. Only
// APPROVED periods are consulted by the capacity resolver.
type AvailabilityPeriod struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_availability_user_dates"`

	PeriodType string    `gorm:"column:period_type;type:varchar(30);not null;default:'VACATION'"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	StartDate  time.Time `gorm:"column:start_date;type:date;not null;index:idx_availability_user_dates"`
	EndDate    time.Time `gorm:"column:end_date;type:date;not null;index:idx_availability_user_dates"`

	// HoursPerDay overrides the profile's daily hours for partial-day
	// absences; nil means the full profile rate is unavailable.
	HoursPerDay *float64 `gorm:"column:hours_per_day;type:numeric(5,2)"`

	Notes      string     `gorm:"column:notes;type:text"`
	ApprovedBy *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt *time.Time `gorm:"column:approved_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

const (
	TypeVacation = "VACATION"
	TypeTraining = "TRAINING"
	TypeHoliday  = "HOLIDAY"
	TypeSick     = "SICK"
	TypeOther    = "OTHER"

	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)
