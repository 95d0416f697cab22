package skill

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Skill struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_skills_user_name"`

	SkillName        string  `gorm:"column:skill_name;type:varchar(100);not null;index:idx_skills_user_name"`
	Category         string  `gorm:"column:category;type:varchar(50)"`
	ProficiencyLevel int     `gorm:"column:proficiency_level;not null;default:1"`
	YearsExperience  float64 `gorm:"column:years_experience;type:numeric(4,1)"`

	Certified         bool    `gorm:"column:certified;default:false"`
	CertificationName *string `gorm:"column:certification_name;type:varchar(255)"`

	LastUsed *time.Time `gorm:"column:last_used;type:date"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}
