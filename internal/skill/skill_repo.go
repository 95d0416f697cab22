package skill

import (
	"context"

	"gorm.io/gorm"
)

// UserSkillMatch summarizes one user's coverage of a requested skill set.
type UserSkillMatch struct {
	UserID         string
	MatchedSkills  []string
	AvgProficiency float64
}

//go:generate mockgen -source=skill_repo.go -destination=mock/skill_repo_mock.go -package=mock
type Repository interface {
	FindByUser(ctx context.Context, userID string) ([]Skill, error)
	FindUsersBySkills(ctx context.Context, names []string) ([]UserSkillMatch, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]Skill, error) {
	var skills []Skill
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("skill_name ASC").
		Find(&skills).Error
	return skills, err
}

// FindUsersBySkills returns every user holding at least one of the named
// skills, with their matched subset and average proficiency across it.
func (r *repository) FindUsersBySkills(ctx context.Context, names []string) ([]UserSkillMatch, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var rows []Skill
	err := r.db.WithContext(ctx).
		Where("skill_name IN ?", names).
		Order("user_id ASC, skill_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	// Aggregate per user, preserving first-seen order.
	order := make([]string, 0)
	byUser := make(map[string]*UserSkillMatch)
	profSum := make(map[string]int)

	for _, row := range rows {
		uid := row.UserID.String()
		m, ok := byUser[uid]
		if !ok {
			m = &UserSkillMatch{UserID: uid}
			byUser[uid] = m
			order = append(order, uid)
		}
		m.MatchedSkills = append(m.MatchedSkills, row.SkillName)
		profSum[uid] += row.ProficiencyLevel
	}

	matches := make([]UserSkillMatch, 0, len(order))
	for _, uid := range order {
		m := byUser[uid]
		if n := len(m.MatchedSkills); n > 0 {
			m.AvgProficiency = float64(profSum[uid]) / float64(n)
		}
		matches = append(matches, *m)
	}
	return matches, nil
}
