package recommendation

type RecommendationRequest struct {
	RequiredSkills []string `json:"required_skills" binding:"required,min=1,dive,required"`
	EstimatedHours float64  `json:"estimated_hours" binding:"required,gt=0"`
	StartDate      string   `json:"start_date" binding:"required"`
	EndDate        string   `json:"end_date" binding:"required"`
}

// Candidate is one scored assignment option. AvailabilityPercent is
// deliberately unclamped: above 100 means heavily underallocated, negative
// means already overallocated.
type Candidate struct {
	UserID              string   `json:"user_id"`
	MatchedSkills       []string `json:"matched_skills"`
	SkillMatchPercent   float64  `json:"skill_match_percent"`
	AvgProficiency      float64  `json:"avg_proficiency"`
	AvailabilityPercent float64  `json:"availability_percent"`
	UtilizationPercent  float64  `json:"utilization_percent"`
	HourlyRate          float64  `json:"hourly_rate"`
	EstimatedCost       float64  `json:"estimated_cost"`
	Score               float64  `json:"score"`
}
