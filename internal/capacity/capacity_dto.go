package capacity

type CreateProfileRequest struct {
	UserID             string   `json:"user_id" binding:"required,uuid"`
	HoursPerDay        float64  `json:"hours_per_day" binding:"required,gt=0,lte=24"`
	HoursPerWeek       float64  `json:"hours_per_week" binding:"required,gt=0,lte=168"`
	OvertimeMultiplier *float64 `json:"overtime_multiplier" binding:"omitempty,gte=1"`
	EffectiveFrom      string   `json:"effective_from" binding:"required"`
	EffectiveTo        *string  `json:"effective_to"`
}

type ProfileResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"user_id"`
	HoursPerDay        float64 `json:"hours_per_day"`
	HoursPerWeek       float64 `json:"hours_per_week"`
	OvertimeMultiplier float64 `json:"overtime_multiplier"`
	EffectiveFrom      string  `json:"effective_from"`
	EffectiveTo        *string `json:"effective_to,omitempty"`
}

// WindowCapacity is the resolved capacity of a user over a query window.
// AvailableHours is TotalCapacityHours minus approved unavailability; it is
// only clamped at zero when the resolver's ClampNegativeAvailable policy is
// enabled.
type WindowCapacity struct {
	TotalCapacityHours float64 `json:"total_capacity_hours"`
	AvailableHours     float64 `json:"available_hours"`
	UnavailableHours   float64 `json:"unavailable_hours"`
	HoursPerDay        float64 `json:"hours_per_day"`
	WorkingDays        int     `json:"working_days"`
}
