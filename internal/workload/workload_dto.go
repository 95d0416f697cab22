package workload

// DayConflict flags a single working day where the summed per-day
// allocation rates exceed that day's capacity.
type DayConflict struct {
	Date                string   `json:"date"`
	TotalAllocatedHours float64  `json:"total_allocated_hours"`
	AvailableHours      float64  `json:"available_hours"`
	OverallocationHours float64  `json:"overallocation_hours"`
	ProjectIDs          []string `json:"project_ids"`
}

// Summary is the computed workload of one user over a window.
type Summary struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	TotalCapacityHours  float64 `json:"total_capacity_hours"`
	AvailableHours      float64 `json:"available_hours"`
	UnavailableHours    float64 `json:"unavailable_hours"`
	TotalAllocatedHours float64 `json:"total_allocated_hours"`
	ActualWorkedHours   float64 `json:"actual_worked_hours"`

	UtilizationPercent  float64 `json:"utilization_percent"`
	OverallocationHours float64 `json:"overallocation_hours"`
	IsOverallocated     bool    `json:"is_overallocated"`

	ActiveProjectsCount int `json:"active_projects_count"`
	ActiveTasksCount    int `json:"active_tasks_count"`

	Conflicts []DayConflict `json:"conflicts,omitempty"`
}

const (
	ClassOverallocated = "OVERALLOCATED"
	ClassOptimal       = "OPTIMAL"
	ClassUnderutilized = "UNDERUTILIZED"
)

type TeamMemberSummary struct {
	Summary
	Classification string `json:"classification"`
}

// TeamSummary aggregates per-user workload across a team. The average
// utilization is capacity-weighted, not a mean of per-user percentages.
type TeamSummary struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	TotalCapacityHours  float64 `json:"total_capacity_hours"`
	TotalAllocatedHours float64 `json:"total_allocated_hours"`
	AverageUtilization  float64 `json:"average_utilization"`

	OverallocatedMembers      int `json:"overallocated_members"`
	UnderutilizedMembers      int `json:"underutilized_members"`
	OptimalUtilizationMembers int `json:"optimal_utilization_members"`

	Members []TeamMemberSummary `json:"members"`
}
