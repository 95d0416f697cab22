package snapshot

type SnapshotResponse struct {
	ID                    string  `json:"id"`
	UserID                string  `json:"user_id"`
	SnapshotDate          string  `json:"snapshot_date"`
	TotalAllocatedHours   float64 `json:"total_allocated_hours"`
	ActualWorkedHours     float64 `json:"actual_worked_hours"`
	AvailableHours        float64 `json:"available_hours"`
	UtilizationPercentage float64 `json:"utilization_percentage"`
	OverallocationHours   float64 `json:"overallocation_hours"`
	ActiveProjectsCount   int     `json:"active_projects_count"`
	ActiveTasksCount      int     `json:"active_tasks_count"`
}

// TeamSnapshotResult reports a batch run. Per-user failures do not abort
// the batch; they are listed for the caller.
type TeamSnapshotResult struct {
	Snapshots     []SnapshotResponse `json:"snapshots"`
	FailedUserIDs []string           `json:"failed_user_ids,omitempty"`
}
