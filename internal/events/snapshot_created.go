package events

import "time"

const SnapshotCreatedTopic = "workforce.snapshot.created.v1"

// SnapshotCreatedEvent is emitted after a weekly workload snapshot is
// persisted, for downstream reporting consumers.
type SnapshotCreatedEvent struct {
	EventType             string    `json:"event_type"`
	SnapshotID            string    `json:"snapshot_id"`
	UserID                string    `json:"user_id"`
	SnapshotDate          string    `json:"snapshot_date"`
	UtilizationPercentage float64   `json:"utilization_percentage"`
	OverallocationHours   float64   `json:"overallocation_hours"`
	OccurredAt            time.Time `json:"occurred_at"`
}
