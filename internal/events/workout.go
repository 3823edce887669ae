// Package events defines the payloads exchanged over the workout topics.
package events

import "time"

// Event types carried in the event_type header.
const (
	TypeWorkoutPackage    = "workout.package_received"
	TypeWorkoutSummarized = "workout.summarized"
	TypeWorkoutRejected   = "workout.rejected"
)

// WorkoutPackage is a raw workout reading: a workout code plus its positional values.
type WorkoutPackage struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// WorkoutSummarized is emitted once a package has been turned into a summary.
type WorkoutSummarized struct {
	SummaryID    string    `json:"summary_id"`
	TenantID     string    `json:"tenant_id,omitempty"`
	WorkoutType  string    `json:"workout_type"`
	TrainingType string    `json:"training_type"`
	DurationH    float64   `json:"duration_h"`
	DistanceKm   float64   `json:"distance_km"`
	SpeedKmh     float64   `json:"mean_speed_kmh"`
	Calories     float64   `json:"calories"`
	Message      string    `json:"message"`
	ComputedAt   time.Time `json:"computed_at"`
}

// WorkoutRejected carries a package that failed validation to the dead-letter topic.
type WorkoutRejected struct {
	TenantID   string          `json:"tenant_id,omitempty"`
	Package    *WorkoutPackage `json:"package,omitempty"`
	RawPayload string          `json:"raw_payload,omitempty"`
	Reason     string          `json:"reason"`
	RejectedAt time.Time       `json:"rejected_at"`
}
