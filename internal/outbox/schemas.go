package outbox

import "example.com/workout/internal/events"

const workoutSummarizedSchema = `{
  "type": "object",
  "title": "WorkoutSummarized",
  "properties": {
    "summary_id": {"type": "string"},
    "tenant_id": {"type": "string"},
    "workout_type": {"type": "string", "enum": ["RUN", "SWM", "WLK"]},
    "training_type": {"type": "string"},
    "duration_h": {"type": "number"},
    "distance_km": {"type": "number"},
    "mean_speed_kmh": {"type": "number"},
    "calories": {"type": "number"},
    "message": {"type": "string"},
    "computed_at": {"type": "string", "format": "date-time"}
  },
  "required": ["summary_id", "workout_type", "training_type", "duration_h", "distance_km", "mean_speed_kmh", "calories", "message", "computed_at"],
  "additionalProperties": false
}`

const workoutRejectedSchema = `{
  "type": "object",
  "title": "WorkoutRejected",
  "properties": {
    "tenant_id": {"type": "string"},
    "package": {
      "type": "object",
      "properties": {
        "workout_type": {"type": "string"},
        "data": {"type": ["array", "null"], "items": {"type": "number"}}
      }
    },
    "raw_payload": {"type": "string"},
    "reason": {"type": "string"},
    "rejected_at": {"type": "string", "format": "date-time"}
  },
  "required": ["reason", "rejected_at"],
  "additionalProperties": false
}`

// schemaCatalog maps event type to the JSON schema registered for it.
var schemaCatalog = map[string]string{
	events.TypeWorkoutSummarized: workoutSummarizedSchema,
	events.TypeWorkoutRejected:   workoutRejectedSchema,
}
