package models

import (
	"time"

	"github.com/google/uuid"
)

// Rejection reasons counted in Snapshot.Rejected.
const (
	RejectMissingExercise = "missing_exercise_name"
	RejectMissingDate     = "missing_date"
	RejectRestTimer       = "rest_timer"
)

// Snapshot is the derived model of one dataset. It is built in full by the
// analysis pipeline and never modified afterwards.
type Snapshot struct {
	Variant      SchemaVariant                `json:"variant"`
	Sets         []Set                        `json:"sets"`
	Exercises    map[string]ExerciseAggregate `json:"exercises"`
	Workouts     map[string]WorkoutAggregate  `json:"workouts"`
	RowsReceived int                          `json:"rows_received"`
	Rejected     map[string]int               `json:"rejected"`
}

// RowsRejected returns the total number of excluded rows.
func (s *Snapshot) RowsRejected() int {
	n := 0
	for _, c := range s.Rejected {
		n += c
	}
	return n
}

// Dataset is a loaded snapshot plus the metadata of the load.
type Dataset struct {
	ID       uuid.UUID `json:"id"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
	*Snapshot
}

// DatasetInfo is the summary of a dataset returned by info queries.
type DatasetInfo struct {
	Loaded       bool           `json:"loaded"`
	ID           string         `json:"id,omitempty"`
	Source       string         `json:"source,omitempty"`
	LoadedAt     *time.Time     `json:"loaded_at,omitempty"`
	Variant      SchemaVariant  `json:"variant,omitempty"`
	RowsReceived int            `json:"rows_received"`
	SetsAccepted int            `json:"sets_accepted"`
	Rejected     map[string]int `json:"rejected,omitempty"`
	Exercises    int            `json:"exercises"`
	Workouts     int            `json:"workouts"`
	FirstDate    string         `json:"first_date,omitempty"`
	LastDate     string         `json:"last_date,omitempty"`
}
