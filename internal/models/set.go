package models

// Set is the canonical record for one performed exercise set.
type Set struct {
	Date            string  `json:"date"`
	WorkoutName     string  `json:"workout_name"`
	ExerciseName    string  `json:"exercise_name"`
	SetNumber       int     `json:"set_number"`
	Weight          float64 `json:"weight"`
	Unit            string  `json:"unit"`
	Reps            int     `json:"reps"`
	Duration        string  `json:"duration,omitempty"`
	DurationSec     float64 `json:"duration_sec,omitempty"`
	WorkoutDuration string  `json:"workout_duration,omitempty"`
	Notes           string  `json:"notes,omitempty"`

	// Seq is the set's position among the accepted sets of its dataset.
	Seq int     `json:"seq"`
	PR  PRFlags `json:"pr"`
}

// Volume returns weight * reps for this set.
func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// PRFlags marks which personal records a set holds for its exercise.
type PRFlags struct {
	Weight    bool `json:"weight"`
	Volume    bool `json:"volume"`
	OneRepMax bool `json:"one_rep_max"`
}

// Any reports whether at least one flag is set.
func (f PRFlags) Any() bool {
	return f.Weight || f.Volume || f.OneRepMax
}
