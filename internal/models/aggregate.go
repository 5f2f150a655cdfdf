package models

// ExerciseAggregate collects every set of one exercise together with its
// running records. Each record keeps the weight, reps and date of the set
// that produced it.
type ExerciseAggregate struct {
	Name string `json:"name"`
	Sets []Set  `json:"sets"`

	MaxWeight     float64 `json:"max_weight"`
	MaxWeightReps int     `json:"max_weight_reps"`
	MaxWeightDate string  `json:"max_weight_date"`

	MaxVolume       float64 `json:"max_volume"`
	MaxVolumeWeight float64 `json:"max_volume_weight"`
	MaxVolumeReps   int     `json:"max_volume_reps"`
	MaxVolumeDate   string  `json:"max_volume_date"`

	Max1RM       float64 `json:"max_1rm"`
	Max1RMWeight float64 `json:"max_1rm_weight"`
	Max1RMReps   int     `json:"max_1rm_reps"`
	Max1RMDate   string  `json:"max_1rm_date"`

	LastUsed string `json:"last_used"`

	TotalVolume float64 `json:"total_volume"`
	TotalReps   int     `json:"total_reps"`
}

// WorkoutAggregate groups the sets of one calendar day by exercise.
type WorkoutAggregate struct {
	Date string `json:"date"`
	Name string `json:"name"`

	Exercises map[string][]Set `json:"exercises"`
	// ExerciseOrder lists exercise names in the order they first appeared.
	ExerciseOrder []string `json:"exercise_order"`

	TotalVolume float64 `json:"total_volume"`
	SetCount    int     `json:"set_count"`
	Duration    string  `json:"duration"`
}
