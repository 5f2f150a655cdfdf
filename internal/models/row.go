package models

// RawRow is one parsed line of a workout export: column name -> cell value.
// A missing key means the column was absent for that row.
type RawRow map[string]string

// SchemaVariant identifies which source-app column layout a dataset uses.
type SchemaVariant string

const (
	// VariantLegacy rows carry a "Workout #" column and no notes.
	VariantLegacy SchemaVariant = "legacy"
	// VariantCurrent rows carry "Workout Name" and "Notes".
	VariantCurrent SchemaVariant = "current"
)

// Export column names recognized by the normalizer.
const (
	ColDate            = "Date"
	ColWorkoutName     = "Workout Name"
	ColWorkoutNumber   = "Workout #"
	ColExerciseName    = "Exercise Name"
	ColSetOrder        = "Set Order"
	ColWeight          = "Weight"
	ColWeightKg        = "Weight (kg)"
	ColWeightUnit      = "Weight Unit"
	ColReps            = "Reps"
	ColDuration        = "Duration"
	ColDurationSec     = "Duration (sec)"
	ColWorkoutDuration = "Workout Duration"
	ColNotes           = "Notes"
)

// Lookup returns the value of the first present column among names.
func (r RawRow) Lookup(names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := r[n]; ok {
			return v, true
		}
	}
	return "", false
}

// Get is Lookup without the presence flag.
func (r RawRow) Get(names ...string) string {
	v, _ := r.Lookup(names...)
	return v
}
