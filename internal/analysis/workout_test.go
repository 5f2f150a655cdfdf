package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claude/liftlog/internal/models"
)

// TestAggregateByDate verifies per-day grouping, exercise order and totals.
func TestAggregateByDate(t *testing.T) {
	sets := []models.Set{
		{Date: "2024-01-01", WorkoutName: "Push", ExerciseName: "Bench Press", Weight: 80, Reps: 5, WorkoutDuration: "1h 5m"},
		{Date: "2024-01-01", WorkoutName: "Push", ExerciseName: "Overhead Press", Weight: 40, Reps: 6},
		{Date: "2024-01-01", WorkoutName: "Push", ExerciseName: "Bench Press", Weight: 85, Reps: 3},
		{Date: "2024-01-03", WorkoutName: "Pull", ExerciseName: "Row", Weight: 60, Reps: 8},
	}

	days := AggregateByDate(sets)
	require.Len(t, days, 2)

	d := days["2024-01-01"]
	assert.Equal(t, "Push", d.Name)
	assert.Equal(t, []string{"Bench Press", "Overhead Press"}, d.ExerciseOrder)
	assert.Len(t, d.Exercises["Bench Press"], 2)
	assert.Equal(t, 3, d.SetCount)
	assert.Equal(t, 400.0+240.0+255.0, d.TotalVolume)
	assert.Equal(t, "1h 5m", d.Duration)

	assert.Equal(t, "", days["2024-01-03"].Duration)
}

// TestAggregateByDate_DurationFromSeconds verifies the fallback to per-set
// seconds when no workout duration is given.
func TestAggregateByDate_DurationFromSeconds(t *testing.T) {
	days := AggregateByDate([]models.Set{
		{Date: "2024-01-01", ExerciseName: "Plank"},
		{Date: "2024-01-01", ExerciseName: "Plank", DurationSec: 3725},
	})
	assert.Equal(t, "1h 2m", days["2024-01-01"].Duration)
}

// TestAggregateByDate_SkipsImplausibleSeconds verifies an out-of-range
// seconds cell does not become the workout duration.
func TestAggregateByDate_SkipsImplausibleSeconds(t *testing.T) {
	days := AggregateByDate([]models.Set{
		{Date: "2024-01-01", ExerciseName: "Plank", DurationSec: 1e20},
		{Date: "2024-01-01", ExerciseName: "Plank", DurationSec: 600},
		{Date: "2024-01-02", ExerciseName: "Plank", DurationSec: 1e20},
	})
	assert.Equal(t, "10m", days["2024-01-01"].Duration)
	assert.Equal(t, "", days["2024-01-02"].Duration)
}

// TestAggregateByDate_NameFromFirstLabel verifies the workout name is the
// first non-empty label of the day.
func TestAggregateByDate_NameFromFirstLabel(t *testing.T) {
	days := AggregateByDate([]models.Set{
		{Date: "2024-01-01", ExerciseName: "Squat"},
		{Date: "2024-01-01", WorkoutName: "Legs", ExerciseName: "Squat"},
	})
	assert.Equal(t, "Legs", days["2024-01-01"].Name)
}

// TestFormatDuration verifies hour and minute rendering.
func TestFormatDuration(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{0, "0m"},
		{59, "0m"},
		{2700, "45m"},
		{3600, "1h 0m"},
		{4500, "1h 15m"},
		{7322.9, "2h 2m"},
		{-60, "0m"},
		{1e20, "24h 0m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.sec); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}
