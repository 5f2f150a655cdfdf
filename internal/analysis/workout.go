package analysis

import (
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// AggregateByDate groups sets by calendar day and, within a day, by
// exercise in first-appearance order.
func AggregateByDate(sets []models.Set) map[string]models.WorkoutAggregate {
	days := make(map[string][]models.Set)
	for _, s := range sets {
		days[s.Date] = append(days[s.Date], s)
	}

	out := make(map[string]models.WorkoutAggregate, len(days))
	for date, daySets := range days {
		out[date] = buildWorkout(date, daySets)
	}
	return out
}

func buildWorkout(date string, sets []models.Set) models.WorkoutAggregate {
	w := models.WorkoutAggregate{
		Date:      date,
		Exercises: make(map[string][]models.Set),
	}

	for _, s := range sets {
		if w.Name == "" {
			w.Name = s.WorkoutName
		}
		if _, seen := w.Exercises[s.ExerciseName]; !seen {
			w.ExerciseOrder = append(w.ExerciseOrder, s.ExerciseName)
		}
		w.Exercises[s.ExerciseName] = append(w.Exercises[s.ExerciseName], s)
		w.TotalVolume += s.Volume()
		w.SetCount++
	}

	w.Duration = workoutDuration(sets)
	return w
}

// workoutDuration prefers an explicit workout duration over one derived
// from per-set seconds.
func workoutDuration(sets []models.Set) string {
	for _, s := range sets {
		if s.WorkoutDuration != "" {
			return s.WorkoutDuration
		}
	}
	for _, s := range sets {
		if s.DurationSec > 0 && s.DurationSec <= MaxDurationSec {
			return FormatDuration(s.DurationSec)
		}
	}
	return ""
}

// MaxDurationSec is the longest per-set duration taken as a workout length.
const MaxDurationSec = 24 * 3600

// FormatDuration renders seconds as "{h}h {m}m", or "{m}m" under an hour.
// Input is clamped to [0, MaxDurationSec].
func FormatDuration(sec float64) string {
	sec = max(0, min(sec, MaxDurationSec))
	total := int(sec)
	h := total / 3600
	m := (total % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
