// Package analysis derives per-exercise and per-day aggregates from
// normalized sets and classifies personal records.
package analysis

import "github.com/claude/liftlog/internal/models"

// MaxRepsFor1RM is the highest rep count the 1RM estimate is applied to.
const MaxRepsFor1RM = 15

// Estimate1RM returns the Brzycki estimate w * 36 / (37 - reps).
// Rep counts outside 1..MaxRepsFor1RM yield 0.
func Estimate1RM(weight float64, reps int) float64 {
	if reps <= 0 || reps > MaxRepsFor1RM {
		return 0
	}
	return weight * (36 / float64(37-reps))
}

// AggregateByExercise folds sets, in input order, into one aggregate per
// exercise name. Records move only on a strictly better value, so the
// earliest set wins a tie. Sets with zero reps never hold a record.
func AggregateByExercise(sets []models.Set) map[string]models.ExerciseAggregate {
	out := make(map[string]models.ExerciseAggregate)
	for _, s := range sets {
		out[s.ExerciseName] = foldExercise(out[s.ExerciseName], s)
	}
	return out
}

func foldExercise(agg models.ExerciseAggregate, s models.Set) models.ExerciseAggregate {
	if agg.Name == "" {
		agg.Name = s.ExerciseName
	}
	agg.Sets = append(agg.Sets, s)
	agg.TotalVolume += s.Volume()
	agg.TotalReps += s.Reps

	if models.DayAfter(s.Date, agg.LastUsed) {
		agg.LastUsed = s.Date
	}

	if s.Reps <= 0 {
		return agg
	}

	if s.Weight > agg.MaxWeight {
		agg.MaxWeight = s.Weight
		agg.MaxWeightReps = s.Reps
		agg.MaxWeightDate = s.Date
	}

	if v := s.Volume(); v > agg.MaxVolume {
		agg.MaxVolume = v
		agg.MaxVolumeWeight = s.Weight
		agg.MaxVolumeReps = s.Reps
		agg.MaxVolumeDate = s.Date
	}

	if e := Estimate1RM(s.Weight, s.Reps); e > agg.Max1RM {
		agg.Max1RM = e
		agg.Max1RMWeight = s.Weight
		agg.Max1RMReps = s.Reps
		agg.Max1RMDate = s.Date
	}

	return agg
}
