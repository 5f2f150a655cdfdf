package analysis

import "github.com/claude/liftlog/internal/models"

// Classify reports which records of agg the set holds. A flag is set when
// the set's date, weight and reps equal the stored triple of that record.
func Classify(s models.Set, agg models.ExerciseAggregate) models.PRFlags {
	return models.PRFlags{
		Weight: agg.MaxWeightDate != "" &&
			s.Date == agg.MaxWeightDate && s.Weight == agg.MaxWeight && s.Reps == agg.MaxWeightReps,
		Volume: agg.MaxVolumeDate != "" &&
			s.Date == agg.MaxVolumeDate && s.Weight == agg.MaxVolumeWeight && s.Reps == agg.MaxVolumeReps,
		OneRepMax: agg.Max1RMDate != "" &&
			s.Date == agg.Max1RMDate && s.Weight == agg.Max1RMWeight && s.Reps == agg.Max1RMReps,
	}
}

// Annotate classifies every set against its exercise aggregate. Only the
// first matching set per exercise and metric is flagged, so identical
// sets on the record day do not share a record.
func Annotate(sets []models.Set, exercises map[string]models.ExerciseAggregate) []models.PRFlags {
	flags := make([]models.PRFlags, len(sets))
	claimed := make(map[string]*models.PRFlags)

	for i, s := range sets {
		agg, ok := exercises[s.ExerciseName]
		if !ok {
			continue
		}
		c := claimed[s.ExerciseName]
		if c == nil {
			c = &models.PRFlags{}
			claimed[s.ExerciseName] = c
		}

		f := Classify(s, agg)
		if f.Weight && !c.Weight {
			flags[i].Weight, c.Weight = true, true
		}
		if f.Volume && !c.Volume {
			flags[i].Volume, c.Volume = true, true
		}
		if f.OneRepMax && !c.OneRepMax {
			flags[i].OneRepMax, c.OneRepMax = true, true
		}
	}
	return flags
}
