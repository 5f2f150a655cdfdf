package analysis

import (
	"sort"
	"strings"

	"github.com/claude/liftlog/internal/models"
)

// ExerciseSummary is the list view of one exercise aggregate.
type ExerciseSummary struct {
	Name          string  `json:"name"`
	LastUsed      string  `json:"last_used"`
	SetCount      int     `json:"set_count"`
	TotalVolume   float64 `json:"total_volume"`
	TotalReps     int     `json:"total_reps"`
	MaxWeight     float64 `json:"max_weight"`
	MaxWeightReps int     `json:"max_weight_reps"`
	MaxVolume     float64 `json:"max_volume"`
	Max1RM        float64 `json:"max_1rm"`
	Unit          string  `json:"unit,omitempty"`
}

// UnitOf returns the weight unit shared by all sets, or "" when the sets
// are empty or mix units.
func UnitOf(sets []models.Set) string {
	unit := ""
	for _, s := range sets {
		switch {
		case unit == "":
			unit = s.Unit
		case s.Unit != unit:
			return ""
		}
	}
	return unit
}

// ListExercises returns the exercises whose name contains query
// (case-insensitive), most recently used first and then by name. Day keys
// are YYYY-MM-DD, so they order as strings.
func ListExercises(exercises map[string]models.ExerciseAggregate, query string) []ExerciseSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]ExerciseSummary, 0, len(exercises))
	for _, agg := range exercises {
		if q != "" && !strings.Contains(strings.ToLower(agg.Name), q) {
			continue
		}
		out = append(out, ExerciseSummary{
			Name:          agg.Name,
			LastUsed:      agg.LastUsed,
			SetCount:      len(agg.Sets),
			TotalVolume:   agg.TotalVolume,
			TotalReps:     agg.TotalReps,
			MaxWeight:     agg.MaxWeight,
			MaxWeightReps: agg.MaxWeightReps,
			MaxVolume:     agg.MaxVolume,
			Max1RM:        agg.Max1RM,
			Unit:          UnitOf(agg.Sets),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.LastUsed != b.LastUsed {
			return a.LastUsed > b.LastUsed
		}
		return a.Name < b.Name
	})
	return out
}

// ProgressionPoint summarizes one exercise on one day.
type ProgressionPoint struct {
	Date          string  `json:"date"`
	TopWeight     float64 `json:"top_weight"`
	TopWeightReps int     `json:"top_weight_reps"`
	Volume        float64 `json:"volume"`
	Sets          int     `json:"sets"`
	Best1RM       float64 `json:"best_1rm"`
}

// Progression returns the per-day top set, summed volume and best 1RM
// estimate of an exercise, oldest day first.
func Progression(agg models.ExerciseAggregate) []ProgressionPoint {
	byDay := make(map[string]*ProgressionPoint)
	var order []string

	for _, s := range agg.Sets {
		p, ok := byDay[s.Date]
		if !ok {
			p = &ProgressionPoint{Date: s.Date, TopWeight: s.Weight, TopWeightReps: s.Reps}
			byDay[s.Date] = p
			order = append(order, s.Date)
		} else if s.Weight > p.TopWeight {
			p.TopWeight = s.Weight
			p.TopWeightReps = s.Reps
		}
		p.Volume += s.Volume()
		p.Sets++
		if e := Estimate1RM(s.Weight, s.Reps); e > p.Best1RM {
			p.Best1RM = e
		}
	}

	out := make([]ProgressionPoint, 0, len(order))
	for _, d := range order {
		out = append(out, *byDay[d])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// WorkoutSummary is the list view of one workout day.
type WorkoutSummary struct {
	Date          string  `json:"date"`
	Name          string  `json:"name"`
	ExerciseCount int     `json:"exercise_count"`
	SetCount      int     `json:"set_count"`
	TotalVolume   float64 `json:"total_volume"`
	Duration      string  `json:"duration,omitempty"`
	Unit          string  `json:"unit,omitempty"`
}

// ListWorkouts returns workout days between start and end (inclusive day
// keys, either may be empty), newest first.
func ListWorkouts(workouts map[string]models.WorkoutAggregate, start, end string) []WorkoutSummary {
	out := make([]WorkoutSummary, 0, len(workouts))
	for _, w := range workouts {
		if start != "" && models.DayAfter(start, w.Date) {
			continue
		}
		if end != "" && models.DayAfter(w.Date, end) {
			continue
		}
		out = append(out, WorkoutSummary{
			Date:          w.Date,
			Name:          w.Name,
			ExerciseCount: len(w.ExerciseOrder),
			SetCount:      w.SetCount,
			TotalVolume:   w.TotalVolume,
			Duration:      w.Duration,
			Unit:          workoutUnit(w),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func workoutUnit(w models.WorkoutAggregate) string {
	var sets []models.Set
	for _, name := range w.ExerciseOrder {
		sets = append(sets, w.Exercises[name]...)
	}
	return UnitOf(sets)
}

// Record is one personal record and the set that produced it.
type Record struct {
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Date   string  `json:"date"`
}

// ExerciseRecords holds the records of one exercise. A nil record means
// no set with reps qualified for it.
type ExerciseRecords struct {
	Exercise  string  `json:"exercise"`
	Weight    *Record `json:"weight,omitempty"`
	Volume    *Record `json:"volume,omitempty"`
	OneRepMax *Record `json:"one_rep_max,omitempty"`
}

// RecordsOf extracts the record table of one aggregate.
func RecordsOf(agg models.ExerciseAggregate) ExerciseRecords {
	r := ExerciseRecords{Exercise: agg.Name}
	if agg.MaxWeightDate != "" {
		r.Weight = &Record{Value: agg.MaxWeight, Weight: agg.MaxWeight, Reps: agg.MaxWeightReps, Date: agg.MaxWeightDate}
	}
	if agg.MaxVolumeDate != "" {
		r.Volume = &Record{Value: agg.MaxVolume, Weight: agg.MaxVolumeWeight, Reps: agg.MaxVolumeReps, Date: agg.MaxVolumeDate}
	}
	if agg.Max1RMDate != "" {
		r.OneRepMax = &Record{Value: agg.Max1RM, Weight: agg.Max1RMWeight, Reps: agg.Max1RMReps, Date: agg.Max1RMDate}
	}
	return r
}

// Records returns the record table of every exercise, sorted by name.
func Records(exercises map[string]models.ExerciseAggregate) []ExerciseRecords {
	out := make([]ExerciseRecords, 0, len(exercises))
	for _, agg := range exercises {
		out = append(out, RecordsOf(agg))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Exercise < out[j].Exercise })
	return out
}

// DateRange returns the earliest and latest parseable day among the
// workout keys.
func DateRange(workouts map[string]models.WorkoutAggregate) (first, last string) {
	for d := range workouts {
		if _, ok := models.ParseDay(d); !ok {
			continue
		}
		if first == "" || models.DayAfter(first, d) {
			first = d
		}
		if last == "" || models.DayAfter(d, last) {
			last = d
		}
	}
	return first, last
}
