package strong

import (
	"errors"
	"strings"

	"github.com/claude/liftlog/internal/models"
)

// restTimerMarker appears in the Set Order column of informational rows
// that the source app emits between sets.
const restTimerMarker = "Rest Timer"

// Rejection errors returned by Normalize. They mark rows to exclude and are
// not failures of the dataset.
var (
	ErrMissingExercise = errors.New("missing exercise name")
	ErrMissingDate     = errors.New("missing date")
	ErrRestTimer       = errors.New("rest timer row")
)

// RejectReason maps a rejection error to its counter key.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, ErrRestTimer):
		return models.RejectRestTimer
	case errors.Is(err, ErrMissingDate):
		return models.RejectMissingDate
	default:
		return models.RejectMissingExercise
	}
}

// sourceRow is a raw row resolved to one schema variant.
type sourceRow interface {
	canonical() models.Set
}

type legacyRow models.RawRow

type currentRow models.RawRow

func resolve(row models.RawRow, variant models.SchemaVariant) sourceRow {
	if variant == models.VariantLegacy {
		return legacyRow(row)
	}
	return currentRow(row)
}

// Normalize converts one raw row into a canonical Set. Rows without an
// exercise name or date, and rest-timer rows, are rejected with one of the
// Err* values.
func Normalize(row models.RawRow, variant models.SchemaVariant) (models.Set, error) {
	if strings.TrimSpace(row[models.ColExerciseName]) == "" {
		return models.Set{}, ErrMissingExercise
	}
	if strings.Contains(row[models.ColSetOrder], restTimerMarker) {
		return models.Set{}, ErrRestTimer
	}
	if strings.TrimSpace(row[models.ColDate]) == "" {
		return models.Set{}, ErrMissingDate
	}
	return resolve(row, variant).canonical(), nil
}

func (r legacyRow) canonical() models.Set {
	raw := models.RawRow(r)
	s := common(raw)
	s.WorkoutName = "Workout " + strings.TrimSpace(raw[models.ColWorkoutNumber])
	return s
}

func (r currentRow) canonical() models.Set {
	raw := models.RawRow(r)
	s := common(raw)
	s.WorkoutName = strings.TrimSpace(raw[models.ColWorkoutName])
	s.Notes = raw[models.ColNotes]
	return s
}

// common maps the columns both layouts share.
func common(raw models.RawRow) models.Set {
	date, _ := models.DayKey(raw[models.ColDate])
	unit := strings.TrimSpace(raw[models.ColWeightUnit])
	if unit == "" {
		unit = "kg"
	}

	s := models.Set{
		Date:            date,
		ExerciseName:    strings.TrimSpace(raw[models.ColExerciseName]),
		SetNumber:       setNumber(raw[models.ColSetOrder]),
		Weight:          CoerceWeight(raw.Get(models.ColWeight, models.ColWeightKg)),
		Unit:            unit,
		Reps:            CoerceReps(raw[models.ColReps]),
		WorkoutDuration: strings.TrimSpace(raw[models.ColWorkoutDuration]),
	}

	if v, ok := raw[models.ColDurationSec]; ok {
		s.Duration = v
		s.DurationSec = CoerceWeight(v)
	} else {
		s.Duration = raw[models.ColDuration]
	}
	return s
}

// setNumber reads the Set Order column. Missing or non-numeric orders
// (warm-up and drop-set letters) become set 1.
func setNumber(raw string) int {
	if strings.TrimSpace(raw) == "" {
		return 1
	}
	n := CoerceReps(raw)
	if n < 1 {
		return 1
	}
	return n
}
