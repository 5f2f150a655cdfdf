package strong

import (
	"errors"
	"testing"

	"github.com/claude/liftlog/internal/models"
)

// TestNormalizeCurrentRow verifies every column of the current layout lands on the Set.
func TestNormalizeCurrentRow(t *testing.T) {
	row := models.RawRow{
		"Date":             "2024-01-01 18:03:12",
		"Workout Name":     "Push Day",
		"Exercise Name":    "Bench Press",
		"Set Order":        "2",
		"Weight":           "85",
		"Weight Unit":      "kg",
		"Reps":             "3",
		"Duration":         "",
		"Workout Duration": "1h 5m",
		"Notes":            "felt heavy",
	}
	s, err := Normalize(row, models.VariantCurrent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Date != "2024-01-01" {
		t.Errorf("Date = %q, want 2024-01-01", s.Date)
	}
	if s.WorkoutName != "Push Day" {
		t.Errorf("WorkoutName = %q", s.WorkoutName)
	}
	if s.ExerciseName != "Bench Press" {
		t.Errorf("ExerciseName = %q", s.ExerciseName)
	}
	if s.SetNumber != 2 {
		t.Errorf("SetNumber = %d, want 2", s.SetNumber)
	}
	if s.Weight != 85 || s.Reps != 3 {
		t.Errorf("weight x reps = %v x %d, want 85 x 3", s.Weight, s.Reps)
	}
	if s.WorkoutDuration != "1h 5m" {
		t.Errorf("WorkoutDuration = %q", s.WorkoutDuration)
	}
	if s.Notes != "felt heavy" {
		t.Errorf("Notes = %q", s.Notes)
	}
}

// TestNormalizeLegacyRow verifies the synthesized workout name and the
// legacy column synonyms.
func TestNormalizeLegacyRow(t *testing.T) {
	row := models.RawRow{
		"Workout #":      "12",
		"Date":           "2023-11-05 07:30:00",
		"Exercise Name":  "Squat",
		"Set Order":      "1",
		"Weight (kg)":    "100",
		"Reps":           "5",
		"Duration (sec)": "3725",
		"Notes":          "ignored",
	}
	s, err := Normalize(row, models.VariantLegacy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.WorkoutName != "Workout 12" {
		t.Errorf("WorkoutName = %q, want %q", s.WorkoutName, "Workout 12")
	}
	if s.Notes != "" {
		t.Errorf("Notes = %q, want empty for legacy rows", s.Notes)
	}
	if s.Weight != 100 {
		t.Errorf("Weight = %v, want 100", s.Weight)
	}
	if s.Unit != "kg" {
		t.Errorf("Unit = %q, want kg", s.Unit)
	}
	if s.DurationSec != 3725 {
		t.Errorf("DurationSec = %v, want 3725", s.DurationSec)
	}
	if s.Duration != "3725" {
		t.Errorf("Duration = %q, want raw text", s.Duration)
	}
}

// TestNormalizeRejections verifies rows excluded from every aggregate.
func TestNormalizeRejections(t *testing.T) {
	cases := []struct {
		name   string
		row    models.RawRow
		want   error
		reason string
	}{
		{
			name:   "rest timer",
			row:    models.RawRow{"Date": "2024-01-01", "Exercise Name": "Squat", "Set Order": "Rest Timer 1"},
			want:   ErrRestTimer,
			reason: models.RejectRestTimer,
		},
		{
			name:   "missing exercise",
			row:    models.RawRow{"Date": "2024-01-01", "Set Order": "1", "Reps": "5"},
			want:   ErrMissingExercise,
			reason: models.RejectMissingExercise,
		},
		{
			name:   "blank exercise",
			row:    models.RawRow{"Date": "2024-01-01", "Exercise Name": "  ", "Set Order": "1"},
			want:   ErrMissingExercise,
			reason: models.RejectMissingExercise,
		},
		{
			name:   "missing date",
			row:    models.RawRow{"Exercise Name": "Squat", "Set Order": "1"},
			want:   ErrMissingDate,
			reason: models.RejectMissingDate,
		},
	}
	for _, tc := range cases {
		_, err := Normalize(tc.row, models.VariantCurrent)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
			continue
		}
		if got := RejectReason(err); got != tc.reason {
			t.Errorf("%s: reason = %q, want %q", tc.name, got, tc.reason)
		}
	}
}

// TestNormalizeDefaults verifies the fallbacks for missing unit and odd set orders.
func TestNormalizeDefaults(t *testing.T) {
	cases := []struct {
		setOrder string
		want     int
	}{
		{"", 1},
		{"W", 1},
		{"0", 1},
		{"4", 4},
	}
	for _, tc := range cases {
		row := models.RawRow{"Date": "2024-01-01", "Exercise Name": "Row", "Set Order": tc.setOrder}
		s, err := Normalize(row, models.VariantCurrent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.SetNumber != tc.want {
			t.Errorf("Set Order %q: SetNumber = %d, want %d", tc.setOrder, s.SetNumber, tc.want)
		}
		if s.Unit != "kg" {
			t.Errorf("Unit = %q, want kg", s.Unit)
		}
	}
}
