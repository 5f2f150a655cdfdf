package strong

import (
	"testing"

	"github.com/claude/liftlog/internal/models"
)

// TestDetectVariant verifies the first row alone decides the layout.
func TestDetectVariant(t *testing.T) {
	legacy := models.RawRow{"Workout #": "1", "Exercise Name": "Squat"}
	current := models.RawRow{"Workout Name": "Legs", "Exercise Name": "Squat"}

	cases := []struct {
		name string
		rows []models.RawRow
		want models.SchemaVariant
	}{
		{"empty", nil, models.VariantCurrent},
		{"current", []models.RawRow{current}, models.VariantCurrent},
		{"legacy", []models.RawRow{legacy}, models.VariantLegacy},
		{"legacy first wins", []models.RawRow{legacy, current}, models.VariantLegacy},
		{"current first wins", []models.RawRow{current, legacy}, models.VariantCurrent},
	}
	for _, tc := range cases {
		if got := DetectVariant(tc.rows); got != tc.want {
			t.Errorf("%s: DetectVariant = %q, want %q", tc.name, got, tc.want)
		}
	}
}
