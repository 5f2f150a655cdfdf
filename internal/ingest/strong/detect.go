package strong

import "github.com/claude/liftlog/internal/models"

// DetectVariant decides the schema of a whole dataset from its first row:
// a "Workout #" column means the legacy layout. The answer applies to every
// row; datasets that mix both layouts are not supported and their minority
// rows normalize to whatever the detected layout reads from them.
func DetectVariant(rows []models.RawRow) models.SchemaVariant {
	if len(rows) == 0 {
		return models.VariantCurrent
	}
	if _, ok := rows[0][models.ColWorkoutNumber]; ok {
		return models.VariantLegacy
	}
	return models.VariantCurrent
}
