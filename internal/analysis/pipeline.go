package analysis

import (
	"log/slog"

	"github.com/claude/liftlog/internal/ingest/strong"
	"github.com/claude/liftlog/internal/models"
)

// Build runs the full pipeline over one dataset's raw rows: schema
// detection, normalization, exercise aggregation, PR annotation and
// per-day grouping. The result depends only on rows; log receives
// rejection diagnostics and may be nil.
func Build(rows []models.RawRow, log *slog.Logger) *models.Snapshot {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	variant := strong.DetectVariant(rows)
	snap := &models.Snapshot{
		Variant:      variant,
		RowsReceived: len(rows),
		Rejected:     make(map[string]int),
	}

	sets := make([]models.Set, 0, len(rows))
	for i, row := range rows {
		s, err := strong.Normalize(row, variant)
		if err != nil {
			reason := strong.RejectReason(err)
			snap.Rejected[reason]++
			log.Debug("row rejected", "row", i+1, "reason", reason)
			continue
		}
		s.Seq = len(sets)
		sets = append(sets, s)
	}

	for i, f := range Annotate(sets, AggregateByExercise(sets)) {
		sets[i].PR = f
	}

	// Aggregate again over the flagged sets so the copies held by the
	// aggregates carry their flags.
	snap.Sets = sets
	snap.Exercises = AggregateByExercise(sets)
	snap.Workouts = AggregateByDate(sets)

	log.Info("dataset built",
		"variant", variant,
		"rows", snap.RowsReceived,
		"sets", len(sets),
		"rejected", snap.RowsRejected(),
		"exercises", len(snap.Exercises),
		"workouts", len(snap.Workouts))
	return snap
}
