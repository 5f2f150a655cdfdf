package mcp

import (
	"context"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.Store (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	DatasetInfo(ctx context.Context) (*models.DatasetInfo, error)
	ListExercises(ctx context.Context, query string) ([]analysis.ExerciseSummary, error)
	GetExercise(ctx context.Context, name string) (*models.ExerciseAggregate, error)
	GetProgression(ctx context.Context, name string) ([]analysis.ProgressionPoint, error)
	ListWorkouts(ctx context.Context, start, end string) ([]analysis.WorkoutSummary, error)
	GetWorkout(ctx context.Context, date string) (*models.WorkoutAggregate, error)
	GetRecords(ctx context.Context, exercise string) ([]analysis.ExerciseRecords, error)
}

// Compile-time check: *storage.Store satisfies DataSource.
var _ DataSource = (*storage.Store)(nil)
