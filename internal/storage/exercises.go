package storage

import (
	"context"
	"fmt"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/models"
)

// ListExercises returns exercise summaries whose name contains query,
// most recently used first.
func (s *Store) ListExercises(ctx context.Context, query string) ([]analysis.ExerciseSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return analysis.ListExercises(s.Current().Exercises, query), nil
}

// GetExercise returns one exercise aggregate with its annotated sets.
func (s *Store) GetExercise(ctx context.Context, name string) (*models.ExerciseAggregate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	agg, ok := findExercise(s.Current().Exercises, name)
	if !ok {
		return nil, fmt.Errorf("exercise %q: %w", name, ErrNotFound)
	}
	return &agg, nil
}

// GetProgression returns the per-day progression of one exercise.
func (s *Store) GetProgression(ctx context.Context, name string) ([]analysis.ProgressionPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	agg, ok := findExercise(s.Current().Exercises, name)
	if !ok {
		return nil, fmt.Errorf("exercise %q: %w", name, ErrNotFound)
	}
	return analysis.Progression(agg), nil
}

// GetRecords returns the personal record table, optionally limited to one
// exercise.
func (s *Store) GetRecords(ctx context.Context, exercise string) ([]analysis.ExerciseRecords, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exercises := s.Current().Exercises
	if exercise == "" {
		return analysis.Records(exercises), nil
	}
	agg, ok := findExercise(exercises, exercise)
	if !ok {
		return nil, fmt.Errorf("exercise %q: %w", exercise, ErrNotFound)
	}
	return []analysis.ExerciseRecords{analysis.RecordsOf(agg)}, nil
}
