package storage

import (
	"context"
	"fmt"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/models"
)

// ListWorkouts returns workout days between start and end, newest first.
// Bounds accept a day or a timestamp and may be empty.
func (s *Store) ListWorkouts(ctx context.Context, start, end string) ([]analysis.WorkoutSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	startKey, err := boundKey(start)
	if err != nil {
		return nil, err
	}
	endKey, err := boundKey(end)
	if err != nil {
		return nil, err
	}
	return analysis.ListWorkouts(s.Current().Workouts, startKey, endKey), nil
}

// GetWorkout returns the workout of the calendar day containing date.
func (s *Store) GetWorkout(ctx context.Context, date string) (*models.WorkoutAggregate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, _ := models.DayKey(date)
	w, ok := s.Current().Workouts[key]
	if !ok {
		return nil, fmt.Errorf("workout %q: %w", date, ErrNotFound)
	}
	return &w, nil
}

func boundKey(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	key, ok := models.DayKey(s)
	if !ok {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return key, nil
}
