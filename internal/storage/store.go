// Package storage holds the currently loaded dataset in memory and answers
// queries against it.
package storage

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/models"
)

// ErrNotFound is returned when an exercise or workout day does not exist in
// the current dataset.
var ErrNotFound = errors.New("not found")

// ErrInvalidDate is returned for range bounds that are not dates.
var ErrInvalidDate = errors.New("invalid date")

// Store holds one dataset at a time. Replace swaps it wholesale, so readers
// always see a complete snapshot.
type Store struct {
	current atomic.Pointer[models.Dataset]
	empty   *models.Dataset
}

// New creates an empty Store.
func New() *Store {
	return &Store{empty: &models.Dataset{Snapshot: analysis.Build(nil, nil)}}
}

// Replace installs snap as the current dataset and returns its envelope.
func (s *Store) Replace(snap *models.Snapshot, source string) *models.Dataset {
	ds := &models.Dataset{
		ID:       uuid.New(),
		Source:   source,
		LoadedAt: time.Now().UTC(),
		Snapshot: snap,
	}
	s.current.Store(ds)
	return ds
}

// Current returns the loaded dataset, or an empty one with a zero ID when
// nothing has been loaded yet.
func (s *Store) Current() *models.Dataset {
	if ds := s.current.Load(); ds != nil {
		return ds
	}
	return s.empty
}

// Loaded reports whether a dataset has been installed.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// DatasetInfo summarizes the current dataset.
func (s *Store) DatasetInfo(ctx context.Context) (*models.DatasetInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds := s.Current()
	info := &models.DatasetInfo{
		Loaded:       s.Loaded(),
		Variant:      ds.Variant,
		RowsReceived: ds.RowsReceived,
		SetsAccepted: len(ds.Sets),
		Rejected:     ds.Rejected,
		Exercises:    len(ds.Exercises),
		Workouts:     len(ds.Workouts),
	}
	if info.Loaded {
		loadedAt := ds.LoadedAt
		info.ID = ds.ID.String()
		info.Source = ds.Source
		info.LoadedAt = &loadedAt
	}
	info.FirstDate, info.LastDate = analysis.DateRange(ds.Workouts)
	return info, nil
}

// findExercise resolves name exactly first, then case-insensitively.
func findExercise(exercises map[string]models.ExerciseAggregate, name string) (models.ExerciseAggregate, bool) {
	name = strings.TrimSpace(name)
	if agg, ok := exercises[name]; ok {
		return agg, true
	}
	for key, agg := range exercises {
		if strings.EqualFold(key, name) {
			return agg, true
		}
	}
	return models.ExerciseAggregate{}, false
}
