package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/models"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func benchRows(weights ...string) []models.RawRow {
	rows := make([]models.RawRow, 0, len(weights))
	for i, w := range weights {
		rows = append(rows, models.RawRow{
			models.ColDate:         "2024-01-01",
			models.ColWorkoutName:  "Push Day",
			models.ColExerciseName: "Bench Press",
			models.ColSetOrder:     "1",
			models.ColWeight:       w,
			models.ColReps:         "5",
		})
		if i%2 == 1 {
			rows[i][models.ColDate] = "2024-01-03"
		}
	}
	return rows
}

// TestStore_Empty verifies queries against a store with no dataset.
func TestStore_Empty(t *testing.T) {
	ctx := context.Background()
	s := New()

	info, err := s.DatasetInfo(ctx)
	require.NoError(t, err)
	assert.False(t, info.Loaded)
	assert.Empty(t, info.ID)
	assert.Nil(t, info.LoadedAt)

	exercises, err := s.ListExercises(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, exercises)
	assert.Empty(t, exercises)

	_, err = s.GetExercise(ctx, "Bench Press")
	assert.True(t, errors.Is(err, ErrNotFound))
}

// TestStore_Replace verifies a load replaces the previous dataset entirely.
func TestStore_Replace(t *testing.T) {
	ctx := context.Background()
	s := New()

	first := s.Replace(analysis.Build(benchRows("80", "85"), nil), "first.csv")
	second := s.Replace(analysis.Build([]models.RawRow{{
		models.ColDate:         "2024-02-01",
		models.ColExerciseName: "Squat",
		models.ColWeight:       "100",
		models.ColReps:         "5",
	}}, nil), "second.csv")

	assert.NotEqual(t, first.ID, second.ID)
	assert.Same(t, second, s.Current())

	_, err := s.GetExercise(ctx, "Bench Press")
	assert.ErrorIs(t, err, ErrNotFound)

	info, err := s.DatasetInfo(ctx)
	require.NoError(t, err)
	assert.True(t, info.Loaded)
	assert.Equal(t, second.ID.String(), info.ID)
	assert.Equal(t, "second.csv", info.Source)
	assert.Equal(t, 1, info.SetsAccepted)
	assert.Equal(t, "2024-02-01", info.FirstDate)
	assert.Equal(t, "2024-02-01", info.LastDate)
}

// TestStore_Queries verifies exercise, workout and record lookups.
func TestStore_Queries(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Replace(analysis.Build(benchRows("80", "85", "82.5"), nil), "bench.csv")

	agg, err := s.GetExercise(ctx, "bench press")
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", agg.Name)
	assert.Equal(t, 85.0, agg.MaxWeight)

	points, err := s.GetProgression(ctx, "Bench Press")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.Equal(t, 82.5, points[0].TopWeight)

	w, err := s.GetWorkout(ctx, "2024-01-03T18:30:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-03", w.Date)
	assert.Len(t, w.Exercises["Bench Press"], 1)

	_, err = s.GetWorkout(ctx, "2023-12-31")
	assert.ErrorIs(t, err, ErrNotFound)

	workouts, err := s.ListWorkouts(ctx, "2024-01-02", "")
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "2024-01-03", workouts[0].Date)

	_, err = s.ListWorkouts(ctx, "yesterday", "")
	assert.ErrorIs(t, err, ErrInvalidDate)

	records, err := s.GetRecords(ctx, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Weight)
	assert.Equal(t, 85.0, records[0].Weight.Value)

	_, err = s.GetRecords(ctx, "Deadlift")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestStore_CanceledContext verifies queries honor a canceled context.
func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().ListExercises(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestStore_ConcurrentReplace verifies readers always observe a complete
// dataset while loads replace it.
func TestStore_ConcurrentReplace(t *testing.T) {
	s := New()
	small := analysis.Build(benchRows("80"), nil)
	large := analysis.Build(benchRows("80", "85", "90", "95"), nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if j%2 == 0 {
					s.Replace(small, "small.csv")
				} else {
					s.Replace(large, "large.csv")
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				ds := s.Current()
				switch ds.Source {
				case "small.csv":
					if len(ds.Sets) != 1 {
						t.Errorf("small dataset has %d sets, want 1", len(ds.Sets))
					}
				case "large.csv":
					if len(ds.Sets) != 4 {
						t.Errorf("large dataset has %d sets, want 4", len(ds.Sets))
					}
				}
			}
		}()
	}
	wg.Wait()
}
