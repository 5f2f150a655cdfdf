package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestListExercises verifies the query param and array decoding.
func TestListExercises(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/exercises": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "bench" {
				t.Errorf("q=%q, want bench", got)
			}
			writeTestJSON(t, w, []analysis.ExerciseSummary{
				{Name: "Bench Press", LastUsed: "2024-01-05", SetCount: 9, MaxWeight: 85},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	exercises, err := client.ListExercises(context.Background(), "bench")
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 1 {
		t.Fatalf("got %d exercises, want 1", len(exercises))
	}
	if exercises[0].MaxWeight != 85 {
		t.Errorf("max_weight=%v, want 85", exercises[0].MaxWeight)
	}
}

// TestGetExerciseEscapesName verifies exercise names are sent as one path
// segment.
func TestGetExerciseEscapesName(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/exercises/Bench Press (Barbell)": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, models.ExerciseAggregate{Name: "Bench Press (Barbell)", MaxWeight: 100})
		},
	})
	defer ts.Close()

	agg, err := NewHTTPClient(ts.URL).GetExercise(context.Background(), "Bench Press (Barbell)")
	if err != nil {
		t.Fatal(err)
	}
	if agg.MaxWeight != 100 {
		t.Errorf("max_weight=%v, want 100", agg.MaxWeight)
	}
}

// TestNotFoundMapsToErrNotFound verifies a 404 from the API is reported as
// storage.ErrNotFound with the server's message.
func TestNotFoundMapsToErrNotFound(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/workouts/2024-02-30": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"workout not found"}`))
		},
	})
	defer ts.Close()

	_, err := NewHTTPClient(ts.URL).GetWorkout(context.Background(), "2024-02-30")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want storage.ErrNotFound", err)
	}
}

// TestListWorkoutsParams verifies range params are only sent when set.
func TestListWorkoutsParams(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/workouts": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("start"); got != "2024-01-01" {
				t.Errorf("start=%q, want 2024-01-01", got)
			}
			if _, ok := r.URL.Query()["end"]; ok {
				t.Error("end param sent, want omitted")
			}
			writeTestJSON(t, w, []analysis.WorkoutSummary{{Date: "2024-01-03", SetCount: 3}})
		},
	})
	defer ts.Close()

	workouts, err := NewHTTPClient(ts.URL).ListWorkouts(context.Background(), "2024-01-01", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(workouts) != 1 || workouts[0].SetCount != 3 {
		t.Errorf("workouts=%+v, want one day with 3 sets", workouts)
	}
}

// TestDatasetInfo verifies single struct decoding.
func TestDatasetInfo(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/dataset": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, models.DatasetInfo{Loaded: true, Source: "strong.csv", SetsAccepted: 42})
		},
	})
	defer ts.Close()

	info, err := NewHTTPClient(ts.URL).DatasetInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !info.Loaded || info.SetsAccepted != 42 {
		t.Errorf("info=%+v, want loaded with 42 sets", info)
	}
}

// TestServerError verifies non-OK statuses surface as errors.
func TestServerError(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/records": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
	})
	defer ts.Close()

	_, err := NewHTTPClient(ts.URL).GetRecords(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if errors.Is(err, storage.ErrNotFound) {
		t.Error("500 mapped to ErrNotFound")
	}
}
