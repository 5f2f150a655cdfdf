package upload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/claude/liftlog/internal/ingest"
)

const export = `Date,Workout Name,Exercise Name,Set Order,Weight,Weight Unit,Reps,Duration,Workout Duration,Notes
2024-01-01,Push Day,Bench Press,1,80,kg,5,,1h,
`

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strong.csv")
	if err := os.WriteFile(path, []byte(export), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testClient(url string) *Client {
	c := NewClient(url)
	c.backoff = time.Millisecond
	return c
}

// TestSendCSV verifies the export is posted as the multipart "file" field.
func TestSendCSV(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/datasets" {
			t.Errorf("path = %q, want /api/v1/datasets", r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		if header.Filename != "strong.csv" {
			t.Errorf("filename = %q, want strong.csv", header.Filename)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dataset_id":"abc","sets_accepted":1}`))
	}))
	defer ts.Close()

	result, err := testClient(ts.URL + "/").SendCSV(context.Background(), writeExport(t))
	if err != nil {
		t.Fatal(err)
	}
	if result.SetsAccepted != 1 || result.DatasetID != "abc" {
		t.Errorf("result = %+v, want 1 set in dataset abc", result)
	}
}

// TestSendCSVRetries verifies server errors are retried until success.
func TestSendCSVRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"sets_accepted":1}`))
	}))
	defer ts.Close()

	if _, err := testClient(ts.URL).SendCSV(context.Background(), writeExport(t)); err != nil {
		t.Fatal(err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

// TestSendCSVClientError verifies a 4xx response is not retried.
func TestSendCSVClientError(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"export exceeds 10 bytes"}`, http.StatusRequestEntityTooLarge)
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).SendCSV(context.Background(), writeExport(t))
	if err == nil || !strings.Contains(err.Error(), "413") {
		t.Fatalf("err = %v, want status 413", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

// TestSendCSVGivesUp verifies the error after all attempts fail.
func TestSendCSVGivesUp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).SendCSV(context.Background(), writeExport(t))
	if err == nil || !strings.Contains(err.Error(), "after 3 attempts") {
		t.Fatalf("err = %v, want after 3 attempts", err)
	}
}

// TestSendCSVMissingFile verifies a missing export fails before any request.
func TestSendCSVMissingFile(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:0").SendCSV(context.Background(), "/nonexistent/export.csv")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// TestLoadDemo verifies the demo endpoint is called.
func TestLoadDemo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/datasets/demo" {
			t.Errorf("path = %q, want /api/v1/datasets/demo", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"source":"demo","sets_accepted":370}`))
	}))
	defer ts.Close()

	result, err := testClient(ts.URL).LoadDemo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var want ingest.Result
	want.Source, want.SetsAccepted = "demo", 370
	if result.Source != want.Source || result.SetsAccepted != want.SetsAccepted {
		t.Errorf("result = %+v, want %+v", result, want)
	}
}
