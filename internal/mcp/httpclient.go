package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// HTTPClient implements DataSource by calling the liftlog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// the dataset lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// get fetches path and decodes the JSON response into out. A 404 is
// reported as storage.ErrNotFound and a 400 as storage.ErrInvalidDate so
// callers can treat local and remote sources alike.
func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("httpclient: %s: %s: %w", path, apiError(body), storage.ErrNotFound)
	case http.StatusBadRequest:
		return fmt.Errorf("httpclient: %s: %s: %w", path, apiError(body), storage.ErrInvalidDate)
	default:
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

// apiError extracts the message of a {"error": "..."} body.
func apiError(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil || e.Error == "" {
		return strings.TrimSpace(string(body))
	}
	return e.Error
}

func (c *HTTPClient) DatasetInfo(ctx context.Context) (*models.DatasetInfo, error) {
	var info models.DatasetInfo
	if err := c.get(ctx, "/api/v1/dataset", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *HTTPClient) ListExercises(ctx context.Context, query string) ([]analysis.ExerciseSummary, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	var out []analysis.ExerciseSummary
	if err := c.get(ctx, "/api/v1/exercises", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetExercise(ctx context.Context, name string) (*models.ExerciseAggregate, error) {
	var agg models.ExerciseAggregate
	if err := c.get(ctx, "/api/v1/exercises/"+url.PathEscape(name), nil, &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}

func (c *HTTPClient) GetProgression(ctx context.Context, name string) ([]analysis.ProgressionPoint, error) {
	var out []analysis.ProgressionPoint
	if err := c.get(ctx, "/api/v1/exercises/"+url.PathEscape(name)+"/progression", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListWorkouts(ctx context.Context, start, end string) ([]analysis.WorkoutSummary, error) {
	params := url.Values{}
	if start != "" {
		params.Set("start", start)
	}
	if end != "" {
		params.Set("end", end)
	}
	var out []analysis.WorkoutSummary
	if err := c.get(ctx, "/api/v1/workouts", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetWorkout(ctx context.Context, date string) (*models.WorkoutAggregate, error) {
	var w models.WorkoutAggregate
	if err := c.get(ctx, "/api/v1/workouts/"+url.PathEscape(date), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *HTTPClient) GetRecords(ctx context.Context, exercise string) ([]analysis.ExerciseRecords, error) {
	params := url.Values{}
	if exercise != "" {
		params.Set("exercise", exercise)
	}
	var out []analysis.ExerciseRecords
	if err := c.get(ctx, "/api/v1/records", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}
