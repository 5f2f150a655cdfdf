package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/ingest"
)

const maxAttempts = 3

// Client sends workout exports to the liftlog server over HTTP.
type Client struct {
	serverURL  string
	httpClient *http.Client
	backoff    time.Duration
}

// NewClient creates a new HTTP client for the liftlog server.
func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		backoff: time.Second,
	}
}

// SendCSV uploads the export at path as the server's current dataset.
// Retries up to 3 times with exponential backoff on network errors and
// server errors; a 4xx response is returned immediately.
func (c *Client) SendCSV(ctx context.Context, path string) (*ingest.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}

	return c.post(ctx, "/api/v1/datasets", mw.FormDataContentType(), buf.Bytes())
}

// LoadDemo asks the server to replace its dataset with generated demo data.
func (c *Client) LoadDemo(ctx context.Context) (*ingest.Result, error) {
	return c.post(ctx, "/api/v1/datasets/demo", "application/json", nil)
}

func (c *Client) post(ctx context.Context, path, contentType string, body []byte) (*ingest.Result, error) {
	var lastErr error
	for attempt := range maxAttempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff << uint(attempt-1)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			var result ingest.Result
			if err := json.Unmarshal(respBody, &result); err != nil {
				return nil, fmt.Errorf("decoding result: %w", err)
			}
			return &result, nil
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			return nil, fmt.Errorf("upload rejected (status %d): %s", resp.StatusCode, bytes.TrimSpace(respBody))
		}
		lastErr = fmt.Errorf("upload failed (status %d): %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}

	return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}
