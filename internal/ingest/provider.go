package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/ingest/strong"
	"github.com/claude/liftlog/internal/metrics"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// Result holds the outcome of an ingest operation.
type Result struct {
	DatasetID string               `json:"dataset_id"`
	Source    string               `json:"source"`
	Variant   models.SchemaVariant `json:"variant"`

	RowsReceived    int            `json:"rows_received"`
	SetsAccepted    int            `json:"sets_accepted"`
	RowsRejected    int            `json:"rows_rejected"`
	RejectedReasons map[string]int `json:"rejected_reasons,omitempty"`

	Exercises int `json:"exercises"`
	Workouts  int `json:"workouts"`

	Message string `json:"message,omitempty"`
}

// Provider turns a workout export into the current dataset.
type Provider struct {
	store   *storage.Store
	metrics *metrics.Manager
	log     *slog.Logger
}

// NewProvider creates a new ingest provider. m and log may be nil.
func NewProvider(store *storage.Store, m *metrics.Manager, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Provider{store: store, metrics: m, log: log}
}

// Ingest parses a CSV export and replaces the current dataset with it.
func (p *Provider) Ingest(ctx context.Context, r io.Reader, source string) (*Result, error) {
	rows, err := strong.ReadRows(r)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	return p.IngestRows(ctx, rows, source)
}

// IngestRows builds a dataset from already parsed rows and installs it.
func (p *Provider) IngestRows(ctx context.Context, rows []models.RawRow, source string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	snap := analysis.Build(rows, p.log)
	p.metrics.ObserveDataset(snap, time.Since(start).Seconds())

	ds := p.store.Replace(snap, source)

	result := &Result{
		DatasetID:       ds.ID.String(),
		Source:          source,
		Variant:         snap.Variant,
		RowsReceived:    snap.RowsReceived,
		SetsAccepted:    len(snap.Sets),
		RowsRejected:    snap.RowsRejected(),
		RejectedReasons: snap.Rejected,
		Exercises:       len(snap.Exercises),
		Workouts:        len(snap.Workouts),
	}
	if result.SetsAccepted == 0 {
		result.Message = "no sets found in export"
	}

	p.log.Info("dataset loaded",
		"id", result.DatasetID,
		"source", source,
		"sets", result.SetsAccepted,
		"rejected", result.RowsRejected)
	return result, nil
}
