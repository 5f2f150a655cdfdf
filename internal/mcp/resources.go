package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	summaryExercises = 10
	recentWorkouts   = 10
)

func (h *handlers) datasetSummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	info, err := h.ds.DatasetInfo(ctx)
	if err != nil {
		return nil, err
	}

	exercises, err := h.ds.ListExercises(ctx, "")
	if err != nil {
		h.log.Warn("dataset_summary: exercise query failed", "error", err)
	}
	if len(exercises) > summaryExercises {
		exercises = exercises[:summaryExercises]
	}

	return jsonResource(req.Params.URI, map[string]any{
		"dataset":          info,
		"recent_exercises": exercises,
	})
}

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	workouts, err := h.ds.ListWorkouts(ctx, "", "")
	if err != nil {
		return nil, err
	}
	if len(workouts) > recentWorkouts {
		workouts = workouts[:recentWorkouts]
	}
	return jsonResource(req.Params.URI, workouts)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
