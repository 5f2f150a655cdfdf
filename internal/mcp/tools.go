package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/liftlog/internal/storage"
)

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List exercises in the loaded export, most recently trained first. Returns set counts, total volume and the best weight, volume and estimated 1RM per exercise."),
	mcp.WithString("query", mcp.Description("Filter by exercise name (partial match, e.g. 'bench')")),
)

var toolGetExercise = mcp.NewTool("get_exercise",
	mcp.WithDescription("Get one exercise with every recorded set. Sets holding a personal record carry pr flags for weight, volume and one_rep_max."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name (case-insensitive, e.g. 'Bench Press (Barbell)')")),
)

var toolGetExerciseProgression = mcp.NewTool("get_exercise_progression",
	mcp.WithDescription("Per-day progression of one exercise: top set weight and reps, summed volume, set count and best estimated 1RM, oldest day first."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name (case-insensitive)")),
)

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List workout days, newest first, with exercise count, set count, total volume and duration."),
	mcp.WithString("start", mcp.Description("Earliest day (YYYY-MM-DD or ISO 8601). Defaults to the first day of the export.")),
	mcp.WithString("end", mcp.Description("Latest day (YYYY-MM-DD or ISO 8601). Defaults to the last day of the export.")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Get all sets of one workout day grouped by exercise in the order they were performed."),
	mcp.WithString("date", mcp.Required(), mcp.Description("Day of the workout (YYYY-MM-DD or ISO 8601 timestamp)")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Personal records per exercise: heaviest weight, largest single-set volume and best estimated 1RM (Brzycki, sets of 15 reps or fewer), each with the weight, reps and date of the set."),
	mcp.WithString("exercise", mcp.Description("Limit to one exercise (case-insensitive)")),
)

var toolGetDatasetInfo = mcp.NewTool("get_dataset_info",
	mcp.WithDescription("Describe the loaded export: source, schema variant, rows received, sets accepted, rejected rows by reason and date range."),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.ListExercises(ctx, req.GetString("query", ""))
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(exercises)
}

func (h *handlers) getExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	agg, err := h.ds.GetExercise(ctx, name)
	if err != nil {
		return h.queryError("get_exercise", err), nil
	}
	return jsonResult(agg)
}

func (h *handlers) getExerciseProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	points, err := h.ds.GetProgression(ctx, name)
	if err != nil {
		return h.queryError("get_exercise_progression", err), nil
	}
	return jsonResult(points)
}

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, err := h.ds.ListWorkouts(ctx, req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		if errors.Is(err, storage.ErrInvalidDate) {
			return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
		}
		return h.queryError("list_workouts", err), nil
	}
	return jsonResult(workouts)
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("date parameter is required"), nil
	}

	w, err := h.ds.GetWorkout(ctx, date)
	if err != nil {
		return h.queryError("get_workout", err), nil
	}
	return jsonResult(w)
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := h.ds.GetRecords(ctx, req.GetString("exercise", ""))
	if err != nil {
		return h.queryError("get_personal_records", err), nil
	}
	return jsonResult(records)
}

func (h *handlers) getDatasetInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := h.ds.DatasetInfo(ctx)
	if err != nil {
		return h.queryError("get_dataset_info", err), nil
	}
	return jsonResult(info)
}

// queryError turns a data source error into a tool error. Missing
// exercises and days are expected and not logged.
func (h *handlers) queryError(tool string, err error) *mcp.CallToolResult {
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultError(err.Error())
	}
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError("query failed: " + err.Error())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
