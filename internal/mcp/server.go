package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("liftlog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("liftlog strength training server. Query the loaded workout export: exercises, personal records (max weight, max volume, estimated 1RM), per-day progression and workout days. Weights are in the unit recorded by the export (usually kg)."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetExercise, Handler: h.getExercise},
		server.ServerTool{Tool: toolGetExerciseProgression, Handler: h.getExerciseProgression},
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGetDatasetInfo, Handler: h.getDatasetInfo},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resDatasetSummary, Handler: h.datasetSummary},
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resDatasetSummary = mcp.NewResource(
	"liftlog://dataset_summary",
	"Dataset Summary",
	mcp.WithResourceDescription("The loaded export: schema variant, row counts, rejected rows, date range and the most recently trained exercises"),
	mcp.WithMIMEType("application/json"),
)

var resRecentWorkouts = mcp.NewResource(
	"liftlog://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("The most recent workout days of the loaded export"),
	mcp.WithMIMEType("application/json"),
)
