package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/claude/liftlog/internal/ingest"
	"github.com/claude/liftlog/internal/metrics"
	"github.com/claude/liftlog/internal/storage"
)

// DefaultMaxUploadBytes bounds uploaded exports unless SetMaxUpload is called.
const DefaultMaxUploadBytes = 10 << 20

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *storage.Store
	provider  *ingest.Provider
	metrics   *metrics.Manager
	whois     WhoIser
	log       *slog.Logger
	maxUpload int64
	router    chi.Router
}

// New creates a new Server with all routes configured. m may be nil.
func New(store *storage.Store, provider *ingest.Provider, m *metrics.Manager, log *slog.Logger) *Server {
	s := &Server{
		store:     store,
		provider:  provider,
		metrics:   m,
		log:       log,
		maxUpload: DefaultMaxUploadBytes,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	if s.metrics != nil {
		s.router.Use(RequestMetrics(s.metrics))
	}
	s.router.Use(s.identify)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/me", s.handleMe)

		r.Post("/datasets", s.handleUpload)
		r.Post("/datasets/demo", s.handleDemo)
		r.Get("/dataset", s.handleDatasetInfo)

		r.Get("/exercises", s.handleListExercises)
		r.Get("/exercises/{name}", s.handleGetExercise)
		r.Get("/exercises/{name}/progression", s.handleGetProgression)

		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/{date}", s.handleGetWorkout)

		r.Get("/records", s.handleRecords)
	})
}

// SetMaxUpload changes the upload size limit.
func (s *Server) SetMaxUpload(n int64) {
	if n > 0 {
		s.maxUpload = n
	}
}

// SetMetrics exposes the registry at /metrics.
func (s *Server) SetMetrics(g prometheus.Gatherer) {
	s.router.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}

// SetMCP mounts an MCP transport handler at /mcp.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Handle("/mcp", h)
}

// SetTailscale enables tailnet identity lookup for request logs and /api/v1/me.
func (s *Server) SetTailscale(w WhoIser) {
	s.whois = w
}

// SetFrontend mounts a static SPA filesystem.
// Unmatched routes serve index.html for client-side routing.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		// Try to serve the exact file first
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		// Fallback to index.html for SPA routing
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
