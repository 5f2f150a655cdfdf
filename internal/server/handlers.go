package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/claude/liftlog/internal/demo"
	"github.com/claude/liftlog/internal/storage"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	body, source, err := uploadBody(r)
	if err != nil {
		s.writeUploadError(w, err)
		return
	}
	defer body.Close()

	result, err := s.provider.Ingest(r.Context(), body, source)
	if err != nil {
		s.writeUploadError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// uploadBody returns the export from a multipart "file" field or, for any
// other content type, the raw request body.
func uploadBody(r *http.Request) (io.ReadCloser, string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		source := r.URL.Query().Get("name")
		if source == "" {
			source = "upload"
		}
		return r.Body, source, nil
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	return file, header.Filename, nil
}

func (s *Server) writeUploadError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
			"error": "export exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes",
		})
		return
	}
	s.log.Error("upload error", "error", err)
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	seed := int64(1)
	if v := r.URL.Query().Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid seed"})
			return
		}
		seed = parsed
	}

	result, err := s.provider.IngestRows(r.Context(), demo.Rows(seed, time.Now()), demo.Source)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.store.DatasetInfo(r.Context())
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.store.ListExercises(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	name, ok := pathParam(w, r, "name")
	if !ok {
		return
	}
	agg, err := s.store.GetExercise(r.Context(), name)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

func (s *Server) handleGetProgression(w http.ResponseWriter, r *http.Request) {
	name, ok := pathParam(w, r, "name")
	if !ok {
		return
	}
	points, err := s.store.GetProgression(r.Context(), name)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	workouts, err := s.store.ListWorkouts(r.Context(), q.Get("start"), q.Get("end"))
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	date, ok := pathParam(w, r, "date")
	if !ok {
		return
	}
	workout, err := s.store.GetWorkout(r.Context(), date)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.GetRecords(r.Context(), r.URL.Query().Get("exercise"))
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// pathParam returns the decoded URL parameter. chi matches on RawPath when
// the request has one (escaped slashes), leaving the parameter encoded.
func pathParam(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, true
	}
	v, err := url.PathUnescape(v)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + key})
		return "", false
	}
	return v, true
}

func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, storage.ErrInvalidDate):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
