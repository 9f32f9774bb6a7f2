// Package api exposes the planner over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/p-n-ai/pai-planner/internal/activity"
	"github.com/p-n-ai/pai-planner/internal/catalog"
	"github.com/p-n-ai/pai-planner/internal/learning"
	"github.com/p-n-ai/pai-planner/internal/session"
)

const (
	maxBodyBytes       = 1 << 20
	healthCheckTimeout = 2 * time.Second
	sessionHeader      = "X-Session-ID"
)

// HealthCheck is a named readiness probe such as a database ping.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Config holds dependencies for the API server.
type Config struct {
	Catalog      catalog.Catalog
	Sessions     session.Store
	Events       activity.EventLogger
	HealthChecks []HealthCheck

	// QuizSource picks quiz focus-area counts. Nil gives the same quiz
	// for the same request.
	QuizSource learning.Source
}

// Server serves the planner API.
type Server struct {
	catalog    catalog.Catalog
	sessions   session.Store
	events     activity.EventLogger
	checks     []HealthCheck
	quizSource learning.Source
	validator  *requestValidator
}

// New creates an API server. A missing catalog or session store falls back
// to memory; a missing event logger drops events.
func New(cfg Config) *Server {
	s := &Server{
		catalog:    cfg.Catalog,
		sessions:   cfg.Sessions,
		events:     cfg.Events,
		checks:     cfg.HealthChecks,
		quizSource: cfg.QuizSource,
		validator:  newRequestValidator(),
	}
	if s.catalog == nil {
		s.catalog = catalog.NewMemoryCatalog(nil)
	}
	if s.sessions == nil {
		s.sessions = session.NewMemoryStore(0)
	}
	if s.events == nil {
		s.events = activity.NopEventLogger{}
	}
	return s
}

// Handler returns the HTTP router with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)

	mux.HandleFunc("POST /v1/study-plans", s.handleGenerateStudyPlan)
	mux.HandleFunc("POST /v1/study-plans/recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /v1/study-plans/schedule", s.handleSchedule)
	mux.HandleFunc("POST /v1/study-plans/quiz", s.handleQuiz)
	mux.HandleFunc("POST /v1/resources/rank", s.handleRankResources)

	mux.HandleFunc("GET /v1/resources", s.handleListResources)
	mux.HandleFunc("POST /v1/resources", s.handleAddResource)
	mux.HandleFunc("GET /v1/resources/{id}", s.handleGetResource)
	mux.HandleFunc("DELETE /v1/resources/{id}", s.handleDeleteResource)

	mux.HandleFunc("GET /v1/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("PUT /v1/sessions/{id}", s.handlePutSession)
	mux.HandleFunc("DELETE /v1/sessions/{id}", s.handleDeleteSession)

	return logRequests(mux)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	for _, hc := range s.checks {
		if err := hc.Check(ctx); err != nil {
			slog.Warn("readiness check failed", "check", hc.Name, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// logEvent records an analytics event. Failures are logged, never returned.
func (s *Server) logEvent(r *http.Request, eventType string, data map[string]any) {
	err := s.events.LogEvent(activity.Event{
		SessionID: r.Header.Get(sessionHeader),
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		slog.Warn("failed to log event", "type", eventType, "error", err)
	}
}

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeAndValidate reads a JSON body into dst and validates it. It writes
// the error response itself and returns false when the request is rejected.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}

	fields, err := s.validator.Struct(dst)
	if err != nil {
		slog.Error("request validation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return false
	}
	return true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		level := slog.LevelDebug
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(r.Context(), level, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
