package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/seren4de/a11ylead/internal/app"
	"github.com/seren4de/a11ylead/internal/logging"
	"github.com/seren4de/a11ylead/internal/report"
	"github.com/seren4de/a11ylead/internal/store"
)

// Server is the HTTP + WebSocket API surface.
type Server struct {
	cfg          Config
	orchestrator *app.Orchestrator
	router       chi.Router
	upgrader     websocket.Upgrader
	logger       logging.Logger
}

// NewServer creates a new Server with its own Orchestrator.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AppConfig == nil {
		cfg.AppConfig = app.DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	var st *store.Store
	if cfg.AppConfig.StorePath != "" {
		var err error
		st, err = store.Open(cfg.AppConfig.StorePath, logger)
		if err != nil {
			return nil, fmt.Errorf("opening audit store: %w", err)
		}
	}

	orch := app.NewOrchestrator(cfg.AppConfig, st, logger)

	r := chi.NewRouter()
	s := &Server{
		cfg:          cfg,
		orchestrator: orch,
		router:       r,
		logger:       logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
	}

	s.routes()
	return s, nil
}

// Orchestrator returns the underlying orchestrator for advanced use (tests, etc.).
func (s *Server) Orchestrator() *app.Orchestrator {
	return s.orchestrator
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/audits", s.optionsHandler("GET, POST"))
	r.Options("/audits/{auditID}", s.optionsHandler("GET"))
	r.Options("/audits/{auditID}/report", s.optionsHandler("GET"))
	r.Options("/audits/compare", s.optionsHandler("GET"))
	r.Options("/jobs", s.optionsHandler("GET"))
	r.Options("/jobs/{jobID}", s.optionsHandler("GET, DELETE"))
	r.Options("/ws/audits", s.optionsHandler("GET"))

	// Audit history
	r.Get("/audits", s.handleListAudits)
	r.Get("/audits/compare", s.handleCompareAudits)
	r.Get("/audits/{auditID}", s.handleGetAudit)
	r.Get("/audits/{auditID}/report", s.handleGetReport)

	// Jobs over REST
	r.Post("/audits", s.handleStartAuditJob)
	r.Get("/jobs", s.handleListJobs)
	r.Get("/jobs/{jobID}", s.handleGetJob)
	r.Delete("/jobs/{jobID}", s.handleCancelJob)

	// WebSocket for job progress
	r.Get("/ws/audits", s.handleAuditWS)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}
	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close shuts down the orchestrator and underlying resources.
func (s *Server) Close() {
	if s.orchestrator != nil {
		s.orchestrator.Close()
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- HTTP handlers ---

func (s *Server) handleStartAuditJob(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Target   string `json:"target"`
		MaxPages int    `json:"max_pages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.Target == "" {
		writeError(w, http.StatusBadRequest, "target is required")
		return
	}

	// The job outlives this request.
	job, err := s.orchestrator.StartAuditJob(context.WithoutCancel(r.Context()), body.Target, body.MaxPages)
	if err != nil {
		s.logger.Warn("starting audit job", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.logger.Info("started audit job",
		logging.Field{Key: "job_id", Value: job.ID},
		logging.Field{Key: "target", Value: body.Target})
	writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.orchestrator.ListJobs())
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleCancelJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	if s.orchestrator.GetJob(jobID) == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	s.orchestrator.CancelJob(jobID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "canceling"})
}

func (s *Server) handleListAudits(w http.ResponseWriter, r *http.Request) {
	st := s.orchestrator.Store()
	if st == nil {
		writeError(w, http.StatusNotImplemented, "audit history is disabled (no store configured)")
		return
	}

	site := r.URL.Query().Get("site")
	limit := 20
	if ls := r.URL.Query().Get("limit"); ls != "" {
		if v, err := strconv.Atoi(ls); err == nil && v > 0 {
			limit = v
		}
	}

	audits, err := st.ListAudits(r.Context(), site, limit)
	if err != nil {
		s.logger.Warn("listing audits", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, audits)
}

func (s *Server) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	st := s.orchestrator.Store()
	if st == nil {
		writeError(w, http.StatusNotImplemented, "audit history is disabled (no store configured)")
		return
	}

	rec, err := st.GetAudit(r.Context(), chi.URLParam(r, "auditID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "audit not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	st := s.orchestrator.Store()
	if st == nil {
		writeError(w, http.StatusNotImplemented, "audit history is disabled (no store configured)")
		return
	}

	rec, err := st.GetAudit(r.Context(), chi.URLParam(r, "auditID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "audit not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, report.RenderText(rec.Profile, rec.Grade))
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.ID+".csv"))
		if err := report.WriteCSV(w, rec.Profile, rec.Grade); err != nil {
			s.logger.Warn("rendering csv report", logging.Field{Key: "error", Value: err.Error()})
		}
	case "json":
		data, err := report.RenderJSON(rec.Profile, rec.Grade)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "unknown format: "+format)
	}
}

func (s *Server) handleCompareAudits(w http.ResponseWriter, r *http.Request) {
	st := s.orchestrator.Store()
	if st == nil {
		writeError(w, http.StatusNotImplemented, "audit history is disabled (no store configured)")
		return
	}

	site := r.URL.Query().Get("site")
	if site == "" {
		writeError(w, http.StatusBadRequest, "site is required")
		return
	}

	prev, curr, err := st.LatestPair(r.Context(), site)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, report.Compare(prev.Profile, curr.Profile, prev.Grade, curr.Grade))
}

func (s *Server) handleAuditWS(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("target")
	if target == "" {
		writeError(w, http.StatusBadRequest, "target is required")
		return
	}
	maxPages := 0
	if ps := r.URL.Query().Get("pages"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 {
			maxPages = v
		}
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	job, err := s.orchestrator.StartAuditJob(context.WithoutCancel(r.Context()), target, maxPages)
	if err != nil {
		_ = conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	s.logger.Info("started audit job over ws", logging.Field{Key: "job_id", Value: job.ID})
	_ = conn.WriteJSON(job)

	for ev := range job.Events {
		if err := conn.WriteJSON(ev); err != nil {
			// Assume client disconnected; cancel job
			s.orchestrator.CancelJob(job.ID)
			return
		}
	}

	// Final state including the result.
	if done := s.orchestrator.GetJob(job.ID); done != nil {
		_ = conn.WriteJSON(done)
	}
}
