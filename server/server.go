// Package server exposes one engine instance over a small read-mostly HTTP
// surface: the consistent snapshot that analysis and visualization tooling
// consume, registry stats, a growth trigger, health, and Prometheus metrics.
//
// The server is an external collaborator embedding the core, not part of it:
// it only uses the engine's public contract, and mutation serialization is
// the engine's own lock. No state lives here beyond the engine reference,
// the logger, and the metrics.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/swyrknt/distinction-engine/engine"
	"github.com/swyrknt/distinction-engine/export"
	"github.com/swyrknt/distinction-engine/growth"
)

// maxGrowSteps bounds one grow request so a single POST cannot occupy the
// writer section for an unbounded stretch.
const maxGrowSteps = 1_000_000

// Server wires an engine to its HTTP surface.
type Server struct {
	engine  *engine.Engine
	log     zerolog.Logger
	metrics *Metrics
}

// New creates a Server around the given engine.
func New(e *engine.Engine, log zerolog.Logger) *Server {
	return &Server{
		engine:  e,
		log:     log,
		metrics: NewMetrics(e),
	}
}

// Handler returns the chi router for this server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	r.Route("/api", func(r chi.Router) {
		r.Get("/snapshot", s.handleSnapshot)
		r.Get("/stats", s.handleStats)
		r.Post("/grow", s.handleGrow)
	})

	return r
}

// HTTPServer builds an *http.Server with sane defaults around the handler.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, "/healthz")
}

// handleSnapshot streams the consistent snapshot in the export JSON shape.
func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	snap := s.engine.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := export.WriteJSON(w, snap); err != nil {
		// Headers are gone; all we can do is log.
		s.log.Error().Err(err).Msg("write snapshot")
	}
	s.metrics.RequestsTotal.WithLabelValues("/api/snapshot", "200").Inc()
}

// statsResponse summarizes the registry without shipping the full graph.
type statsResponse struct {
	Distinctions  int      `json:"distinctions"`
	Relationships int      `json:"relationships"`
	Origin        []string `json:"origin"`
	Newest        string   `json:"newest"`
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	d0, d1 := s.engine.Origin()
	s.writeJSON(w, http.StatusOK, statsResponse{
		Distinctions:  s.engine.DistinctionCount(),
		Relationships: s.engine.RelationshipCount(),
		Origin:        []string{d0.ID, d1.ID},
		Newest:        s.engine.Newest().ID,
	}, "/api/stats")
}

// growRequest is the body of POST /api/grow. Steps is required; Seed defaults
// to 0 and Strategy to "uniform".
type growRequest struct {
	Steps    int    `json:"steps"`
	Seed     int64  `json:"seed"`
	Strategy string `json:"strategy"`
}

// growResponse reports the run outcome plus the resulting registry size.
type growResponse struct {
	growth.Report
	Distinctions  int `json:"distinctions"`
	Relationships int `json:"relationships"`
}

func (s *Server) handleGrow(w http.ResponseWriter, r *http.Request) {
	var req growRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body", "/api/grow")
		return
	}
	if req.Steps < 0 || req.Steps > maxGrowSteps {
		s.writeError(w, http.StatusBadRequest, "steps out of range", "/api/grow")
		return
	}
	strat, ok := strategyByName(req.Strategy)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "unknown strategy", "/api/grow")
		return
	}

	rep, err := growth.Grow(s.engine, req.Steps, growth.WithSeed(req.Seed), growth.WithStrategy(strat))
	if err != nil {
		// Engine preconditions cannot fail from here; treat as internal.
		s.log.Error().Err(err).Int("steps", req.Steps).Msg("grow run failed")
		s.writeError(w, http.StatusInternalServerError, "grow failed", "/api/grow")
		return
	}

	s.metrics.GrowRunsTotal.Inc()
	s.metrics.GrowStepsTotal.Add(float64(rep.Steps))
	s.log.Info().
		Int("steps", rep.Steps).
		Int("created", rep.Created).
		Int("memoized", rep.Memoized).
		Int("reflexive", rep.Reflexive).
		Msg("grow run complete")

	s.writeJSON(w, http.StatusOK, growResponse{
		Report:        rep,
		Distinctions:  s.engine.DistinctionCount(),
		Relationships: s.engine.RelationshipCount(),
	}, "/api/grow")
}

// strategyByName maps the wire strategy names onto growth strategies.
func strategyByName(name string) (growth.Strategy, bool) {
	switch name {
	case "", "uniform":
		return growth.Uniform(), true
	case "degree":
		return growth.DegreeWeighted(), true
	case "frontier":
		return growth.Frontier(), true
	}

	return nil, false
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v interface{}, route string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Str("route", route).Msg("encode response")
	}
	s.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg, route string) {
	s.writeJSON(w, code, map[string]string{"error": msg}, route)
}

// logRequests is a minimal zerolog access-log middleware.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
