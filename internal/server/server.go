// Package server exposes the scoring engine over HTTP: score
// calculation, recommendation generation, cross-industry comparison,
// benchmark lookups and stored run retrieval.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ledgerline/finhealth/internal/config"
	"github.com/ledgerline/finhealth/internal/recommend"
	"github.com/ledgerline/finhealth/internal/scoring"
	"github.com/ledgerline/finhealth/internal/store"
)

// Server wires the engine, selector and optional store behind the
// HTTP handlers.
type Server struct {
	engine   *scoring.Engine
	selector *recommend.Selector
	store    store.Store // nil disables run persistence
	cfg      config.Config
}

// New creates a Server. A nil store disables score-run persistence;
// scoring still works.
func New(engine *scoring.Engine, selector *recommend.Selector, st store.Store, cfg config.Config) *Server {
	return &Server{engine: engine, selector: selector, store: st, cfg: cfg}
}

// Router builds the chi router with CORS, rate limiting and request
// logging applied to every route.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(requestLogger)
	r.Use(rateLimiter(s.cfg.Server.RateLimitRPS, s.cfg.Server.RateLimitBurst))

	r.Get("/health", s.handleHealth)
	r.Post("/calculate-financial-score", s.handleCalculateScore)
	r.Post("/generate-financial-recommendations", s.handleGenerateRecommendations)
	r.Post("/cross-industry-comparison", s.handleCrossIndustry)
	r.Get("/benchmarks", s.handleListBenchmarks)
	r.Get("/benchmarks/{category}", s.handleListBenchmarks)
	r.Get("/score-runs", s.handleListRuns)
	r.Get("/score-runs/{id}", s.handleGetRun)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON writes a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

// respondError writes the JSON error envelope. Internal details are
// logged, not returned.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
