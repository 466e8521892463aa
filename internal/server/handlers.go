package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ledgerline/finhealth/internal/model"
	"github.com/ledgerline/finhealth/internal/recommend"
	"github.com/ledgerline/finhealth/internal/store"
)

// scoreRequest is the body of POST /calculate-financial-score.
type scoreRequest struct {
	CompanyID string                  `json:"company_id"`
	Industry  string                  `json:"industry"`
	Size      string                  `json:"size"`
	Metrics   []model.FinancialMetric `json:"metrics"`
}

// scoreResponse echoes the company fields alongside the result, as the
// dashboard consumes them.
type scoreResponse struct {
	CompanyID string             `json:"company_id"`
	Industry  string             `json:"industry"`
	Size      model.SizeTier     `json:"size"`
	RunID     string             `json:"run_id,omitempty"`
	Result    model.OverallScore `json:"result"`
}

func (s *Server) handleCalculateScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	size, err := model.ParseSizeTier(req.Size)
	if err != nil {
		respondError(w, http.StatusBadRequest, "size must be small, medium or large")
		return
	}

	company := model.Company{ID: req.CompanyID, Industry: req.Industry, Size: size}
	result := s.engine.Score(company, req.Metrics)

	resp := scoreResponse{
		CompanyID: company.ID,
		Industry:  company.Industry,
		Size:      company.Size,
		Result:    result,
	}

	if s.store != nil {
		run, err := s.store.CreateRun(r.Context(), company, req.Metrics, result)
		if err != nil {
			zap.L().Error("server: save score run", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		resp.RunID = run.ID
	}

	respondJSON(w, http.StatusOK, resp)
}

// recommendRequest is the body of POST /generate-financial-recommendations.
// MaxRecommendations is a pointer so an explicit zero (empty result) is
// distinguishable from an omitted field (config default).
type recommendRequest struct {
	CompanyID          string                  `json:"company_id"`
	FinancialScoreData model.OverallScore      `json:"financial_score_data"`
	MaxRecommendations *int                    `json:"max_recommendations"`
	FocusCategories    []string                `json:"focus_categories"`
	Metrics            []model.FinancialMetric `json:"metrics,omitempty"`
}

func (s *Server) handleGenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	focus := make([]model.Category, 0, len(req.FocusCategories))
	for _, raw := range req.FocusCategories {
		cat, err := model.ParseCategory(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "unknown focus category: "+raw)
			return
		}
		focus = append(focus, cat)
	}

	maxRecs := s.cfg.Recommend.MaxRecommendations
	if req.MaxRecommendations != nil {
		maxRecs = *req.MaxRecommendations
	}

	result := s.selector.Generate(recommend.Request{
		Scores:             req.FinancialScoreData,
		MaxRecommendations: maxRecs,
		FocusCategories:    focus,
		Metrics:            req.Metrics,
	})

	respondJSON(w, http.StatusOK, result)
}

// crossIndustryRequest is the body of POST /cross-industry-comparison.
type crossIndustryRequest struct {
	Score      float64  `json:"score"`
	Metric     string   `json:"metric"`
	Industries []string `json:"industries"`
}

type crossIndustryResponse struct {
	Score      float64            `json:"score"`
	Metric     string             `json:"metric"`
	Normalized map[string]float64 `json:"normalized_scores"`
}

func (s *Server) handleCrossIndustry(w http.ResponseWriter, r *http.Request) {
	var req crossIndustryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Industries) == 0 {
		respondError(w, http.StatusBadRequest, "industries is required")
		return
	}

	normalized := make(map[string]float64, len(req.Industries))
	for _, industry := range req.Industries {
		normalized[industry] = s.engine.CrossIndustry(req.Score, req.Metric, industry)
	}

	respondJSON(w, http.StatusOK, crossIndustryResponse{
		Score:      req.Score,
		Metric:     req.Metric,
		Normalized: normalized,
	})
}

// benchmarkEntry flattens a ratio definition for the lookup endpoints.
type benchmarkEntry struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Formula        string         `json:"formula"`
	Category       model.Category `json:"category"`
	Unit           string         `json:"unit"`
	HigherIsBetter bool           `json:"higher_is_better"`
	Interpretation string         `json:"interpretation"`
}

func (s *Server) handleListBenchmarks(w http.ResponseWriter, r *http.Request) {
	var filter *model.Category
	if raw := chi.URLParam(r, "category"); raw != "" {
		cat, err := model.ParseCategory(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "unknown category: "+raw)
			return
		}
		filter = &cat
	}

	catalog := s.engine.Catalog()
	var entries []benchmarkEntry
	for _, cat := range model.Categories() {
		if filter != nil && *filter != cat {
			continue
		}
		for _, name := range catalog.RatiosInCategory(cat) {
			def, _ := catalog.Ratio(name)
			entries = append(entries, benchmarkEntry{
				Name:           def.Name,
				Description:    def.Description,
				Formula:        def.Formula,
				Category:       def.Category,
				Unit:           string(def.Unit),
				HigherIsBetter: def.HigherIsBetter,
				Interpretation: def.Interpretation,
			})
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{"benchmarks": entries})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusNotFound, "run persistence is disabled")
		return
	}

	runID := chi.URLParam(r, "id")
	run, err := s.store.GetRun(r.Context(), runID)
	if err != nil {
		if eris.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "run not found")
			return
		}
		zap.L().Error("server: get run", zap.String("run_id", runID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondJSON(w, http.StatusOK, map[string]any{"runs": []model.ScoreRun{}})
		return
	}

	filter := store.RunFilter{
		CompanyID: r.URL.Query().Get("company_id"),
		Industry:  r.URL.Query().Get("industry"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	runs, err := s.store.ListRuns(r.Context(), filter)
	if err != nil {
		zap.L().Error("server: list runs", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if runs == nil {
		runs = []model.ScoreRun{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"runs": runs})
}
