package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/admitlens/admitlens/internal/analysis"
	"github.com/admitlens/admitlens/internal/rubric"
)

// POST /analyses  { "essay_id": "...", "rubric_version": "...",
//                   "entries": [DimensionScoreEntry...], "claims": ["..."] }
func RunAnalysisHandler(svc *analysis.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			EssayID       string              `json:"essay_id"`
			RubricVersion string              `json:"rubric_version,omitempty"`
			Entries       []rubric.ScoreEntry `json:"entries"`
			Claims        []string            `json:"claims,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.EssayID == "" {
			http.Error(w, "essay_id required", http.StatusBadRequest)
			return
		}
		rec, err := svc.Analyze(r.Context(), analysis.Request{
			EssayID:       req.EssayID,
			RubricVersion: req.RubricVersion,
			Entries:       req.Entries,
			Claims:        req.Claims,
		})
		if err != nil {
			if errors.Is(err, analysis.ErrEssayNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "analyze: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	}
}

// GET /analyses/{recordID}
func GetAnalysisHandler(store analysis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := store.GetRecord(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	}
}

// GET /essays/{essayID}/analyses
func ListAnalysesHandler(store analysis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := store.ListRecordsByEssay(r.Context(), chi.URLParam(r, "essayID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}
