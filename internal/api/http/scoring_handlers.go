package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/admitlens/admitlens/internal/claims"
	"github.com/admitlens/admitlens/internal/llm"
	"github.com/admitlens/admitlens/internal/rubric"
	"github.com/admitlens/admitlens/internal/textsim"
)

// POST /similarity  { "text_a": "...", "text_b": "..." }
func CompareTextsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TextA string `json:"text_a"`
			TextB string `json:"text_b"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(textsim.Compare(req.TextA, req.TextB))
	}
}

// POST /similarity/overlap  { "text_a": "...", "text_b": "...", "min_length": 15 }
func ExtractOverlapHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TextA     string `json:"text_a"`
			TextB     string `json:"text_b"`
			MinLength int    `json:"min_length,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		out := textsim.ExtractOverlap(req.TextA, req.TextB, req.MinLength)
		_ = json.NewEncoder(w).Encode(map[string][]string{"overlaps": out})
	}
}

// POST /claims/validate  { "claim": "...", "sources": ["..."] }
func ValidateClaimHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Claim     string   `json:"claim"`
			Sources   []string `json:"sources"`
			Threshold float64  `json:"threshold,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(claims.ValidateWithThreshold(req.Claim, req.Sources, req.Threshold))
	}
}

// POST /score  { "rubric_version": "...", "entries": [DimensionScoreEntry...] }
// Scores externally produced dimension entries without persisting anything;
// used by the orchestration layer to preview composites.
func ScoreHandler(defaultVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RubricVersion string              `json:"rubric_version,omitempty"`
			Entries       []rubric.ScoreEntry `json:"entries"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		version := req.RubricVersion
		if version == "" {
			version = defaultVersion
		}
		rub, ok := rubric.Get(version)
		if !ok {
			http.Error(w, "unknown rubric version: "+version, http.StatusBadRequest)
			return
		}
		entries, err := llm.ValidateEntries(req.Entries, rub)
		if err != nil {
			http.Error(w, "entries: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		res, err := rubric.Score(entries, rub)
		if err != nil {
			http.Error(w, "score: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

// GET /rubrics
func ListRubricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]string{"versions": rubric.Versions()})
	}
}

// GET /rubrics/{version}
func GetRubricHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := chi.URLParam(r, "version")
		rub, ok := rubric.Get(version)
		if !ok {
			http.Error(w, "rubric not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(rub)
	}
}
