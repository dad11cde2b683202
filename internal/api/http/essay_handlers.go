package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/admitlens/admitlens/internal/analysis"
	authmw "github.com/admitlens/admitlens/internal/auth/middleware"
)

// POST /essays  { "kind": "essay|activity", "title": "...", "body": "..." }
func SubmitEssayHandler(svc *analysis.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Kind  string `json:"kind"`
			Title string `json:"title"`
			Body  string `json:"body"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		userID := authmw.SubjectFromContext(r.Context())
		e, err := svc.SubmitEssay(r.Context(), userID, req.Kind, req.Title, req.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(e)
	}
}

// GET /essays/{essayID}
func GetEssayHandler(store analysis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := store.GetEssay(r.Context(), chi.URLParam(r, "essayID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(e)
	}
}

// GET /essays  (own submissions; ?user_id= for reviewers)
func ListEssaysHandler(store analysis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			userID = authmw.SubjectFromContext(r.Context())
		}
		out, err := store.ListEssaysByUser(r.Context(), userID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}
