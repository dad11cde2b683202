package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/admitlens/admitlens/internal/analysis"
	api "github.com/admitlens/admitlens/internal/api/http"
	auth "github.com/admitlens/admitlens/internal/auth/middleware"
	"github.com/admitlens/admitlens/internal/config"
	"github.com/admitlens/admitlens/internal/db"
	"github.com/admitlens/admitlens/internal/rbac"
	"github.com/admitlens/admitlens/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := analysis.NewSQLStore(dbh, cfg.DBDriver)
	svc := analysis.NewService(store, analysis.NewEventRepo(dbh))

	// --- Auth (local JWT for offline/dev) ---
	secret := getenvOr("AUTH_HMAC_SECRET", "supersecret-dev-key")
	authSvc := auth.NewAuthService(secret, cfg.AdminUser, cfg.AdminPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc))
	}

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}
	// draft attachments (protected)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Route("/assets", func(ar chi.Router) {
			api.MountAssets(ar, bs)
		})
	})

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Submissions
		pr.With(rbac.Require("essay:submit")).
			Post("/essays", api.SubmitEssayHandler(svc))
		pr.With(rbac.RequireAny("essay:view-own", "essay:view-all")).
			Get("/essays", api.ListEssaysHandler(store))
		pr.With(rbac.RequireAny("essay:view-own", "essay:view-all")).
			Get("/essays/{essayID}", api.GetEssayHandler(store))

		// Analyses
		pr.With(rbac.Require("analysis:run")).
			Post("/analyses", api.RunAnalysisHandler(svc))
		pr.With(rbac.RequireAny("analysis:view-own", "analysis:view-all")).
			Get("/analyses/{recordID}", api.GetAnalysisHandler(store))
		pr.With(rbac.RequireAny("analysis:view-own", "analysis:view-all")).
			Get("/essays/{essayID}/analyses", api.ListAnalysesHandler(store))

		// Stateless scoring primitives for the orchestration layer
		pr.With(rbac.Require("similarity:compare")).
			Post("/similarity", api.CompareTextsHandler())
		pr.With(rbac.Require("similarity:compare")).
			Post("/similarity/overlap", api.ExtractOverlapHandler())
		pr.With(rbac.Require("claim:validate")).
			Post("/claims/validate", api.ValidateClaimHandler())
		pr.With(rbac.Require("analysis:run")).
			Post("/score", api.ScoreHandler(cfg.DefaultRubric))

		// Rubric definitions
		pr.With(rbac.Require("rubric:view")).
			Get("/rubrics", api.ListRubricsHandler())
		pr.With(rbac.Require("rubric:view")).
			Get("/rubrics/{version}", api.GetRubricHandler())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func getenvOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
