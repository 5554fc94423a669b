package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/writelab/writelab-api/internal/api/http"
	"github.com/writelab/writelab-api/internal/auth"
	authmw "github.com/writelab/writelab-api/internal/auth/middleware"
	"github.com/writelab/writelab-api/internal/challenge"
	"github.com/writelab/writelab-api/internal/config"
	"github.com/writelab/writelab-api/internal/db"
	"github.com/writelab/writelab-api/internal/rbac"
	syncx "github.com/writelab/writelab-api/internal/sync"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	if cfg.Mode == config.ModeOffline {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// --- Catalog (static, read-only) ---
	cat, err := challenge.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("load catalog")
	}

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db open failed")
	}
	store := challenge.NewSQLStore(dbh, cfg.DBDriver)
	events := syncx.NewEventRepo(dbh)

	// --- Auth (local JWT for offline/dev) ---
	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(api.RequestLogger(log.Logger))
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
		r.Post("/auth/login", authmw.LoginHandler(authSvc, cfg))
	}
	if cfg.EnableGuestAuth {
		r.Post("/auth/guest", auth.GuestLoginHandler(authSvc, cfg))
	}

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))

		pr.With(rbac.Require("challenge:view")).
			Get("/challenges", api.ListChallengesHandler(cat))
		pr.With(rbac.Require("challenge:view")).
			Get("/challenges/{challengeID}", api.GetChallengeHandler(cat))

		pr.With(rbac.Require("attempt:create")).
			Post("/challenges/{challengeID}/attempts", api.SubmitAnswerHandler(cat, store, events))

		pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).
			Get("/attempts", api.ListAttemptsHandler(store))
		pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).
			Get("/attempts/{attemptID}", api.GetAttemptHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("mode", string(cfg.Mode)).
		Str("db", cfg.DBDriver).
		Int("challenges", cat.Len()).
		Msg("listening")
	log.Fatal().Err(http.ListenAndServe(cfg.HTTPAddr, r)).Msg("server stopped")
}
