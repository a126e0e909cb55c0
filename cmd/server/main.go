package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/lookdine/lookdine/internal/server/config"
	"github.com/lookdine/lookdine/internal/server/http/handlers/health"
	"github.com/lookdine/lookdine/internal/server/http/handlers/login"
	"github.com/lookdine/lookdine/internal/server/http/handlers/logout"
	"github.com/lookdine/lookdine/internal/server/http/handlers/refresh"
	"github.com/lookdine/lookdine/internal/server/http/handlers/search"
	"github.com/lookdine/lookdine/internal/server/http/handlers/signup"
	"github.com/lookdine/lookdine/internal/server/http/handlers/verify"
	"github.com/lookdine/lookdine/internal/server/lib/jwt"
	"github.com/lookdine/lookdine/internal/server/lib/logger/sl"
	authsrv "github.com/lookdine/lookdine/internal/server/services/auth"
	"github.com/lookdine/lookdine/internal/server/users"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	configPath := flag.String("config", "./config/local.yaml", "path to the config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	log := setupLogger(cfg.Env)

	log.Info("starting lookdine api", slog.String("env", cfg.Env))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repo, err := users.OpenSQLite(ctx, cfg.Database.Path)
	if err != nil {
		log.Error("failed to open user store", sl.Err(err))
		os.Exit(1)
	}
	defer repo.Close()

	authService := authsrv.New(log, repo, []byte(cfg.AppSecret), cfg.TokenTTL)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", health.New())
	r.Post("/api/auth/signup", signup.New(log, authService))
	r.Post("/api/auth/login", login.New(log, authService))

	r.Group(func(r chi.Router) {
		r.Use(jwt.AuthMiddleware([]byte(cfg.AppSecret)))

		r.Post("/api/auth/logout", logout.New(log))
		r.Post("/api/auth/refresh", refresh.New(log, authService))
		r.Get("/api/auth/verify", verify.New(log, authService))
		r.Get("/api/search", search.New(log, search.DefaultVenues))
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      r,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	log.Info("HTTP server starting", slog.String("addr", cfg.HTTPServer.Address))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", sl.Err(err))
		os.Exit(1)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
