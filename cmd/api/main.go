package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quantity262/Myweb/internal/api"
	"github.com/quantity262/Myweb/internal/auth"
	"github.com/quantity262/Myweb/internal/config"
	"github.com/quantity262/Myweb/internal/db"
	"github.com/quantity262/Myweb/internal/logger"
	"github.com/quantity262/Myweb/internal/metrics"
	"github.com/quantity262/Myweb/internal/middleware"
	"github.com/quantity262/Myweb/internal/repository/postgres"
	"github.com/quantity262/Myweb/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		log.Error("migrations", "err", err)
		os.Exit(1)
	}

	repos := postgres.NewRepositories(pool)
	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userSvc := services.NewUserService(repos.Users, tm)
	catalogSvc := services.NewCatalogService(services.NewDirSource(cfg.DocumentsDir), repos.Documents)
	messageSvc := services.NewMessageService(repos.Messages)

	// bootstrap must finish before any request is served
	if err := userSvc.EnsureDefaultAdmin(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Error("default admin", "err", err)
		os.Exit(1)
	}

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Auth:     middleware.NewAuthMiddleware(tm),
		Users:    userSvc,
		Catalog:  catalogSvc,
		Messages: messageSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
