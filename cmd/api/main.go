package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/moodjournal/moodjournal-go/internal/config"
	"github.com/moodjournal/moodjournal-go/internal/handler"
	"github.com/moodjournal/moodjournal-go/internal/middleware"
	"github.com/moodjournal/moodjournal-go/internal/repository"
	"github.com/moodjournal/moodjournal-go/internal/service"
	"github.com/moodjournal/moodjournal-go/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(newLogger(cfg))

	ctx := context.Background()

	connector := repository.NewConnector(cfg.DatabaseDriver, cfg.DatabaseDSN)
	db, err := connector.DB(ctx)
	if err != nil {
		slog.Error("database connection failed", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := repository.Migrate(ctx, db, connector.Driver()); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	store := repository.NewStore(db, connector.Driver())
	sessions := session.NewIssuer(cfg.JWTSecret, !cfg.IsDevelopment())

	authService := service.NewAuthService(store, cfg.BcryptCost)
	tokenService := service.NewTokenService(store)
	journalService := service.NewJournalService(store)
	readService := service.NewReadService(store)

	routes := handler.Router{
		Auth:          handler.NewAuthHandler(authService, sessions),
		Tokens:        handler.NewTokenHandler(tokenService),
		Journal:       handler.NewJournalHandler(journalService, readService),
		Authenticator: middleware.NewAuthenticator(sessions, tokenService),
		CORSOrigins:   cfg.CORSOrigins,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
