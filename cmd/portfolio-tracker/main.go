// Package main Portfolio Tracker API
//
// @title           Portfolio Tracker API
// @version         1.0
// @description     API трекера торгового портфеля: аутентификация, ордера, витрины.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	portfoliotracker "github.com/magabrotheeeer/portfolio-tracker/internal/app/portfolio-tracker"
	"github.com/magabrotheeeer/portfolio-tracker/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting portfolio-tracker", slog.String("env", cfg.Env))
	if cfg.IsDefaultJWTSecret() {
		// Известный риск деплоя: с дефолтным секретом токены подделываемы.
		logger.Warn("JWT_SECRET is not set, using insecure default secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := portfoliotracker.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}
