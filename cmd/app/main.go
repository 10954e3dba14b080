package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stationchief/station-backend/internal/auth"
	"github.com/stationchief/station-backend/internal/config"
	"github.com/stationchief/station-backend/internal/daily"
	"github.com/stationchief/station-backend/internal/database"
	"github.com/stationchief/station-backend/internal/database/postgres"
	"github.com/stationchief/station-backend/internal/economy"
	"github.com/stationchief/station-backend/internal/logger"
	"github.com/stationchief/station-backend/internal/player"
	"github.com/stationchief/station-backend/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	pool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), database.PoolConfig{
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	verifier, err := auth.NewVerifier(cfg.BotToken, cfg.AuthCacheSize)
	if err != nil {
		slog.Error("Failed to create auth verifier", "error", err)
		os.Exit(1)
	}

	playerSvc := player.NewService(
		postgres.NewPlayerRepository(pool),
		economy.NewEngine(),
		daily.NewTracker(),
	)

	srv := server.NewServer(cfg.Port, cfg.AllowedOrigin, verifier, pool, playerSvc)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	slog.Info("Server stopped")
}
