package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AkshatKumar38/Study-Hub/internal/config"
	"github.com/AkshatKumar38/Study-Hub/internal/database"
	"github.com/AkshatKumar38/Study-Hub/internal/engine"
	"github.com/AkshatKumar38/Study-Hub/internal/handlers"
	"github.com/AkshatKumar38/Study-Hub/internal/middleware"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"
	ws "github.com/AkshatKumar38/Study-Hub/internal/websocket"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/lmittmann/tint"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	store, err := database.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open session store", "path", cfg.Store.Path, "err", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("session store ready", "path", cfg.Store.Path)

	metrics := utils.NewMetricsCollector()

	hub := ws.NewHub()
	go hub.Run()

	system := actor.NewActorSystem()
	studyEngine := engine.NewEngine(system, metrics, store, cfg.Store.SessionKey, hub)

	server := handlers.NewServer(system, studyEngine, metrics, hub, cfg.ComposerDelay)

	router := server.Routes()
	router.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig(cfg.AllowedOrigins)))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	system.Shutdown()
}
