package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelguide_backend/internal/cities"
	"travelguide_backend/internal/exports"
	apphttp "travelguide_backend/internal/http"
	"travelguide_backend/internal/http/router"
	"travelguide_backend/internal/itinerary"
	"travelguide_backend/platform/ai/ollama"
	"travelguide_backend/platform/config"
	"travelguide_backend/platform/logger"
	"travelguide_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server",
		"env", cfg.Env,
		"addr", cfg.HTTPAddr,
		"model", cfg.OllamaModel,
		"ollama_url", cfg.OllamaURL,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	ollamaClient := ollama.NewClient(cfg)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	citiesModule := cities.NewModule()
	itineraryModule := itinerary.NewModule(ollamaClient, val, log)
	exportsModule := exports.NewModule(citiesModule.Service(), val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			itineraryModule,
			citiesModule,
			exportsModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
