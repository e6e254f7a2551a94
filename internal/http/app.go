// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"travelguide_backend/platform/config"
	"travelguide_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
// The Ollama settings are only used to report the configured model name
// on the health endpoint.
type RouterConfig interface {
	config.HTTPConfig
	config.OllamaConfig
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration.
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
