// Package itinerary wires the AI suggestion pipeline into the HTTP app.
package itinerary

import (
	apphttp "travelguide_backend/internal/http"
	"travelguide_backend/internal/itinerary/handler"
	"travelguide_backend/internal/itinerary/service"
	"travelguide_backend/platform/logger"
	"travelguide_backend/platform/validator"
)

// Module owns the /api/ai routes.
type Module struct {
	handler *handler.Handler
}

func NewModule(invoker service.Invoker, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(invoker, val, log)
	return &Module{handler: handler.New(svc)}
}

func (m *Module) Name() string {
	return "itinerary"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Engine.Group("/api/ai")
	group.POST("/itinerary", ctx.AIRateLimiter.RateLimit(), m.handler.Suggest)
}

var _ apphttp.Module = (*Module)(nil)
