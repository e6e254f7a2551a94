package cities

import (
	apphttp "travelguide_backend/internal/http"
)

// Module wires the city dataset HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule() *Module {
	svc := NewService()
	return &Module{service: svc, handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "cities"
}

// Service exposes the dataset lookups to other modules (exports, clients).
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/cities")
	group.GET("", m.handler.ListCities)
	group.GET("/:id", m.handler.GetCity)
	group.GET("/:id/locations", m.handler.ListLocations)
}

var _ apphttp.Module = (*Module)(nil)
