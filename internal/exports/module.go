package exports

import (
	"travelguide_backend/internal/cities"
	apphttp "travelguide_backend/internal/http"
	"travelguide_backend/platform/validator"
)

// Module wires the PDF export HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(citySvc *cities.Service, val *validator.Validator) *Module {
	svc := NewService(citySvc)
	return &Module{handler: NewHandler(svc, val)}
}

func (m *Module) Name() string {
	return "exports"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/exports")
	group.POST("/itinerary", m.handler.ExportItinerary)
}

var _ apphttp.Module = (*Module)(nil)
