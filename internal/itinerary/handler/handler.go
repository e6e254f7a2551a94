// Package handler exposes the AI itinerary suggestion endpoint.
package handler

import (
	"net/http"

	"travelguide_backend/internal/itinerary/service"
	"travelguide_backend/internal/itinerary/transport"
	"travelguide_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler binds the suggestion endpoint to the service pipeline.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Suggest handles POST /api/ai/itinerary.
func (h *Handler) Suggest(c *gin.Context) {
	var req transport.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "INVALID_PAYLOAD", "request body must be a valid JSON itinerary request", nil)
		return
	}

	resp, err := h.svc.Suggest(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}
