package exports

import (
	"fmt"
	"net/http"

	"travelguide_backend/platform/apperr"
	"travelguide_backend/platform/httpkit"
	"travelguide_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the itinerary PDF download endpoint.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ExportItinerary handles POST /api/v1/exports/itinerary.
func (h *Handler) ExportItinerary(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "INVALID_PAYLOAD", "request body must be a valid JSON export request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("cityId is required."))
		return
	}

	doc, filename, err := h.svc.Export(req)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}
