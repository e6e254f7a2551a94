package cities

import (
	"travelguide_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the read-only city endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListCities handles GET /api/v1/cities.
func (h *Handler) ListCities(c *gin.Context) {
	httpkit.OK(c, gin.H{"cities": h.svc.Cities()})
}

// GetCity handles GET /api/v1/cities/:id.
func (h *Handler) GetCity(c *gin.Context) {
	city, err := h.svc.CityByID(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, city)
}

// ListLocations handles GET /api/v1/cities/:id/locations.
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.svc.LocationsByCity(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"locations": locations})
}
