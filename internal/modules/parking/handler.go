package parking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carsharex/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/parking-zones", h.List)
	rg.GET("/parking-zones/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	zones, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to load parking zones")
		return
	}
	c.JSON(http.StatusOK, zones)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid parking zone id")
		return
	}

	zone, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrZoneNotFound) {
			response.Detail(c, http.StatusNotFound, "Parking zone not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to load parking zone")
		return
	}
	c.JSON(http.StatusOK, zone)
}
