package tariff

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
	rg.GET("/tariffs", h.List)
	rg.GET("/tariffs/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	tariffs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to load tariffs")
		return
	}
	c.JSON(http.StatusOK, tariffs)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid tariff id")
		return
	}

	tariff, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTariffNotFound) {
			response.Detail(c, http.StatusNotFound, "Tariff not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to load tariff")
		return
	}
	c.JSON(http.StatusOK, tariff)
}
