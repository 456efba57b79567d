package vehicle

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
	rg.GET("/vehicles", h.List)
	rg.GET("/vehicles/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	f := Filter{
		Status:      c.Query("status"),
		VehicleType: c.Query("vehicle_type"),
		Brand:       c.Query("brand"),
	}
	if v := c.Query("tariff_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Detail(c, http.StatusBadRequest, "Invalid tariff_id")
			return
		}
		f.TariffID = id
	}
	if v := c.Query("parking_zone_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Detail(c, http.StatusBadRequest, "Invalid parking_zone_id")
			return
		}
		f.ParkingZoneID = id
	}

	vehicles, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to load vehicles")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	vehicle, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			response.Detail(c, http.StatusNotFound, "Vehicle not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to load vehicle")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}
