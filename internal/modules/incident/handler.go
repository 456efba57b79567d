package incident

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carsharex/internal/domain"
	"carsharex/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/incidents", h.Report)
	rg.GET("/incidents/vehicle/:vehicleId", h.ListByVehicle)
}

func (h *Handler) Report(c *gin.Context) {
	var req ReportIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	incident, err := h.service.Report(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, incident)
}

func (h *Handler) ListByVehicle(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Param("vehicleId"), 10, 64)
	if err != nil || vehicleID <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	incidents, err := h.service.ListByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to load incidents")
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// AdminList and AdminUpdateStatus are mounted under the employee-guarded
// group by the admin router.
func (h *Handler) AdminList(c *gin.Context) {
	incidents, err := h.service.List(c.Request.Context(), domain.IncidentStatus(c.Query("status")))
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to load incidents")
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (h *Handler) AdminUpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid incident id")
		return
	}

	var req UpdateIncidentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	incident, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrVehicleNotFound):
		response.Detail(c, http.StatusNotFound, "Vehicle not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Detail(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrIncidentNotFound):
		response.Detail(c, http.StatusNotFound, "Incident not found")
	case errors.Is(err, ErrInvalidStatus):
		response.Detail(c, http.StatusBadRequest, "Invalid incident status")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}
