package booking

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
	rg.POST("/bookings", h.CreateBooking)
	rg.PATCH("/bookings/:id/complete", h.CompleteBooking)
	rg.POST("/bookings/calculate-cost", h.CalculateCost)
	rg.GET("/bookings/user/:userId", h.ListUserBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Detail(c, http.StatusBadRequest, "user_id query parameter is required")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *Handler) CompleteBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req CompleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.CompleteBooking(c.Request.Context(), bookingID, req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *Handler) CalculateCost(c *gin.Context) {
	var req CalculateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.service.CalculateCost(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *Handler) ListUserBookings(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	bookings, err := h.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrVehicleNotFound):
		response.Detail(c, http.StatusNotFound, "Vehicle not found")
	case errors.Is(err, ErrTariffNotFound):
		response.Detail(c, http.StatusNotFound, "Tariff not found")
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Detail(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrVehicleUnavailable):
		response.Detail(c, http.StatusBadRequest, "Vehicle is not available for booking")
	case errors.Is(err, ErrInsufficientBalance):
		response.Detail(c, http.StatusBadRequest, "Insufficient balance to pay for the booking")
	case errors.Is(err, ErrInvalidDateRange):
		response.Detail(c, http.StatusBadRequest, "Invalid booking date range")
	case errors.Is(err, ErrTariffHasNoPrice):
		response.Detail(c, http.StatusBadRequest, "Tariff has no usable rate")
	case errors.Is(err, ErrBookingAlreadyCompleted):
		response.Detail(c, http.StatusBadRequest, "Booking is already completed")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}
