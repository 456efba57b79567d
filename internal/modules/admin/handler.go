package admin

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

// RegisterRoutes mounts the admin console. public carries the login route,
// authed is already behind EmployeeAuth; employee management additionally
// requires the SuperAdmin role.
func (h *Handler) RegisterRoutes(public, authed *gin.RouterGroup, requireSuperAdmin gin.HandlerFunc) {
	public.POST("/auth/login", h.Login)

	authed.GET("/me", h.Me)

	super := authed.Group("", requireSuperAdmin)
	super.GET("/employees", h.ListEmployees)
	super.POST("/employees", h.CreateEmployee)
	super.PATCH("/employees/:id", h.UpdateEmployee)
	super.DELETE("/employees/:id", h.DeleteEmployee)

	authed.GET("/users", h.ListUsers)
	authed.GET("/users/:id", h.GetUser)
	authed.PATCH("/users/:id", h.UpdateUser)
	authed.DELETE("/users/:id", h.DeleteUser)

	authed.POST("/vehicles", h.CreateVehicle)
	authed.PATCH("/vehicles/:id", h.UpdateVehicle)
	authed.DELETE("/vehicles/:id", h.DeleteVehicle)

	authed.POST("/tariffs", h.CreateTariff)
	authed.PUT("/tariffs/:id", h.UpdateTariff)
	authed.DELETE("/tariffs/:id", h.DeleteTariff)

	authed.GET("/branches", h.ListBranches)
	authed.POST("/branches", h.CreateBranch)
	authed.PUT("/branches/:id", h.UpdateBranch)
	authed.DELETE("/branches/:id", h.DeleteBranch)

	authed.POST("/parking-zones", h.CreateParkingZone)
	authed.PUT("/parking-zones/:id", h.UpdateParkingZone)
	authed.DELETE("/parking-zones/:id", h.DeleteParkingZone)

	authed.GET("/bookings", h.ListBookings)
	authed.GET("/bookings/:id", h.GetBooking)

	authed.GET("/stats/dashboard", h.Dashboard)
	authed.GET("/stats/revenue", h.Revenue)
}

// -------------------- auth --------------------

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *Handler) Me(c *gin.Context) {
	emp, err := h.service.Me(c.Request.Context(), c.GetInt64("employee_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

// -------------------- employees --------------------

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	emp, err := h.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, emp)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	emp, err := h.service.UpdateEmployee(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Deleted(c, http.StatusOK, "Employee deleted", "employee_id", id)
}

// -------------------- users --------------------

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Deleted(c, http.StatusOK, "User deleted", "user_id", id)
}

// -------------------- vehicles --------------------

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.service.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.service.UpdateVehicle(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteVehicle(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Deleted(c, http.StatusOK, "Vehicle deleted", "vehicle_id", id)
}

// -------------------- tariffs --------------------

func (h *Handler) CreateTariff(c *gin.Context) {
	var req TariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tariff, err := h.service.CreateTariff(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tariff)
}

func (h *Handler) UpdateTariff(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req TariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tariff, err := h.service.UpdateTariff(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tariff)
}

func (h *Handler) DeleteTariff(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTariff(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Deleted(c, http.StatusOK, "Tariff deleted", "tariff_id", id)
}

// -------------------- branches --------------------

func (h *Handler) ListBranches(c *gin.Context) {
	branches, err := h.service.ListBranches(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

func (h *Handler) CreateBranch(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	branch, err := h.service.CreateBranch(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branch)
}

func (h *Handler) UpdateBranch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	branch, err := h.service.UpdateBranch(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *Handler) DeleteBranch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBranch(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Deleted(c, http.StatusOK, "Branch deleted", "branch_id", id)
}

// -------------------- parking zones --------------------

func (h *Handler) CreateParkingZone(c *gin.Context) {
	var req ParkingZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	zone, err := h.service.CreateParkingZone(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, zone)
}

func (h *Handler) UpdateParkingZone(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ParkingZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	zone, err := h.service.UpdateParkingZone(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, zone)
}

func (h *Handler) DeleteParkingZone(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteParkingZone(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Deleted(c, http.StatusOK, "Parking zone deleted", "parking_zone_id", id)
}

// -------------------- bookings & stats --------------------

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), domain.BookingStatus(c.Query("status")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) Revenue(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	points, err := h.service.Revenue(c.Request.Context(), days)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// -------------------- helpers --------------------

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.Detail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailTaken):
		response.Detail(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrEmployeeNotFound):
		response.Detail(c, http.StatusNotFound, "Employee not found")
	case errors.Is(err, ErrRoleNotFound):
		response.Detail(c, http.StatusNotFound, "Role not found")
	case errors.Is(err, ErrBranchNotFound):
		response.Detail(c, http.StatusNotFound, "Branch not found")
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Detail(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrVehicleNotFound):
		response.Detail(c, http.StatusNotFound, "Vehicle not found")
	case errors.Is(err, ErrTariffNotFound):
		response.Detail(c, http.StatusNotFound, "Tariff not found")
	case errors.Is(err, ErrZoneNotFound):
		response.Detail(c, http.StatusNotFound, "Parking zone not found")
	case errors.Is(err, ErrVehicleInUse):
		response.Detail(c, http.StatusBadRequest, "Vehicle has an active booking")
	case errors.Is(err, ErrTariffInUse):
		response.Detail(c, http.StatusBadRequest, "Tariff is assigned to vehicles")
	case errors.Is(err, ErrZoneOccupied):
		response.Detail(c, http.StatusBadRequest, "Parking zone still holds vehicles")
	case errors.Is(err, ErrUserHasActiveRides):
		response.Detail(c, http.StatusBadRequest, "User has active bookings")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}
