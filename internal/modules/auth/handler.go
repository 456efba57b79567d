package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carsharex/internal/pkg/response"
	"carsharex/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authed *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	authed.GET("/auth/me", h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, validator.BindingMessage(err))
		return
	}

	token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, token)
}

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
	userID := c.GetInt64("user_id")

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailTaken):
		response.Detail(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrPhoneTaken):
		response.Detail(c, http.StatusBadRequest, "Phone already registered")
	case errors.Is(err, ErrLicenseTaken):
		response.Detail(c, http.StatusBadRequest, "Drivers license already registered")
	case errors.Is(err, ErrInvalidCredentials):
		response.Detail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, http.StatusNotFound, "User not found")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}
