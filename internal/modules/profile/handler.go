package profile

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
	rg.GET("/profile/:userId", h.Get)
	rg.PATCH("/profile/:userId", h.Update)
	rg.POST("/profile/:userId/top-up", h.TopUp)
}

// pathUserID parses the userId path segment and checks it against the
// authenticated identity: a client may only touch their own profile.
func pathUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	if userID != c.GetInt64("user_id") {
		response.Detail(c, http.StatusForbidden, "Access denied")
		return 0, false
	}
	return userID, true
}

func (h *Handler) Get(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	user, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) Update(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Update(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) TopUp(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.TopUp(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrPhoneTaken):
		response.Detail(c, http.StatusBadRequest, "Phone already registered")
	case errors.Is(err, ErrLicenseTaken):
		response.Detail(c, http.StatusBadRequest, "Drivers license already registered")
	case errors.Is(err, ErrInvalidAmount):
		response.Detail(c, http.StatusBadRequest, "Amount must be positive")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}
