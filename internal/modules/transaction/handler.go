package transaction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"carsharex/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/transactions", h.Create)
	rg.POST("/transactions/deposit", h.Deposit)
	rg.GET("/transactions/user/:userId", h.ListUserTransactions)
}

func (h *Handler) Create(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Detail(c, http.StatusBadRequest, "user_id query parameter is required")
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	txn, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, txn)
}

func (h *Handler) Deposit(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Detail(c, http.StatusBadRequest, "user_id query parameter is required")
		return
	}
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "amount query parameter is required")
		return
	}

	txn, err := h.service.Deposit(c.Request.Context(), userID, amount, c.Query("description"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, txn)
}

func (h *Handler) ListUserTransactions(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.Detail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	txns, err := h.service.ListUserTransactions(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, txns)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Detail(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrInvalidAmount):
		response.Detail(c, http.StatusBadRequest, "Amount must be positive")
	case errors.Is(err, ErrUnknownTxnType):
		response.Detail(c, http.StatusBadRequest, "Unknown transaction type")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}
