package transaction

import (
	"github.com/shopspring/decimal"

	"carsharex/internal/domain"
)

type CreateTransactionRequest struct {
	// UserID comes from the user_id query parameter, not the body.
	UserID          int64                  `json:"-"`
	BookingID       *int64                 `json:"booking_id"`
	TransactionType domain.TransactionType `json:"transaction_type" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	Description     *string                `json:"description"`
}
