package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionPayment TransactionType = "payment"
	TransactionDeposit TransactionType = "deposit"
	TransactionPenalty TransactionType = "penalty"
)

const TransactionCompleted = "completed"

// Transaction is an append-only ledger entry. Amount is always stored
// positive; the sign of the balance effect is implied by the type.
type Transaction struct {
	ID              int64           `json:"id" gorm:"column:id;primaryKey"`
	UserID          int64           `json:"user_id" gorm:"column:user_id;not null;index"`
	BookingID       *int64          `json:"booking_id" gorm:"column:booking_id;index"`
	TransactionType TransactionType `json:"transaction_type" gorm:"column:transaction_type;size:30;not null;index"`
	Amount          decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(12,2);not null"`
	Description     *string         `json:"description,omitempty" gorm:"column:description;size:500"`
	Status          string          `json:"status" gorm:"column:status;size:30;not null;default:completed"`
	CreatedAt       time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`

	User    *User    `json:"-" gorm:"foreignKey:UserID"`
	Booking *Booking `json:"-" gorm:"foreignKey:BookingID"`
}

func (Transaction) TableName() string { return "transactions" }
