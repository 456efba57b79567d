package transaction

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrUnknownTxnType  = errors.New("unknown transaction type")
	ErrBookingNotFound = errors.New("booking not found")
)
