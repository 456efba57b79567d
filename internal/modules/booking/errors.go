package booking

import "errors"

var (
	ErrVehicleNotFound         = errors.New("vehicle not found")
	ErrVehicleUnavailable      = errors.New("vehicle unavailable")
	ErrTariffNotFound          = errors.New("tariff not found")
	ErrTariffHasNoPrice        = errors.New("tariff has no price")
	ErrUserNotFound            = errors.New("user not found")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingAlreadyCompleted = errors.New("booking already completed")
)
