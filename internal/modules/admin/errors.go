package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrRoleNotFound     = errors.New("role not found")
	ErrBranchNotFound   = errors.New("branch not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrTariffNotFound   = errors.New("tariff not found")
	ErrZoneNotFound     = errors.New("parking zone not found")

	ErrVehicleInUse       = errors.New("vehicle has an active booking")
	ErrTariffInUse        = errors.New("tariff is assigned to vehicles")
	ErrZoneOccupied       = errors.New("parking zone still holds vehicles")
	ErrUserHasActiveRides = errors.New("user has active bookings")
)
