package incident

import "errors"

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidStatus    = errors.New("invalid incident status")
)
