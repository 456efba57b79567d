package booking

import "carsharex/internal/domain"

// StatusPublisher pushes vehicle status transitions to the admin live feed.
type StatusPublisher interface {
	PublishVehicleStatus(vehicleID int64, status domain.VehicleStatus)
}
