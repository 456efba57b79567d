package incident

import "carsharex/internal/domain"

type ReportIncidentRequest struct {
	VehicleID    int64  `json:"vehicle_id" binding:"required"`
	BookingID    *int64 `json:"booking_id"`
	UserID       *int64 `json:"user_id"`
	IncidentType string `json:"incident_type" binding:"required,max=50"`
	Description  string `json:"description" binding:"required"`
}

type UpdateIncidentStatusRequest struct {
	Status domain.IncidentStatus `json:"status" binding:"required"`
}
