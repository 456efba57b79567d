package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	VehicleID int64  `json:"vehicle_id" binding:"required"`
	TariffID  int64  `json:"tariff_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type CompleteBookingRequest struct {
	EndTime   time.Time       `json:"end_time" binding:"required"`
	TotalCost decimal.Decimal `json:"total_cost" binding:"required"`
}

type CalculateCostRequest struct {
	TariffID  int64  `json:"tariff_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type CalculateCostResponse struct {
	TariffID    int64           `json:"tariff_id"`
	TariffName  string          `json:"tariff_name"`
	DaysCount   int             `json:"days_count"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
}
