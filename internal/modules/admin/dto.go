package admin

import (
	"github.com/shopspring/decimal"

	"carsharex/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	Employee    *domain.Employee `json:"employee"`
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Password  string `json:"password" binding:"required,min=6,max=72"`
	RoleID    *int64 `json:"role_id"`
	BranchID  *int64 `json:"branch_id"`
}

type UpdateEmployeeRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Password  *string `json:"password" binding:"omitempty,min=6,max=72"`
	RoleID    *int64  `json:"role_id"`
	BranchID  *int64  `json:"branch_id"`
}

type UpdateUserRequest struct {
	FirstName      *string `json:"first_name" binding:"omitempty,max=50"`
	LastName       *string `json:"last_name" binding:"omitempty,max=50"`
	Email          *string `json:"email" binding:"omitempty,email,max=100"`
	Phone          *string `json:"phone" binding:"omitempty,max=20"`
	DriversLicense *string `json:"drivers_license" binding:"omitempty,max=20"`
}

type VehicleRequest struct {
	LicensePlate  string  `json:"license_plate" binding:"required,max=20"`
	Brand         string  `json:"brand" binding:"required,max=50"`
	Model         string  `json:"model" binding:"required,max=50"`
	VehicleType   string  `json:"vehicle_type" binding:"required,max=30"`
	Year          *int    `json:"year"`
	Color         *string `json:"color" binding:"omitempty,max=30"`
	ImageURL      *string `json:"image_url" binding:"omitempty,max=500"`
	Description   *string `json:"description" binding:"omitempty,max=500"`
	ParkingZoneID *int64  `json:"parking_zone_id"`
	TariffID      *int64  `json:"tariff_id"`
}

type UpdateVehicleRequest struct {
	LicensePlate  *string               `json:"license_plate" binding:"omitempty,max=20"`
	Brand         *string               `json:"brand" binding:"omitempty,max=50"`
	Model         *string               `json:"model" binding:"omitempty,max=50"`
	VehicleType   *string               `json:"vehicle_type" binding:"omitempty,max=30"`
	Year          *int                  `json:"year"`
	Color         *string               `json:"color" binding:"omitempty,max=30"`
	ImageURL      *string               `json:"image_url" binding:"omitempty,max=500"`
	Description   *string               `json:"description" binding:"omitempty,max=500"`
	Status        *domain.VehicleStatus `json:"status"`
	ParkingZoneID *int64                `json:"parking_zone_id"`
	TariffID      *int64                `json:"tariff_id"`
}

type TariffRequest struct {
	Name           string           `json:"name" binding:"required,max=50"`
	PricePerMinute *decimal.Decimal `json:"price_per_minute"`
	PricePerHour   *decimal.Decimal `json:"price_per_hour"`
}

type BranchRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Address string  `json:"address" binding:"required,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
}

type ParkingZoneRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Address  string `json:"address" binding:"required,max=255"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type DashboardStats struct {
	TotalUsers        int64           `json:"total_users"`
	TotalVehicles     int64           `json:"total_vehicles"`
	AvailableVehicles int64           `json:"available_vehicles"`
	TotalBookings     int64           `json:"total_bookings"`
	ActiveBookings    int64           `json:"active_bookings"`
	OpenIncidents     int64           `json:"open_incidents"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

type RevenuePoint struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}
