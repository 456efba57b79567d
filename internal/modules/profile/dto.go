package profile

import "github.com/shopspring/decimal"

type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name" binding:"omitempty,max=50"`
	LastName       *string `json:"last_name" binding:"omitempty,max=50"`
	Phone          *string `json:"phone" binding:"omitempty,max=20"`
	DriversLicense *string `json:"drivers_license" binding:"omitempty,max=20"`
}

type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
