package auth

import "carsharex/internal/domain"

type RegisterRequest struct {
	FirstName      string  `json:"first_name" binding:"required,max=50"`
	LastName       string  `json:"last_name" binding:"required,max=50"`
	Email          string  `json:"email" binding:"required,email,max=100"`
	Phone          string  `json:"phone" binding:"required,max=20"`
	Password       string  `json:"password" binding:"required,min=6,max=72"`
	DriversLicense *string `json:"drivers_license" binding:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}
