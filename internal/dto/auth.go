// File: internal/dto/auth.go
package dto

import "time"

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// AuthResponse 註冊與登入成功時回傳
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Message     string    `json:"message" example:"Login successful"`
	AccessToken string    `json:"access_token" example:"eyJhbGciOi..."`
	ExpiresAt   time.Time `json:"expires_at" example:"2025-05-09T15:04:05Z"`
}
