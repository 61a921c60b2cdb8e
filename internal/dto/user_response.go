// File: internal/dto/user_response.go
package dto

import (
	"time"

	"freelance-hub/internal/model"
)

// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
