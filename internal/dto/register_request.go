// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=50" example:"alice"`
	Email    string `json:"email" form:"email" validate:"required,email,max=100" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=6" example:"Secret123!"`
}
