// File: internal/dto/auth_response.go
package dto

// AuthResponse 註冊與登入成功的回應
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  UserResponse `json:"user"`
}
