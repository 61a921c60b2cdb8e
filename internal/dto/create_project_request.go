// File: internal/dto/create_project_request.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest 建立案件；owner 取自 token，不由 client 指定
// swagger:model dto.CreateProjectRequest
type CreateProjectRequest struct {
	Description     string          `json:"description" validate:"required" example:"Landing page redesign"`
	Budget          decimal.Decimal `json:"budget" swaggertype:"number" example:"1500.00"`
	Deadline        time.Time       `json:"deadline" example:"2025-12-31T00:00:00Z"`
	Status          string          `json:"status" validate:"required,max=50" example:"open"`
	IsPublic        bool            `json:"isPublic" example:"true"`
	MaxParticipants int             `json:"maxParticipants" validate:"gte=0" example:"3"`
}
