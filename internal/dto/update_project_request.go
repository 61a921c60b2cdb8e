// File: internal/dto/update_project_request.go
package dto

import (
	"time"

	"freelance-hub/internal/model"

	"github.com/shopspring/decimal"
)

// UpdateProjectRequest 只更新有帶的欄位
// swagger:model dto.UpdateProjectRequest
type UpdateProjectRequest struct {
	Description     *string          `json:"description,omitempty" validate:"omitempty,min=1" example:"Landing page redesign v2"`
	Budget          *decimal.Decimal `json:"budget,omitempty" swaggertype:"number" example:"2000"`
	Deadline        *time.Time       `json:"deadline,omitempty" example:"2026-01-31T00:00:00Z"`
	Status          *string          `json:"status,omitempty" validate:"omitempty,max=50" example:"in progress"`
	IsPublic        *bool            `json:"isPublic,omitempty" example:"false"`
	MaxParticipants *int             `json:"maxParticipants,omitempty" validate:"omitempty,gte=1" example:"5"`
}

func (r UpdateProjectRequest) Patch() model.ProjectPatch {
	return model.ProjectPatch{
		Description:     r.Description,
		Budget:          r.Budget,
		Deadline:        r.Deadline,
		Status:          r.Status,
		IsPublic:        r.IsPublic,
		MaxParticipants: r.MaxParticipants,
	}
}
