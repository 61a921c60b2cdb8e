// File: internal/dto/project_response.go
package dto

import (
	"time"

	"freelance-hub/internal/model"

	"github.com/shopspring/decimal"
)

// swagger:model dto.ProjectResponse
type ProjectResponse struct {
	ID                  int                     `json:"id" example:"1"`
	UserID              int                     `json:"userId" example:"1"`
	Description         string                  `json:"description" example:"Landing page redesign"`
	Budget              decimal.Decimal         `json:"budget" swaggertype:"number" example:"1500.00"`
	Deadline            time.Time               `json:"deadline" example:"2025-12-31T00:00:00Z"`
	Status              string                  `json:"status" example:"open"`
	CreatedAt           time.Time               `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	IsPublic            bool                    `json:"isPublic" example:"true"`
	MaxParticipants     int                     `json:"maxParticipants" example:"3"`
	HasVacancies        bool                    `json:"hasVacancies" example:"true"`
	CurrentParticipants int                     `json:"currentParticipants" example:"1"`
	Participants        []ParticipationResponse `json:"participants,omitempty"`
}

func NewProjectResponse(p model.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		Description:         p.Description,
		Budget:              p.Budget,
		Deadline:            p.Deadline,
		Status:              p.Status,
		CreatedAt:           p.CreatedAt,
		IsPublic:            p.IsPublic,
		MaxParticipants:     p.MaxParticipants,
		HasVacancies:        p.HasVacancies,
		CurrentParticipants: p.CurrentParticipants,
	}
	if len(p.Participants) > 0 {
		resp.Participants = NewParticipationResponses(p.Participants)
	}
	return resp
}

// NewProjectResponses 保證回傳非 nil slice，序列化為 []
func NewProjectResponses(ps []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProjectResponse(p))
	}
	return out
}
