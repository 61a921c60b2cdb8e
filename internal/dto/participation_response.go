// File: internal/dto/participation_response.go
package dto

import (
	"time"

	"freelance-hub/internal/model"
)

// swagger:model dto.ParticipationResponse
type ParticipationResponse struct {
	ID                 int       `json:"id" example:"10"`
	ProjectID          int       `json:"projectId" example:"1"`
	UserID             int       `json:"userId" example:"2"`
	Role               string    `json:"role" example:"participant"`
	JoinedAt           time.Time `json:"joinedAt" example:"2025-05-02T08:00:00Z"`
	Username           string    `json:"username,omitempty" example:"bob"`
	ProjectDescription string    `json:"projectDescription,omitempty" example:"Landing page redesign"`
}

func NewParticipationResponse(p model.Participation) ParticipationResponse {
	return ParticipationResponse{
		ID:                 p.ID,
		ProjectID:          p.ProjectID,
		UserID:             p.UserID,
		Role:               p.Role,
		JoinedAt:           p.JoinedAt,
		Username:           p.Username,
		ProjectDescription: p.ProjectDescription,
	}
}

func NewParticipationResponses(ps []model.Participation) []ParticipationResponse {
	out := make([]ParticipationResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewParticipationResponse(p))
	}
	return out
}
