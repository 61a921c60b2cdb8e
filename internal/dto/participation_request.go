// File: internal/dto/participation_request.go
package dto

// ParticipationRequest 加入案件；user 取自 token
// swagger:model dto.ParticipationRequest
type ParticipationRequest struct {
	ProjectID int `json:"projectId" form:"projectId" validate:"required,gt=0" example:"1"`
}
