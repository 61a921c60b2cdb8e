package participations

import (
	"context"

	"freelance-hub/internal/model"
)

// ParticipationService 由 *service.Service 實作
type ParticipationService interface {
	Join(ctx context.Context, projectID, userID int) (*model.Participation, error)
	Leave(ctx context.Context, projectID, userID int) (bool, error)
	RemoveParticipant(ctx context.Context, projectID, targetUserID, requesterID int) (bool, error)
	ListProjectParticipants(ctx context.Context, projectID int) ([]model.Participation, error)
	ListPublicProjectParticipants(ctx context.Context, projectID int) ([]model.Participation, error)
	ListUserParticipations(ctx context.Context, userID int) ([]model.Participation, error)
	ListPublicWithVacancies(ctx context.Context) ([]model.Project, error)
}
