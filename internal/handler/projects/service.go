package projects

import (
	"context"

	"freelance-hub/internal/model"
	"freelance-hub/internal/service"
)

// ProjectService 由 *service.Service 實作
type ProjectService interface {
	CreateProject(ctx context.Context, in service.CreateProjectInput) (*model.Project, error)
	ListUserProjects(ctx context.Context, userID int) ([]model.Project, error)
	GetProjectDetails(ctx context.Context, projectID, requesterID int) (*model.Project, error)
	UpdateProject(ctx context.Context, projectID int, patch model.ProjectPatch, requesterID int) (*model.Project, error)
	DeleteProject(ctx context.Context, projectID, requesterID int) error
	ListPublicWithVacancies(ctx context.Context) ([]model.Project, error)
}
