// File: internal/handler/projects/create_project.go
package projects

import (
	"net/http"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/handler"
	"freelance-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// CreateProjectHandler 建立案件，owner 為 token 使用者
// @Summary     建立案件
// @Description 建立案件並自動加入 owner 參與紀錄；budget 至少 100，maxParticipants 為 0 時視為 1
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       body body     dto.CreateProjectRequest true "案件資料"
// @Success     201  {object} dto.ProjectResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /Projects [post]
func CreateProjectHandler(svc ProjectService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := handler.CurrentUserID(c)
		if !ok {
			return handler.Unauthorized(c)
		}

		var req dto.CreateProjectRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "無效的請求資料: %v", err)
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}

		p, err := svc.CreateProject(c.Request().Context(), service.CreateProjectInput{
			OwnerID:         userID,
			Description:     req.Description,
			Budget:          req.Budget,
			Deadline:        req.Deadline,
			Status:          req.Status,
			IsPublic:        req.IsPublic,
			MaxParticipants: req.MaxParticipants,
		})
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusCreated, dto.NewProjectResponse(*p))
	}
}
