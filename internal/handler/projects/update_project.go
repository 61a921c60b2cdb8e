// File: internal/handler/projects/update_project.go
package projects

import (
	"net/http"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/handler"

	"github.com/labstack/echo/v4"
)

// UpdateProjectHandler 只有 owner 可更新；調整 maxParticipants 會立即重算名額
// @Summary     更新案件
// @Tags        projects
// @Accept      json
// @Param       projectId path int                      true "案件 ID"
// @Param       body      body dto.UpdateProjectRequest true "要更新的欄位"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /Projects/{projectId} [put]
func UpdateProjectHandler(svc ProjectService) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, ok := handler.CurrentUserID(c)
		if !ok {
			return handler.Unauthorized(c)
		}
		projectID, err := handler.IntParam(c, "projectId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}

		var req dto.UpdateProjectRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "無效的請求資料: %v", err)
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}

		if _, err := svc.UpdateProject(c.Request().Context(), projectID, req.Patch(), callerID); err != nil {
			return handler.ServiceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
