// File: internal/handler/projects/delete_project.go
package projects

import (
	"net/http"

	"freelance-hub/internal/handler"

	"github.com/labstack/echo/v4"
)

// DeleteProjectHandler 只有 owner 可刪除；不存在與非 owner 一律回 404
// @Summary     刪除案件
// @Tags        projects
// @Param       projectId path int true "案件 ID"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /Projects/{projectId} [delete]
func DeleteProjectHandler(svc ProjectService) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, ok := handler.CurrentUserID(c)
		if !ok {
			return handler.Unauthorized(c)
		}
		projectID, err := handler.IntParam(c, "projectId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}

		if err := svc.DeleteProject(c.Request().Context(), projectID, callerID); err != nil {
			return handler.ServiceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
