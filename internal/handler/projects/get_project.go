// File: internal/handler/projects/get_project.go
package projects

import (
	"errors"
	"net/http"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/handler"
	"freelance-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// GetProjectDetailsHandler 案件明細含參與者
// @Summary     案件明細
// @Description 私人案件只有 owner 與參與者可查看
// @Tags        projects
// @Produce     json
// @Param       projectId path     int true "案件 ID"
// @Success     200       {object} dto.ProjectResponse
// @Failure     400       {object} dto.HTTPError
// @Failure     401       {object} dto.HTTPError
// @Failure     403       {object} dto.HTTPError
// @Failure     404       {object} dto.HTTPError
// @Failure     500       {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /Projects/details/{projectId} [get]
func GetProjectDetailsHandler(svc ProjectService) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, ok := handler.CurrentUserID(c)
		if !ok {
			return handler.Unauthorized(c)
		}
		projectID, err := handler.IntParam(c, "projectId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}

		p, err := svc.GetProjectDetails(c.Request().Context(), projectID, callerID)
		if errors.Is(err, service.ErrProjectPrivate) {
			return handler.JSONError(c, http.StatusForbidden, err)
		}
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewProjectResponse(*p))
	}
}
