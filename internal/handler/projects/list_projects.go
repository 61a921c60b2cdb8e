// File: internal/handler/projects/list_projects.go
package projects

import (
	"net/http"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/handler"

	"github.com/labstack/echo/v4"
)

// ListUserProjectsHandler 自己擁有的案件在前，其次為參與中的案件
// @Summary     使用者的案件
// @Tags        projects
// @Produce     json
// @Param       userId path     int true "使用者 ID，必須是自己"
// @Success     200    {array}  dto.ProjectResponse
// @Failure     400    {object} dto.HTTPError
// @Failure     401    {object} dto.HTTPError
// @Failure     403    {object} dto.HTTPError
// @Failure     500    {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /Projects/user/{userId} [get]
func ListUserProjectsHandler(svc ProjectService) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, ok := handler.CurrentUserID(c)
		if !ok {
			return handler.Unauthorized(c)
		}
		userID, err := handler.IntParam(c, "userId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}
		if userID != callerID {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "cannot list another user's projects"})
		}

		list, err := svc.ListUserProjects(c.Request().Context(), userID)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewProjectResponses(list))
	}
}

// ListPublicProjectsHandler 公開且有名額的案件，不需登入
// @Summary     公開招募中的案件
// @Tags        projects
// @Produce     json
// @Success     200 {array}  dto.ProjectResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /Projects/public [get]
func ListPublicProjectsHandler(svc ProjectService) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.ListPublicWithVacancies(c.Request().Context())
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewProjectResponses(list))
	}
}
