// File: internal/handler/participations/list.go
package participations

import (
	"errors"
	"net/http"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/handler"
	"freelance-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// ListUserParticipationsHandler 自己的參與紀錄，新加入的在前
// @Summary     使用者的參與紀錄
// @Tags        participations
// @Produce     json
// @Param       userId path     int true "使用者 ID，必須是自己"
// @Success     200    {array}  dto.ParticipationResponse
// @Failure     400    {object} dto.HTTPError
// @Failure     401    {object} dto.HTTPError
// @Failure     403    {object} dto.HTTPError
// @Failure     500    {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ProjectParticipations/user/{userId} [get]
func ListUserParticipationsHandler(svc ParticipationService) echo.HandlerFunc {
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
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "cannot list another user's participations"})
		}

		list, err := svc.ListUserParticipations(c.Request().Context(), userID)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewParticipationResponses(list))
	}
}

// ListProjectParticipantsHandler 案件參與者，owner 在前
// @Summary     案件參與者
// @Tags        participations
// @Produce     json
// @Param       projectId path     int true "案件 ID"
// @Success     200       {array}  dto.ParticipationResponse
// @Failure     400       {object} dto.HTTPError
// @Failure     401       {object} dto.HTTPError
// @Failure     500       {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ProjectParticipations/project/{projectId} [get]
func ListProjectParticipantsHandler(svc ParticipationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := handler.IntParam(c, "projectId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}
		list, err := svc.ListProjectParticipants(c.Request().Context(), projectID)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewParticipationResponses(list))
	}
}

// ListPublicParticipantsHandler 公開案件的參與者，不需登入
// @Summary     公開案件參與者
// @Tags        participations
// @Produce     json
// @Param       projectId path     int true "案件 ID"
// @Success     200       {array}  dto.ParticipationResponse
// @Failure     400       {object} dto.HTTPError
// @Failure     403       {object} dto.HTTPError
// @Failure     404       {object} dto.HTTPError
// @Failure     500       {object} dto.HTTPError
// @Router      /ProjectParticipations/public/{projectId} [get]
func ListPublicParticipantsHandler(svc ParticipationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := handler.IntParam(c, "projectId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}
		list, err := svc.ListPublicProjectParticipants(c.Request().Context(), projectID)
		if errors.Is(err, service.ErrProjectPrivate) {
			return handler.JSONError(c, http.StatusForbidden, err)
		}
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewParticipationResponses(list))
	}
}

// OpportunitiesHandler 公開且有名額的案件
// @Summary     可加入的案件
// @Tags        participations
// @Produce     json
// @Success     200 {array}  dto.ProjectResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ProjectParticipations/opportunities [get]
func OpportunitiesHandler(svc ParticipationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.ListPublicWithVacancies(c.Request().Context())
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewProjectResponses(list))
	}
}
