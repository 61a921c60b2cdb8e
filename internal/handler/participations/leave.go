// File: internal/handler/participations/leave.go
package participations

import (
	"net/http"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/handler"

	"github.com/labstack/echo/v4"
)

// LeaveHandler 使用者離開案件；owner 不可離開
// @Summary     離開案件
// @Tags        participations
// @Param       projectId path int true "案件 ID"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ProjectParticipations/project/{projectId} [delete]
// @Router      /ProjectParticipations/leave/{projectId} [delete]
func LeaveHandler(svc ParticipationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := handler.CurrentUserID(c)
		if !ok {
			return handler.Unauthorized(c)
		}
		projectID, err := handler.IntParam(c, "projectId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}

		removed, err := svc.Leave(c.Request().Context(), projectID, userID)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		if !removed {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "participation not found"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// RemoveParticipantHandler owner 移除參與者，或參與者本人離開
// @Summary     移除參與者
// @Tags        participations
// @Param       projectId path int true "案件 ID"
// @Param       userId    path int true "要移除的使用者 ID"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ProjectParticipations/leave/{projectId}/{userId} [delete]
func RemoveParticipantHandler(svc ParticipationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, ok := handler.CurrentUserID(c)
		if !ok {
			return handler.Unauthorized(c)
		}
		projectID, err := handler.IntParam(c, "projectId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}
		targetID, err := handler.IntParam(c, "userId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}

		removed, err := svc.RemoveParticipant(c.Request().Context(), projectID, targetID, callerID)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		if !removed {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "participation not found"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
