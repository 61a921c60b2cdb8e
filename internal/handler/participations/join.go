// File: internal/handler/participations/join.go
package participations

import (
	"net/http"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/handler"

	"github.com/labstack/echo/v4"
)

// JoinHandler 以 body 指定案件加入，參與者為 token 使用者
// @Summary     加入案件
// @Description 檢查順序：案件存在、公開、尚有名額、尚未參與
// @Tags        participations
// @Accept      json
// @Produce     json
// @Param       body body     dto.ParticipationRequest true "案件"
// @Success     201  {object} dto.ParticipationResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ProjectParticipations [post]
func JoinHandler(svc ParticipationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := handler.CurrentUserID(c)
		if !ok {
			return handler.Unauthorized(c)
		}

		var req dto.ParticipationRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "無效的請求資料: %v", err)
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}
		return join(c, svc, req.ProjectID, userID)
	}
}

// JoinByPathHandler 以路徑指定案件加入
// @Summary     加入案件 (路徑參數)
// @Tags        participations
// @Produce     json
// @Param       projectId path     int true "案件 ID"
// @Success     201       {object} dto.ParticipationResponse
// @Failure     400       {object} dto.HTTPError
// @Failure     401       {object} dto.HTTPError
// @Failure     404       {object} dto.HTTPError
// @Failure     500       {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ProjectParticipations/join/{projectId} [post]
func JoinByPathHandler(svc ParticipationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := handler.CurrentUserID(c)
		if !ok {
			return handler.Unauthorized(c)
		}
		projectID, err := handler.IntParam(c, "projectId")
		if err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}
		return join(c, svc, projectID, userID)
	}
}

func join(c echo.Context, svc ParticipationService, projectID, userID int) error {
	p, err := svc.Join(c.Request().Context(), projectID, userID)
	if err != nil {
		return handler.ServiceError(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse("participations.user", userID))
	return c.JSON(http.StatusCreated, dto.NewParticipationResponse(*p))
}
