// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/handler"
	"freelance-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立帳號並直接登入
// @Summary     註冊使用者
// @Description 建立帳號；username 或 email 重複時回傳 400
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.RegisterRequest true "註冊資料"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /Auth/register [post]
func RegisterHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "無效的請求資料: %v", err)
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}

		res, err := svc.Register(c.Request().Context(), service.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.AuthResponse{
			Token: res.Token,
			User:  dto.NewUserResponse(res.User),
		})
	}
}
