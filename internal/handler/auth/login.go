// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/handler"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Username/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Username 與 Password 進行驗證，回傳 7 天有效的存取令牌與使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /Auth/login [post]
func LoginHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "無效的請求資料: %v", err)
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "%s", err.Error())
		}

		res, err := svc.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.AuthResponse{
			Token: res.Token,
			User:  dto.NewUserResponse(res.User),
		})
	}
}
