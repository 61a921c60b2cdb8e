package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"freelance-hub/internal/dto"
	"freelance-hub/internal/middleware"
	"freelance-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// StatusOf 將 service 錯誤轉成 HTTP 狀態碼；端點有特殊對應時自行先判斷
func StatusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrNotProjectOwner), errors.Is(err, service.ErrRemoveForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrPolicy),
		errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// JSONError 回傳 dto.HTTPError；非預期錯誤不外洩內部訊息
func JSONError(c echo.Context, status int, err error) error {
	return c.JSON(status, dto.HTTPError{Message: service.Message(err, http.StatusText(status))})
}

// ServiceError 依 StatusOf 回應
func ServiceError(c echo.Context, err error) error {
	return JSONError(c, StatusOf(err), err)
}

// BadRequest 回傳 400 與指定訊息
func BadRequest(c echo.Context, format string, args ...any) error {
	return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf(format, args...)})
}

// IntParam 解析正整數路徑參數
func IntParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("無效的 %s: %q", name, c.Param(name))
	}
	return v, nil
}

// CurrentUserID 取 token subject；沒有 claims 時直接回 401
func CurrentUserID(c echo.Context) (int, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
}
