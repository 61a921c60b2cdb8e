package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"freelance-hub/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// TokenVerifier 由 *service.Authenticator 實作
type TokenVerifier interface {
	VerifyAccessToken(tokenString string) (*service.CustomClaims, error)
}

func extractClaims(c echo.Context, verifier TokenVerifier) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := verifier.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer token，成功後把 claims 放進 context
func RequireAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, verifier)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext 取出 RequireAuth 放入的 claims
func ClaimsFromContext(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	if !ok || claims == nil || claims.UserID <= 0 {
		return nil, false
	}
	return claims, true
}
