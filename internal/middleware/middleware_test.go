package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freelance-hub/internal/metrics"
	"freelance-hub/internal/model"
	"freelance-hub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractClaims(t *testing.T) {
	auth := service.NewAuthenticator("testsecret", time.Minute)

	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, auth)
	require.Error(t, err)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, auth)
	require.Error(t, err)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, auth)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	// wrong secret
	other, err := service.NewAuthenticator("other", time.Minute).IssueAccessToken(model.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + other)
	_, err = extractClaims(ctx, auth)
	require.Error(t, err)

	// valid token
	tok, err := auth.IssueAccessToken(model.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	ctx, _ = newContext("bearer " + tok)
	claims, err := extractClaims(ctx, auth)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestRequireAuth(t *testing.T) {
	auth := service.NewAuthenticator("secret", time.Minute)
	tok, err := auth.IssueAccessToken(model.User{ID: 2, Username: "bob"})
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(auth)(func(c echo.Context) error {
		called = true
		cl, ok := ClaimsFromContext(c)
		require.True(t, ok)
		require.Equal(t, 2, cl.UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(auth)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestClaimsFromContext(t *testing.T) {
	ctx, _ := newContext("")
	_, ok := ClaimsFromContext(ctx)
	require.False(t, ok)

	ctx.Set(ContextUserKey, &service.CustomClaims{UserID: 0})
	_, ok = ClaimsFromContext(ctx)
	require.False(t, ok)

	ctx.Set(ContextUserKey, &service.CustomClaims{UserID: 5})
	cl, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, 5, cl.UserID)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/api/things/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/api/boom", func(c echo.Context) error { return errors.New("boom") })
	e.GET("/api/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	for _, path := range []string{"/api/things/1", "/api/boom", "/api/ping"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, int64(http.StatusNoContent), entries[0].ContextMap()["status"])
	require.Equal(t, zap.ErrorLevel, entries[1].Level)
	require.Equal(t, int64(http.StatusInternalServerError), entries[1].ContextMap()["status"])
}

func TestMetrics(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/api/things/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/api/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	for _, path := range []string{"/api/things/1", "/api/things/2", "/api/missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/things/:id", "204")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/missing", "404")))
}
