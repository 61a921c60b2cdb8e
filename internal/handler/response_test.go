package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance-hub/internal/middleware"
	"freelance-hub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrNotProjectOwner, http.StatusForbidden},
		{service.ErrRemoveForbidden, http.StatusForbidden},
		{service.ErrProjectNotFound, http.StatusNotFound},
		{service.ErrProjectNotFoundOrDenied, http.StatusNotFound},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrUserNotFound, http.StatusUnauthorized},
		{service.ErrNoVacancies, http.StatusBadRequest},
		{service.ErrOwnerCannotLeave, http.StatusBadRequest},
		{&service.Error{Kind: service.ErrValidation, Message: "bad"}, http.StatusBadRequest},
		{&service.Error{Kind: service.ErrConflict, Message: "dup"}, http.StatusBadRequest},
		{fmt.Errorf("tx: %w", service.ErrAlreadyParticipant), http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, StatusOf(tc.err), tc.err.Error())
	}
}

func TestServiceErrorHidesInternalMessage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, ServiceError(c, errors.New("pq: password authentication failed")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "password")
	require.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestIntParam(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("projectId")

	for _, bad := range []string{"", "abc", "0", "-3"} {
		c.SetParamValues(bad)
		_, err := IntParam(c, "projectId")
		require.Error(t, err, bad)
	}
	c.SetParamValues("42")
	v, err := IntParam(c, "projectId")
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestCurrentUserID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, ok := CurrentUserID(c)
	require.False(t, ok)

	c.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 8})
	id, ok := CurrentUserID(c)
	require.True(t, ok)
	require.Equal(t, 8, id)
}
