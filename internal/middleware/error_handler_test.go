package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eursukkul/event-portal/web"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler_RendersHTTPError(t *testing.T) {
	e := echo.New()
	e.Renderer = web.MustNewRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/event/1/calendar.ics", nil), rec)

	ErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Event not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Event not found")
}

func TestErrorHandler_HidesInternalErrors(t *testing.T) {
	e := echo.New()
	e.Renderer = web.MustNewRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	ErrorHandler(errors.New("dial tcp 10.0.0.1: secret detail"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
}

func TestErrorHandler_WithoutRenderer(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	ErrorHandler(echo.NewHTTPError(http.StatusBadGateway, "upstream down"), c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "upstream down", rec.Body.String())
}

func TestErrorHandler_IgnoresCancelled(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	ErrorHandler(context.Canceled, c)

	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}

func TestJSONErrorHandler(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/events", nil), rec)

	JSONErrorHandler(echo.NewHTTPError(http.StatusBadRequest, "title is required"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "title is required", body["message"])
}
