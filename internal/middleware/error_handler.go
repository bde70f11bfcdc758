package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Eursukkul/event-portal/internal/dto"
	"github.com/labstack/echo/v4"
)

type errorPage struct {
	Code    int
	Message string
}

// ErrorHandler renders the error page for portal requests. It falls back to
// plain text when no renderer is configured or rendering fails.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if errors.Is(err, context.Canceled) {
		slog.Debug("client went away", "uri", c.Request().RequestURI)
		return
	}

	code, msg := resolve(err)
	if code >= http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request().Method, "uri", c.Request().RequestURI, "status", code, "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if c.Echo().Renderer != nil {
		rerr := c.Render(code, "error", errorPage{Code: code, Message: msg})
		if rerr == nil {
			return
		}
		slog.Error("render error page", "error", rerr)
	}
	_ = c.String(code, msg)
}

// JSONErrorHandler answers with {"message": ...}, the body shape the portal's
// API client reads on failure.
func JSONErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	if code >= http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request().Method, "uri", c.Request().RequestURI, "status", code, "error", err)
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}

func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			return he.Code, m
		}
		return he.Code, http.StatusText(he.Code)
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
