package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/event-portal/internal/devapi/service"
	"github.com/Eursukkul/event-portal/internal/dto"
	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEvents)
	g.POST("", h.CreateEvent)
	g.GET("/:id", h.GetEvent)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.svc.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req models.EventInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	event, err := h.svc.CreateEvent(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	var req models.EventInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	event, err := h.svc.UpdateEvent(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if err := h.svc.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted"})
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "event not found")
	case errors.Is(err, service.ErrMissingFields):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return internalError(err)
	}
}

// internalError keeps the cause out of the response body; the error handler
// logs it.
func internalError(err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
}
