package handler

import (
	"net/http"

	"github.com/Eursukkul/event-portal/internal/dto"
	"github.com/Eursukkul/event-portal/internal/metrics"
	"github.com/Eursukkul/event-portal/internal/service"
	"github.com/Eursukkul/event-portal/internal/view"
	"github.com/labstack/echo/v4"
)

type RegistrationHandler struct {
	svc service.RegistrationService
}

func NewRegistrationHandler(svc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

func (h *RegistrationHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/event/:id/register", h.Register)
}

// Register submits the registration form and re-renders the detail page
// around it from the posted snapshot.
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req dto.RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	v := view.NewDetailView(id)
	v.Restore(req.Snapshot.Event(id))

	form := view.ResumeRegistrationForm(id, req.FormID, req.Attendee())
	v.Registration = form

	form.Begin()
	err := h.svc.Register(ctx, form.FormID, id, form.Draft)
	metrics.CountRegistration(err)
	form.Settle(ctx, err)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err != nil {
		return c.Render(writeFailureCode(err), "detail", v)
	}
	return c.Render(http.StatusCreated, "detail", v)
}
