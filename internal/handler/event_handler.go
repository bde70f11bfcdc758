package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/event-portal/internal/dto"
	"github.com/Eursukkul/event-portal/internal/service"
	"github.com/Eursukkul/event-portal/internal/view"
	"github.com/Eursukkul/event-portal/pkg/apiclient"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.ListEvents)
	e.GET("/add", h.NewEvent)
	e.POST("/add", h.CreateEvent)
	e.GET("/event/:id", h.GetEvent)
	e.POST("/event/:id", h.EditEvent)
	e.GET("/event/:id/delete", h.ConfirmDelete)
	e.POST("/event/:id/delete", h.DeleteEvent)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()
	v := view.NewListView(c.QueryParam("notice"))

	events, err := h.svc.ListEvents(ctx)
	v.Settle(ctx, events, err)
	if v.Status.IsLoading() {
		return ctx.Err()
	}

	code := http.StatusOK
	if v.Status.IsError() {
		code = http.StatusBadGateway
	}
	return c.Render(code, "list", v)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	v, code, err := h.load(c)
	if err != nil {
		return err
	}
	if c.QueryParam("mode") == view.ModeEdit.String() {
		v.BeginEdit()
	}
	return c.Render(code, "detail", v)
}

// EditEvent handles the edit form: save issues the replace-update, cancel
// restores the display copy from the posted snapshot.
func (h *EventHandler) EditEvent(c echo.Context) error {
	var req dto.EditEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	v := view.NewDetailView(id)
	v.Restore(req.Snapshot.Event(id))

	if req.Action == dto.ActionCancel {
		v.CancelEdit()
		return c.Render(http.StatusOK, "detail", v)
	}

	v.BeginEdit()
	v.SetDraft(req.Input())
	updated, err := h.svc.UpdateEvent(ctx, id, v.Draft)
	v.ApplyUpdate(ctx, updated, err)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return c.Render(writeFailureCode(err), "detail", v)
	}
	return c.Render(http.StatusOK, "detail", v)
}

func (h *EventHandler) ConfirmDelete(c echo.Context) error {
	v, code, err := h.load(c)
	if err != nil {
		return err
	}
	return c.Render(code, "confirm_delete", v)
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	var req dto.DeleteEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	v := view.NewDetailView(id)
	v.Restore(req.Snapshot.Event(id))

	err := h.svc.DeleteEvent(ctx, id)
	if v.ApplyDelete(ctx, err) {
		return c.Redirect(http.StatusSeeOther, "/?notice="+view.NoticeDeleted)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return c.Render(writeFailureCode(err), "detail", v)
}

func (h *EventHandler) NewEvent(c echo.Context) error {
	return c.Render(http.StatusOK, "add", view.NewAddEventForm())
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.EventForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	ctx := c.Request().Context()
	f := view.NewAddEventForm()
	f.Draft = req.Input()

	created, err := h.svc.CreateEvent(ctx, f.Draft)
	if f.Settle(ctx, created, err) {
		return c.Redirect(http.StatusSeeOther, "/?notice="+view.NoticeCreated)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return c.Render(writeFailureCode(err), "add", f)
}

// load fetches the event named by the route and settles a detail view. The
// returned code is the status to render it with.
func (h *EventHandler) load(c echo.Context) (*view.DetailView, int, error) {
	ctx := c.Request().Context()
	v := view.NewDetailView(c.Param("id"))

	event, err := h.svc.GetEvent(ctx, v.ID)
	v.Settle(ctx, event, err)
	if v.Status.IsLoading() {
		return nil, 0, ctx.Err()
	}
	return v, fetchCode(err), nil
}

// fetchCode: every rejected single-event read is shown as not found.
func fetchCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case apiclient.IsKind(err, apiclient.KindTransport):
		return http.StatusBadGateway
	default:
		return http.StatusNotFound
	}
}

// writeFailureCode picks the status for a page re-rendered after a failed
// write.
func writeFailureCode(err error) int {
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) {
		return http.StatusUnprocessableEntity
	}
	switch {
	case apiErr.Kind == apiclient.KindTransport:
		return http.StatusBadGateway
	case apiErr.Kind == apiclient.KindNotFound:
		return http.StatusNotFound
	case apiErr.Status >= 400 && apiErr.Status < 500:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
