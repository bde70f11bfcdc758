package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/Eursukkul/event-portal/web"
	"github.com/labstack/echo/v4"
)

// --- Mock services ---

type mockEventService struct {
	listFn   func(ctx context.Context) ([]models.Event, error)
	getFn    func(ctx context.Context, id string) (*models.Event, error)
	createFn func(ctx context.Context, in models.EventInput) (*models.Event, error)
	updateFn func(ctx context.Context, id string, in models.EventInput) (*models.Event, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return m.listFn(ctx)
}
func (m *mockEventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return m.getFn(ctx, id)
}
func (m *mockEventService) CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	return m.createFn(ctx, in)
}
func (m *mockEventService) UpdateEvent(ctx context.Context, id string, in models.EventInput) (*models.Event, error) {
	return m.updateFn(ctx, id, in)
}
func (m *mockEventService) DeleteEvent(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockRegistrationService struct {
	registerFn func(ctx context.Context, formID, eventID string, attendee models.Attendee) error
}

func (m *mockRegistrationService) Register(ctx context.Context, formID, eventID string, attendee models.Attendee) error {
	return m.registerFn(ctx, formID, eventID, attendee)
}

// --- Helpers ---

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = web.MustNewRenderer()
	return e
}

func getContext(e *echo.Echo, target string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setParams(c, params)
	return c, rec
}

func postContext(e *echo.Echo, target string, form url.Values, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setParams(c, params)
	return c, rec
}

// setParams takes name/value pairs.
func setParams(c echo.Context, params []string) {
	if len(params) == 0 {
		return
	}
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}

func snapshot(ev models.Event) url.Values {
	return url.Values{
		"snap_title":       {ev.Title},
		"snap_description": {ev.Description},
		"snap_date":        {ev.Date},
		"snap_location":    {ev.Location},
		"snap_contactInfo": {ev.ContactInfo},
	}
}

func sampleEvent() models.Event {
	return models.Event{
		ID:          "e1",
		Title:       "Golang Meetup",
		Description: "Talks and pizza",
		Date:        "2026-03-14",
		Location:    "Bangkok",
		ContactInfo: "0812345678",
	}
}
