package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Eursukkul/event-portal/internal/middleware"
	"github.com/Eursukkul/event-portal/internal/repository"
	"github.com/Eursukkul/event-portal/internal/service"
	"github.com/Eursukkul/event-portal/pkg/apiclient"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPortal wires the real client, repositories, services and handlers to an
// upstream played by api.
func newPortal(t *testing.T, api http.HandlerFunc) *echo.Echo {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := apiclient.New(srv.URL, 0)
	events := service.NewEventService(repository.NewEventRepository(client))
	regs := service.NewRegistrationService(repository.NewRegistrationRepository(client))

	e := newEcho()
	e.HTTPErrorHandler = middleware.ErrorHandler
	NewEventHandler(events).RegisterRoutes(e)
	NewRegistrationHandler(regs).RegisterRoutes(e)
	NewShareHandler(events, "http://portal.test").RegisterRoutes(e)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestScenario_ListRendersNewestFirst(t *testing.T) {
	e := newPortal(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"1","title":"A","date":"2024-01-01","location":"X"},{"_id":"2","title":"B","date":"2024-06-01","location":"Y"}]`))
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	b := strings.Index(body, `href="/event/2"`)
	a := strings.Index(body, `href="/event/1"`)
	require.NotEqual(t, -1, a)
	require.NotEqual(t, -1, b)
	assert.Less(t, b, a)
}

func TestScenario_DetailNotFoundShowsError(t *testing.T) {
	e := newPortal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/1", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/event/1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Event not found")
	assert.NotContains(t, body, "Loading")
}

func TestScenario_RegistrationEchoesSubmittedValues(t *testing.T) {
	var sent map[string]string
	e := newPortal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name":"Someone Else","email":"other@x.com","phone":"999"}`))
	})

	form := url.Values{
		"form_id":    {"f-1"},
		"name":       {"J"},
		"email":      {"j@x.com"},
		"phone":      {"123"},
		"snap_title": {"Meetup"},
	}
	req := httptest.NewRequest(http.MethodPost, "/event/1/register", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := serve(e, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]string{"name": "J", "email": "j@x.com", "phone": "123", "eventId": "1"}, sent)
	body := rec.Body.String()
	assert.Contains(t, body, "<strong>Name:</strong> J<br>")
	assert.Contains(t, body, "<strong>Email:</strong> j@x.com<br>")
	assert.Contains(t, body, "<strong>Phone:</strong> 123")
	assert.NotContains(t, body, "other@x.com")
}

func TestScenario_UpdateFailureUsesServerMessage(t *testing.T) {
	e := newPortal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Location is too long"}`))
	})

	form := url.Values{
		"action":        {"save"},
		"title":         {"T"},
		"date":          {"2026-01-01"},
		"location":      {"Somewhere"},
		"snap_title":    {"T"},
		"snap_date":     {"2026-01-01"},
		"snap_location": {"Here"},
	}
	req := httptest.NewRequest(http.MethodPost, "/event/1", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := serve(e, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Error updating event: Location is too long")
	assert.Contains(t, body, `value="Somewhere"`)
}

func TestScenario_UnknownRouteRendersErrorPage(t *testing.T) {
	e := newPortal(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Back to Events")
}
