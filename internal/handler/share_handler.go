package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Eursukkul/event-portal/internal/calendar"
	"github.com/Eursukkul/event-portal/internal/service"
	"github.com/Eursukkul/event-portal/pkg/apiclient"
	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type ShareHandler struct {
	svc       service.EventService
	publicURL string
	now       func() time.Time
}

func NewShareHandler(svc service.EventService, publicURL string) *ShareHandler {
	return &ShareHandler{svc: svc, publicURL: strings.TrimRight(publicURL, "/"), now: time.Now}
}

func (h *ShareHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/event/:id/calendar.ics", h.Calendar)
	e.GET("/event/:id/qr.png", h.QRCode)
}

func (h *ShareHandler) Calendar(c echo.Context) error {
	id := c.Param("id")
	event, err := h.svc.GetEvent(c.Request().Context(), id)
	if err != nil {
		if apiclient.IsKind(err, apiclient.KindTransport) {
			return echo.NewHTTPError(http.StatusBadGateway, service.Describe(err, "could not reach event service"))
		}
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}

	data, err := calendar.Encode(event, h.now())
	if err != nil {
		if errors.Is(err, calendar.ErrUndated) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "This event has no calendar date")
		}
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "event-"+id+".ics"))
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", data)
}

// QRCode encodes the public link to the event page. It does not contact the
// events API.
func (h *ShareHandler) QRCode(c echo.Context) error {
	link := h.publicURL + "/event/" + url.PathEscape(c.Param("id"))
	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		return fmt.Errorf("encode qr code: %w", err)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, "image/png", png)
}
