package calendar

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/emersion/go-ical"
)

const productID = "-//Eursukkul//event-portal//EN"

var ErrUndated = errors.New("event date is not a calendar date")

// Encode renders ev as an iCalendar document with a single all-day VEVENT.
// stamp becomes DTSTAMP.
func Encode(ev *models.Event, stamp time.Time) ([]byte, error) {
	start, ok := models.ParseDate(ev.Date)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUndated, ev.Date)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, ev.ID)
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	vevent.Props.SetDate(ical.PropDateTimeStart, start)
	vevent.Props.SetText(ical.PropSummary, ev.Title)
	vevent.Props.SetText(ical.PropLocation, ev.Location)
	if ev.Description != "" {
		vevent.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.ContactInfo != "" {
		vevent.Props.SetText(ical.PropContact, ev.ContactInfo)
	}
	cal.Children = append(cal.Children, vevent.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}
