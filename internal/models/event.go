package models

import (
	"strings"
	"time"
)

type Event struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `gorm:"not null" json:"date"`
	Location    string    `gorm:"not null" json:"location"`
	ContactInfo string    `json:"contactInfo,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// EventInput is the editable field set of an Event.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	ContactInfo string `json:"contactInfo"`
}

func (e *Event) Input() EventInput {
	return EventInput{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		ContactInfo: e.ContactInfo,
	}
}

// Apply copies the input fields onto the event, leaving the id untouched.
func (e *Event) Apply(in EventInput) {
	e.Title = in.Title
	e.Description = in.Description
	e.Date = in.Date
	e.Location = in.Location
	e.ContactInfo = in.ContactInfo
}

// Missing returns the names of required fields that are blank.
func (in EventInput) Missing() []string {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(in.Location) == "" {
		missing = append(missing, "location")
	}
	return missing
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate parses the event's date string into an instant. Plain calendar
// dates are interpreted as midnight UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
