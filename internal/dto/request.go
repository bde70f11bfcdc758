package dto

import "github.com/Eursukkul/event-portal/internal/models"

// EventForm is the event field set posted by the add and edit forms.
type EventForm struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Date        string `form:"date" json:"date"`
	Location    string `form:"location" json:"location"`
	ContactInfo string `form:"contactInfo" json:"contactInfo"`
}

func (f EventForm) Input() models.EventInput {
	return models.EventInput{
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		Location:    f.Location,
		ContactInfo: f.ContactInfo,
	}
}

// SnapshotForm carries the display copy of an event through a form post so
// the detail page can be rebuilt without fetching it again.
type SnapshotForm struct {
	Title       string `form:"snap_title"`
	Description string `form:"snap_description"`
	Date        string `form:"snap_date"`
	Location    string `form:"snap_location"`
	ContactInfo string `form:"snap_contactInfo"`
}

func (s SnapshotForm) Event(id string) models.Event {
	return models.Event{
		ID:          id,
		Title:       s.Title,
		Description: s.Description,
		Date:        s.Date,
		Location:    s.Location,
		ContactInfo: s.ContactInfo,
	}
}

const (
	ActionSave   = "save"
	ActionCancel = "cancel"
)

type EditEventRequest struct {
	EventForm
	Snapshot SnapshotForm
	Action   string `form:"action"`
}

type RegistrationRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Phone    string `form:"phone" json:"phone"`
	FormID   string `form:"form_id"`
	Snapshot SnapshotForm
}

func (r RegistrationRequest) Attendee() models.Attendee {
	return models.Attendee{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type DeleteEventRequest struct {
	Snapshot SnapshotForm
}
