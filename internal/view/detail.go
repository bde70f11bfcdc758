package view

import (
	"context"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/Eursukkul/event-portal/internal/service"
)

type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

func (m Mode) Editing() bool {
	return m == ModeEdit
}

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

type DetailView struct {
	ID     string
	Status Status
	Error  string
	Mode   Mode

	// Event is the committed copy on display; Draft is what the edit form
	// is bound to.
	Event models.Event
	Draft models.EventInput

	Notice       string
	Alert        string
	Registration *RegistrationForm
}

func NewDetailView(id string) *DetailView {
	return &DetailView{
		ID:           id,
		Status:       StatusLoading,
		Registration: NewRegistrationForm(id),
	}
}

func (v *DetailView) Settle(ctx context.Context, event *models.Event, err error) {
	if stale(ctx) || v.Status != StatusLoading {
		return
	}
	if err != nil || event == nil {
		v.Status = StatusError
		v.Error = fetchError(err, func(int) string { return "Event not found" })
		return
	}
	v.ready(*event)
}

// Restore makes the view ready from a snapshot of the display copy without
// asking the server again.
func (v *DetailView) Restore(snapshot models.Event) {
	if snapshot.ID == "" {
		snapshot.ID = v.ID
	}
	v.ready(snapshot)
}

func (v *DetailView) ready(event models.Event) {
	v.Event = event
	v.Draft = event.Input()
	v.Status = StatusReady
	v.Error = ""
}

func (v *DetailView) BeginEdit() {
	if v.Status != StatusReady {
		return
	}
	v.Mode = ModeEdit
	v.Draft = v.Event.Input()
}

func (v *DetailView) SetDraft(in models.EventInput) {
	v.Draft = in
}

// CancelEdit drops the draft and goes back to view mode.
func (v *DetailView) CancelEdit() {
	v.Mode = ModeView
	v.Draft = v.Event.Input()
	v.Alert = ""
}

// ApplyUpdate settles a save. Success adopts the server's representation;
// failure stays in edit mode with the draft untouched.
func (v *DetailView) ApplyUpdate(ctx context.Context, updated *models.Event, err error) {
	if stale(ctx) {
		return
	}
	if err != nil {
		v.Mode = ModeEdit
		v.Alert = "Error updating event: " + service.Describe(err, "Update failed")
		return
	}
	if updated != nil {
		if updated.ID == "" {
			updated.ID = v.ID
		}
		v.Event = *updated
	}
	v.Draft = v.Event.Input()
	v.Mode = ModeView
	v.Alert = ""
	v.Notice = "Event updated successfully"
}

// ApplyDelete reports whether the caller should navigate to the list.
func (v *DetailView) ApplyDelete(ctx context.Context, err error) bool {
	if stale(ctx) {
		return false
	}
	if err != nil {
		v.Mode = ModeView
		v.Alert = "Error deleting event: " + service.Describe(err, "Delete failed")
		return false
	}
	return true
}
