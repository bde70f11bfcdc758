package view

import (
	"context"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/Eursukkul/event-portal/internal/service"
)

type AddEventForm struct {
	Draft models.EventInput
	Error string
}

func NewAddEventForm() *AddEventForm {
	return &AddEventForm{}
}

// Settle reports whether the caller should navigate to the list. A failure
// keeps the draft for resubmission.
func (f *AddEventForm) Settle(ctx context.Context, created *models.Event, err error) bool {
	if stale(ctx) {
		return false
	}
	if err != nil {
		f.Error = "Error: " + service.Describe(err, "Failed to create event")
		return false
	}
	f.Draft = models.EventInput{}
	return true
}
