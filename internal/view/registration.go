package view

import (
	"context"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/Eursukkul/event-portal/internal/service"
	"github.com/google/uuid"
)

type RegistrationForm struct {
	EventID string
	// FormID identifies this rendered instance across its submissions.
	FormID     string
	Draft      models.Attendee
	Submitting bool
	Submitted  *models.Attendee
	Error      string
}

func NewRegistrationForm(eventID string) *RegistrationForm {
	return &RegistrationForm{EventID: eventID, FormID: uuid.NewString()}
}

// ResumeRegistrationForm rebuilds a posted form instance.
func ResumeRegistrationForm(eventID, formID string, draft models.Attendee) *RegistrationForm {
	if formID == "" {
		formID = uuid.NewString()
	}
	return &RegistrationForm{EventID: eventID, FormID: formID, Draft: draft}
}

func (f *RegistrationForm) Begin() {
	f.Submitting = true
	f.Error = ""
}

// Settle records the outcome. On success the confirmation shows the values
// that were sent, whatever the server answered.
func (f *RegistrationForm) Settle(ctx context.Context, err error) {
	if stale(ctx) || !f.Submitting {
		return
	}
	f.Submitting = false
	if err != nil {
		f.Error = service.Describe(err, "Something went wrong")
		return
	}
	sent := f.Draft
	f.Submitted = &sent
	f.Draft = models.Attendee{}
}

func (f *RegistrationForm) Confirmed() bool {
	return f.Submitted != nil
}

func (f *RegistrationForm) SubmitLabel() string {
	if f.Submitting {
		return "Registering..."
	}
	return "Register"
}
