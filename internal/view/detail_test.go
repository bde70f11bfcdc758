package view

import (
	"context"
	"testing"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/Eursukkul/event-portal/pkg/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetched() *models.Event {
	return &models.Event{
		ID:          "1",
		Title:       "Golang Meetup",
		Description: "Talks",
		Date:        "2026-03-14",
		Location:    "Bangkok",
		ContactInfo: "0812345678",
	}
}

func readyDetail(t *testing.T) *DetailView {
	t.Helper()
	v := NewDetailView("1")
	v.Settle(context.Background(), fetched(), nil)
	require.Equal(t, StatusReady, v.Status)
	return v
}

func TestDetailView_Ready(t *testing.T) {
	v := readyDetail(t)

	assert.Equal(t, ModeView, v.Mode)
	assert.Equal(t, *fetched(), v.Event)
	assert.Equal(t, fetched().Input(), v.Draft)
	require.NotNil(t, v.Registration)
	assert.Equal(t, "1", v.Registration.EventID)
	assert.NotEmpty(t, v.Registration.FormID)
}

func TestDetailView_NotFound(t *testing.T) {
	v := NewDetailView("1")

	v.Settle(context.Background(), nil, &apiclient.Error{Kind: apiclient.KindNotFound, Status: 404, Message: "gone"})

	assert.Equal(t, StatusError, v.Status)
	assert.Equal(t, "Event not found", v.Error)
}

func TestDetailView_AnyRejectionIsNotFound(t *testing.T) {
	v := NewDetailView("1")

	v.Settle(context.Background(), nil, &apiclient.Error{Kind: apiclient.KindStatus, Status: 500})

	assert.Equal(t, "Event not found", v.Error)
}

func TestDetailView_DraftIsIndependentOfDisplayCopy(t *testing.T) {
	v := readyDetail(t)
	v.BeginEdit()

	draft := v.Draft
	draft.Title = "Changed"
	v.SetDraft(draft)

	assert.Equal(t, ModeEdit, v.Mode)
	assert.Equal(t, "Golang Meetup", v.Event.Title)
}

func TestDetailView_CancelEditRestoresDisplay(t *testing.T) {
	v := readyDetail(t)
	before := v.Event
	v.BeginEdit()
	v.SetDraft(models.EventInput{Title: "Changed", Date: "2020-01-01", Location: "Elsewhere"})

	v.CancelEdit()

	assert.Equal(t, ModeView, v.Mode)
	assert.Equal(t, before, v.Event)
	assert.Equal(t, before.Input(), v.Draft)
}

func TestDetailView_UpdateSuccessAdoptsServerCopy(t *testing.T) {
	v := readyDetail(t)
	v.BeginEdit()
	v.SetDraft(models.EventInput{Title: "Mine", Date: "2026-03-15", Location: "Bangkok"})

	server := &models.Event{ID: "1", Title: "Server Title", Date: "2026-03-15", Location: "Bangkok"}
	v.ApplyUpdate(context.Background(), server, nil)

	assert.Equal(t, ModeView, v.Mode)
	assert.Equal(t, "Server Title", v.Event.Title)
	assert.Equal(t, "Event updated successfully", v.Notice)
	assert.Empty(t, v.Alert)
}

func TestDetailView_UpdateFailureKeepsDraft(t *testing.T) {
	v := readyDetail(t)
	v.BeginEdit()
	draft := models.EventInput{Title: "Mine", Description: "new text", Date: "2026-03-15", Location: "Chiang Mai", ContactInfo: "x"}
	v.SetDraft(draft)

	v.ApplyUpdate(context.Background(), nil, &apiclient.Error{Kind: apiclient.KindStatus, Status: 400, Message: "Invalid date"})

	assert.Equal(t, ModeEdit, v.Mode)
	assert.Equal(t, draft, v.Draft)
	assert.Equal(t, "Golang Meetup", v.Event.Title)
	assert.Equal(t, "Error updating event: Invalid date", v.Alert)
}

func TestDetailView_DeleteSuccessNavigates(t *testing.T) {
	v := readyDetail(t)

	assert.True(t, v.ApplyDelete(context.Background(), nil))
}

func TestDetailView_DeleteFailureKeepsEvent(t *testing.T) {
	v := readyDetail(t)

	navigate := v.ApplyDelete(context.Background(), &apiclient.Error{Kind: apiclient.KindStatus, Status: 500, Message: "Delete failed"})

	assert.False(t, navigate)
	assert.Equal(t, StatusReady, v.Status)
	assert.Equal(t, *fetched(), v.Event)
	assert.Equal(t, "Error deleting event: Delete failed", v.Alert)
}

func TestDetailView_RestoreFromSnapshot(t *testing.T) {
	v := NewDetailView("1")
	snap := *fetched()
	snap.ID = ""

	v.Restore(snap)

	assert.Equal(t, StatusReady, v.Status)
	assert.Equal(t, "1", v.Event.ID)
}

func TestDetailView_BeginEditRequiresReady(t *testing.T) {
	v := NewDetailView("1")

	v.BeginEdit()

	assert.Equal(t, ModeView, v.Mode)
}

func TestDetailView_StaleUpdateIgnored(t *testing.T) {
	v := readyDetail(t)
	v.BeginEdit()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v.ApplyUpdate(ctx, &models.Event{ID: "1", Title: "late"}, nil)

	assert.Equal(t, ModeEdit, v.Mode)
	assert.Equal(t, "Golang Meetup", v.Event.Title)
}
