package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/Eursukkul/event-portal/internal/models"
)

const (
	previewLines = 3
	previewRunes = 240
)

type EventCard struct {
	ID       string
	Title    string
	Date     string
	Location string
	Preview  string
}

type ListView struct {
	Status Status
	Error  string
	Events []EventCard
	Notice string
}

func NewListView(noticeCode string) *ListView {
	return &ListView{Status: StatusLoading, Notice: Notice(noticeCode)}
}

// Settle applies the result of the list request. events must already be in
// display order.
func (v *ListView) Settle(ctx context.Context, events []models.Event, err error) {
	if stale(ctx) || v.Status != StatusLoading {
		return
	}
	if err != nil {
		v.Status = StatusError
		v.Error = fetchError(err, func(status int) string {
			return fmt.Sprintf("HTTP %d", status)
		})
		return
	}

	v.Events = make([]EventCard, len(events))
	for i, e := range events {
		v.Events[i] = EventCard{
			ID:       e.ID,
			Title:    e.Title,
			Date:     e.Date,
			Location: e.Location,
			Preview:  Preview(e.Description),
		}
	}
	v.Status = StatusReady
}

func (v *ListView) Empty() bool {
	return v.Status == StatusReady && len(v.Events) == 0
}

// Preview shortens a description to at most three lines and 240 runes.
func Preview(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "No description provided."
	}

	cut := false
	lines := strings.Split(desc, "\n")
	if len(lines) > previewLines {
		lines = lines[:previewLines]
		cut = true
	}
	out := strings.Join(lines, "\n")

	if r := []rune(out); len(r) > previewRunes {
		out = string(r[:previewRunes])
		cut = true
	}
	if cut {
		out = strings.TrimRight(out, " \n\t") + "…"
	}
	return out
}
