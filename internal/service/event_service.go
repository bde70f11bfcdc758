package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/Eursukkul/event-portal/internal/repository"
)

type EventService interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, in models.EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type eventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

// ListEvents returns the events newest first.
func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return SortByDateDesc(events), nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	if missing := in.Missing(); len(missing) > 0 {
		return nil, missingErr(missing)
	}
	event, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// UpdateEvent replaces every editable field of the event with in.
func (s *eventService) UpdateEvent(ctx context.Context, id string, in models.EventInput) (*models.Event, error) {
	if missing := in.Missing(); len(missing) > 0 {
		return nil, missingErr(missing)
	}
	event, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update event %s: %w", id, err)
	}
	return event, nil
}

// DeleteEvent removes the event. The server is expected to drop the event's
// registrations along with it.
func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	return nil
}

func missingErr(fields []string) error {
	return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(fields, ", "))
}

// SortByDateDesc returns a copy of events ordered by date, most recent
// first. Equal dates keep their input order; unparseable dates go last.
func SortByDateDesc(events []models.Event) []models.Event {
	type keyed struct {
		event models.Event
		at    time.Time
		ok    bool
	}
	ks := make([]keyed, len(events))
	for i, e := range events {
		t, ok := models.ParseDate(e.Date)
		ks[i] = keyed{event: e, at: t, ok: ok}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].ok != ks[j].ok {
			return ks[i].ok
		}
		return ks[i].at.After(ks[j].at)
	})

	sorted := make([]models.Event, len(ks))
	for i, k := range ks {
		sorted[i] = k.event
	}
	return sorted
}
