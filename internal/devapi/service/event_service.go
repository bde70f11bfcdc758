package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Eursukkul/event-portal/internal/devapi/repository"
	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrMissingFields = errors.New("missing required fields")
)

const (
	RoutingEventCreated        = "event.created"
	RoutingEventUpdated        = "event.updated"
	RoutingEventDeleted        = "event.deleted"
	RoutingRegistrationCreated = "registration.created"
)

// Publisher is satisfied by *rabbitmq.Publisher.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type EventDeleted struct {
	ID                   string `json:"_id"`
	RegistrationsRemoved int64  `json:"registrationsRemoved"`
}

type EventService interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, in models.EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type eventService struct {
	repo      repository.EventRepository
	publisher Publisher
}

// NewEventService builds the service. A nil publisher disables change
// notifications.
func NewEventService(repo repository.EventRepository, publisher Publisher) EventService {
	return &eventService{repo: repo, publisher: publisher}
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	if missing := in.Missing(); len(missing) > 0 {
		return nil, missingErr(missing)
	}

	event := &models.Event{ID: uuid.NewString()}
	event.Apply(in)
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	publish(ctx, s.publisher, RoutingEventCreated, event)
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, in models.EventInput) (*models.Event, error) {
	if missing := in.Missing(); len(missing) > 0 {
		return nil, missingErr(missing)
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	event.Apply(in)
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event %s: %w", id, err)
	}

	publish(ctx, s.publisher, RoutingEventUpdated, event)
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return notFound(err)
	}

	publish(ctx, s.publisher, RoutingEventDeleted, EventDeleted{ID: id, RegistrationsRemoved: removed})
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEventNotFound
	}
	return err
}

func missingErr(fields []string) error {
	return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(fields, ", "))
}

// publish is best effort; a broker failure never fails the write.
func publish(ctx context.Context, p Publisher, key string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, key, payload); err != nil {
		slog.Warn("publish change notification", "routing_key", key, "error", err)
	}
}
