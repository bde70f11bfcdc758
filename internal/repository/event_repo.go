package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/Eursukkul/event-portal/pkg/apiclient"
)

type EventRepository interface {
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, in models.EventInput) (*models.Event, error)
	Update(ctx context.Context, id string, in models.EventInput) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventRepository struct {
	api *apiclient.Client
}

func NewEventRepository(api *apiclient.Client) EventRepository {
	return &eventRepository{api: api}
}

func eventPath(id string) string {
	return "/api/events/" + url.PathEscape(id)
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.api.Do(ctx, apiclient.Request{
		Operation: "list_events",
		Method:    http.MethodGet,
		Path:      "/api/events",
		Fallback:  "Failed to load events",
	}, &events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.api.Do(ctx, apiclient.Request{
		Operation: "get_event",
		Method:    http.MethodGet,
		Path:      eventPath(id),
		Fallback:  "Event not found",
	}, &event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, in models.EventInput) (*models.Event, error) {
	var event models.Event
	err := r.api.Do(ctx, apiclient.Request{
		Operation: "create_event",
		Method:    http.MethodPost,
		Path:      "/api/events",
		Body:      in,
		Fallback:  "Failed to create event",
	}, &event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, id string, in models.EventInput) (*models.Event, error) {
	var event models.Event
	err := r.api.Do(ctx, apiclient.Request{
		Operation: "update_event",
		Method:    http.MethodPut,
		Path:      eventPath(id),
		Body:      in,
		Fallback:  "Update failed",
	}, &event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.api.Do(ctx, apiclient.Request{
		Operation: "delete_event",
		Method:    http.MethodDelete,
		Path:      eventPath(id),
		Fallback:  "Delete failed",
	}, nil)
}
