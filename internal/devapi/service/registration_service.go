package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Eursukkul/event-portal/internal/devapi/repository"
	"github.com/Eursukkul/event-portal/internal/models"
)

type RegistrationCreated struct {
	models.Registration
	Attendees int64 `json:"attendees"`
}

type RegistrationService interface {
	Register(ctx context.Context, reg *models.Registration) error
}

type registrationService struct {
	regs      repository.RegistrationRepository
	events    repository.EventRepository
	publisher Publisher
}

func NewRegistrationService(regs repository.RegistrationRepository, events repository.EventRepository, publisher Publisher) RegistrationService {
	return &registrationService{regs: regs, events: events, publisher: publisher}
}

func (s *registrationService) Register(ctx context.Context, reg *models.Registration) error {
	missing := models.Attendee{Name: reg.Name, Email: reg.Email, Phone: reg.Phone}.Missing()
	if strings.TrimSpace(reg.EventID) == "" {
		missing = append(missing, "eventId")
	}
	if len(missing) > 0 {
		return missingErr(missing)
	}

	if _, err := s.events.FindByID(ctx, reg.EventID); err != nil {
		return notFound(err)
	}
	if err := s.regs.Create(ctx, reg); err != nil {
		return fmt.Errorf("create registration: %w", err)
	}

	if s.publisher != nil {
		count, err := s.regs.CountByEvent(ctx, reg.EventID)
		if err != nil {
			count = -1
		}
		publish(ctx, s.publisher, RoutingRegistrationCreated, RegistrationCreated{Registration: *reg, Attendees: count})
	}
	return nil
}
