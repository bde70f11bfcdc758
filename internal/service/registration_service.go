package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/Eursukkul/event-portal/internal/repository"
)

type RegistrationService interface {
	// Register submits the attendee for eventID. formID identifies the
	// rendered form instance; while one submission for a formID is in
	// flight, others fail with ErrDuplicateSubmission.
	Register(ctx context.Context, formID, eventID string, attendee models.Attendee) error
}

type registrationService struct {
	repo repository.RegistrationRepository

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewRegistrationService(repo repository.RegistrationRepository) RegistrationService {
	return &registrationService{
		repo:     repo,
		inflight: make(map[string]struct{}),
	}
}

func (s *registrationService) Register(ctx context.Context, formID, eventID string, attendee models.Attendee) error {
	missing := attendee.Missing()
	if strings.TrimSpace(eventID) == "" {
		missing = append(missing, "eventId")
	}
	if len(missing) > 0 {
		return missingErr(missing)
	}

	if formID != "" {
		if !s.acquire(formID) {
			return ErrDuplicateSubmission
		}
		defer s.release(formID)
	}

	if err := s.repo.Create(ctx, attendee.For(eventID)); err != nil {
		return fmt.Errorf("register for event %s: %w", eventID, err)
	}
	return nil
}

func (s *registrationService) acquire(formID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[formID]; busy {
		return false
	}
	s.inflight[formID] = struct{}{}
	return true
}

func (s *registrationService) release(formID string) {
	s.mu.Lock()
	delete(s.inflight, formID)
	s.mu.Unlock()
}
