package repository

import (
	"context"
	"net/http"

	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/Eursukkul/event-portal/pkg/apiclient"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg models.Registration) error
}

type registrationRepository struct {
	api *apiclient.Client
}

func NewRegistrationRepository(api *apiclient.Client) RegistrationRepository {
	return &registrationRepository{api: api}
}

// Create posts the registration. The response body is drained and ignored.
func (r *registrationRepository) Create(ctx context.Context, reg models.Registration) error {
	return r.api.Do(ctx, apiclient.Request{
		Operation: "register",
		Method:    http.MethodPost,
		Path:      "/api/register",
		Body:      reg,
		Fallback:  "Registration failed",
	}, nil)
}
