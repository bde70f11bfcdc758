package service

import (
	"errors"

	"github.com/Eursukkul/event-portal/pkg/apiclient"
)

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrDuplicateSubmission = errors.New("a registration from this form is already being submitted")
)

// Describe turns err into the text shown to the visitor.
func Describe(err error, fallback string) string {
	var apiErr *apiclient.Error
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiclient.Message(err, fallback)
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrDuplicateSubmission):
		return err.Error()
	default:
		return fallback
	}
}
