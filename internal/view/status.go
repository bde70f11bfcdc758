// Package view holds the per-page state containers. Each container starts in
// StatusLoading and settles exactly once into StatusError or StatusReady; a
// result that arrives after the page's context is done is ignored.
package view

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Eursukkul/event-portal/internal/service"
	"github.com/Eursukkul/event-portal/pkg/apiclient"
)

type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) IsLoading() bool { return s == StatusLoading }
func (s Status) IsError() bool { return s == StatusError }
func (s Status) IsReady() bool { return s == StatusReady }

func stale(ctx context.Context) bool {
	return ctx.Err() != nil
}

// fetchError is the message for a failed read: transport failures keep the
// client's message, rejected requests use the status-derived text.
func fetchError(err error, rejected func(status int) string) string {
	if apiclient.IsKind(err, apiclient.KindTransport) {
		return service.Describe(err, "could not reach event service")
	}
	status := apiclient.StatusOf(err)
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return rejected(status)
}
