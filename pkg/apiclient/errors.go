package apiclient

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// KindTransport: the request never produced a response.
	KindTransport Kind = iota + 1
	// KindStatus: the server answered with a non-success status.
	KindStatus
	// KindNotFound: the server answered 404.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is returned by Client for every failed call. Message is always
// human readable: the server's "message" field when there is one, otherwise
// the generic text supplied with the request.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func kindForStatus(status int) Kind {
	if status == http.StatusNotFound {
		return KindNotFound
	}
	return KindStatus
}

// Message extracts the human readable message from err, or returns fallback
// when err did not come from the client.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// StatusOf returns the upstream HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
