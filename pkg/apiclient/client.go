package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const maxErrorBody = 1 << 20

// Observer receives one call per finished request.
type Observer func(operation, outcome string, elapsed time.Duration)

type Client struct {
	baseURL  string
	http     *http.Client
	timeout  time.Duration
	observer Observer
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// New builds a client for the API rooted at baseURL. A positive timeout
// bounds every call in addition to the caller's context.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes a single round trip.
type Request struct {
	Operation string
	Method    string
	Path      string
	Body      any
	// Fallback is the message used when a failed response carries none.
	Fallback string
}

type messageBody struct {
	Message string `json:"message"`
}

// Do performs the request and decodes a successful JSON response into out
// (when out is non-nil and the body is not empty).
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if c.observer != nil {
			c.observer(r.Operation, outcome, time.Since(start))
		}
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			outcome = "encode_error"
			return fmt.Errorf("marshal %s body: %w", r.Operation, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.baseURL+r.Path, body)
	if err != nil {
		outcome = "encode_error"
		return fmt.Errorf("build %s request: %w", r.Operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = "transport_error"
		slog.Warn("upstream request failed", "operation", r.Operation, "method", r.Method, "path", r.Path, "error", err)
		return &Error{Kind: KindTransport, Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()

	slog.Debug("upstream response", "operation", r.Operation, "method", r.Method, "path", r.Path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = "status_error"
		msg := r.Fallback
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var mb messageBody
		if json.Unmarshal(raw, &mb) == nil && strings.TrimSpace(mb.Message) != "" {
			msg = mb.Message
		}
		return &Error{Kind: kindForStatus(resp.StatusCode), Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = "transport_error"
		return &Error{Kind: KindTransport, Status: resp.StatusCode, Message: transportMessage(err), Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		outcome = "decode_error"
		return &Error{Kind: KindStatus, Status: resp.StatusCode, Message: "invalid response from event service", Err: err}
	}
	return nil
}

func transportMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "event service did not respond in time"
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	default:
		return "could not reach event service"
	}
}
