// Package api talks to the banter backend over HTTP. All calls are single
// attempt; a failed request surfaces to the caller, who decides what the UI
// rolls back.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/banterhq/banter/internal/errors"
	"github.com/banterhq/banter/internal/logger"
)

const (
	// DefaultTimeout bounds any single API request.
	DefaultTimeout = 30 * time.Second

	// maxResponseSize caps how much of a response body we will read.
	maxResponseSize = 4 * 1024 * 1024
)

// Store is the persistence surface the chat manager needs. The live backend
// implements it; tests substitute a fake.
type Store interface {
	ListSessions(ctx context.Context) ([]Session, error)
	CreateSession(ctx context.Context, title string) (*Session, error)
	DeleteSession(ctx context.Context, id int) error
	ListMessages(ctx context.Context, sessionID int) ([]Message, error)
	SendMessage(ctx context.Context, sessionID int, content, mood string) (*SendResult, error)
	RegenerateTitle(ctx context.Context, sessionID int) (string, error)
}

// Client implements Store against the banter backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ Store = (*Client)(nil)

// NewClient creates a client for the given server. The token may be empty;
// requests will then fail with KindUnauthorized when the server requires auth.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ListSessions fetches the user's sessions, most recently updated first.
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	const op = errors.Op("api.ListSessions")
	var sessions []Session
	if err := c.do(ctx, op, http.MethodGet, "/api/v1/sessions", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateSession creates a new session on the server.
func (c *Client) CreateSession(ctx context.Context, title string) (*Session, error) {
	const op = errors.Op("api.CreateSession")
	var session Session
	if err := c.do(ctx, op, http.MethodPost, "/api/v1/sessions", createSessionRequest{Title: title}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes a session and its messages.
func (c *Client) DeleteSession(ctx context.Context, id int) error {
	const op = errors.Op("api.DeleteSession")
	return c.do(ctx, op, http.MethodDelete, fmt.Sprintf("/api/v1/sessions/%d", id), nil, nil)
}

// ListMessages fetches a session's messages in chronological order.
func (c *Client) ListMessages(ctx context.Context, sessionID int) ([]Message, error) {
	const op = errors.Op("api.ListMessages")
	var messages []Message
	if err := c.do(ctx, op, http.MethodGet, fmt.Sprintf("/api/v1/sessions/%d/messages", sessionID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage posts a user message and returns it with the assistant reply.
func (c *Client) SendMessage(ctx context.Context, sessionID int, content, mood string) (*SendResult, error) {
	const op = errors.Op("api.SendMessage")
	var result SendResult
	path := fmt.Sprintf("/api/v1/sessions/%d/messages", sessionID)
	if err := c.do(ctx, op, http.MethodPost, path, sendMessageRequest{Content: content, Mood: mood}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegenerateTitle asks the server to produce a title from the session's
// first message.
func (c *Client) RegenerateTitle(ctx context.Context, sessionID int) (string, error) {
	const op = errors.Op("api.RegenerateTitle")
	var resp titleResponse
	path := fmt.Sprintf("/api/v1/sessions/%d/title", sessionID)
	if err := c.do(ctx, op, http.MethodPost, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Title, nil
}

// do runs one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, op errors.Op, method, path string, body, out any) error {
	log := logger.WithComponent("api")

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.E(op, errors.KindInvalid, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.E(op, errors.KindInvalid, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.E(op, errors.KindTimeout, err)
		}
		return errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return errors.E(op, errors.KindNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug("api request failed", "method", method, "path", path, "status", resp.StatusCode)
		return c.errorFromResponse(op, resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.E(op, errors.KindAPI, fmt.Errorf("decoding response: %w", err))
		}
	}
	return nil
}

// errorFromResponse maps an HTTP failure to an error Kind the UI can act on.
func (c *Client) errorFromResponse(op errors.Op, status int, body []byte) error {
	var apiErr errorResponse
	_ = json.Unmarshal(body, &apiErr)

	msg := apiErr.message()
	if msg == "" {
		msg = http.StatusText(status)
	}

	var kind errors.Kind
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = errors.KindUnauthorized
	case status == http.StatusNotFound:
		kind = errors.KindNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = errors.KindInvalid
	case status >= 500:
		kind = errors.KindAPI
	default:
		kind = errors.KindAPI
	}

	return errors.E(op, kind, fmt.Errorf("server returned %d: %s", status, msg))
}
