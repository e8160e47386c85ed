// internal/crmapi/client.go

// Package crmapi is the console's client for the upstream CRM API. All
// business data lives behind that API; this package only speaks its HTTP
// contract and never persists anything itself.
package crmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	xerrors "crmdesk-console/internal/pkg/errors"
)

// TokenSource supplies the bearer token for authenticated calls. The session
// store implements it; anonymous calls get no Authorization header.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.Logger
}

func New(baseURL string, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		logger:  logger,
	}
}

// envelope is the upstream response format: {success, message, data, error}.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// APIError carries the upstream failure back to the caller with the
// human-readable message the console surfaces to the user.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream %d: %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
}

// UserMessage is what the session records for display; falls back to a
// generic message when the upstream gave none.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}

// Unwrap maps the upstream status onto the console's sentinel errors so
// callers can branch with errors.Is instead of inspecting status codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return xerrors.ErrNotFound
	case e.Status == http.StatusUnauthorized:
		return xerrors.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return xerrors.ErrForbidden
	case e.Status >= 400 && e.Status < 500:
		return xerrors.ErrInvalidInput
	default:
		return xerrors.ErrUpstream
	}
}

// do executes one upstream call and decodes the envelope. out, when non-nil,
// receives the envelope's data. The envelope message is returned so auth
// flows can record it on the session.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) (string, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	requestID := ulid.Make().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return "", fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", &APIError{Status: resp.StatusCode, Message: "malformed upstream response"}
	}

	c.logger.Debug("upstream request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return "", &APIError{Status: resp.StatusCode, Message: env.Message, Detail: env.Error}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("failed to decode upstream payload: %w", err)
		}
	}
	return env.Message, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	_, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, body, out)
	return err
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}
