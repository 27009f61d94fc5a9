// Package client provides an HTTP client for the ThinkHire analysis service.
package client

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

	"github.com/Urvashi-146/ThinkHire/internal/config"
	"github.com/google/uuid"
)

const (
	// maxErrorBodyLen bounds how much of a failed response is kept for logs.
	maxErrorBodyLen = 4096

	// maxResponseBytes bounds a successful response body.
	maxResponseBytes = 8 << 20

	// slowRequestThreshold is the duration above which requests are logged at WARN level.
	slowRequestThreshold = 10 * time.Second
)

// Client talks to the analysis service.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client from resolved configuration.
// A nil logger discards log output.
func New(cfg config.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	if baseURL == "" {
		baseURL = config.DefaultBackendURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		// Deadlines come from the request context so that they can be
		// reported as ErrTimeout.
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// BaseURL returns the analysis service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// request describes one call to the analysis service.
type request struct {
	op          string
	method      string
	path        string
	body        []byte
	contentType string
}

// do executes req under the client timeout and decodes a JSON object into out.
// All failures are returned as *TransportError.
func (c *Client) do(ctx context.Context, req request, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	requestID := uuid.NewString()

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return &TransportError{Kind: ErrFailed, Op: req.op, Detail: fmt.Sprintf("create request: %v", err)}
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.logResult(req, requestID, start, 0, classify(ctx, req.op, fmt.Errorf("execute request: %w", err)))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return c.logResult(req, requestID, start, resp.StatusCode, &TransportError{
			Kind:   ErrFailed,
			Op:     req.op,
			Status: resp.StatusCode,
			Detail: fmt.Sprintf("server error: %s - %s", resp.Status, errorMessage(raw)),
		})
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.logResult(req, requestID, start, resp.StatusCode, classify(ctx, req.op, fmt.Errorf("read response: %w", err)))
	}

	if err := decodeObject(raw, out); err != nil {
		return c.logResult(req, requestID, start, resp.StatusCode, &TransportError{
			Kind:   ErrFailed,
			Op:     req.op,
			Status: resp.StatusCode,
			Detail: err.Error(),
		})
	}

	return c.logResult(req, requestID, start, resp.StatusCode, nil)
}

// logResult logs the request outcome and returns err unchanged.
func (c *Client) logResult(req request, requestID string, start time.Time, status int, err error) error {
	duration := time.Since(start)
	attrs := []any{
		"op", req.op,
		"method", req.method,
		"path", req.path,
		"request_id", requestID,
		"duration_ms", duration.Milliseconds(),
	}
	if status != 0 {
		attrs = append(attrs, "status", status)
	}

	switch {
	case err != nil:
		attrs = append(attrs, "error", err.Error())
		c.logger.Debug("request failed", attrs...)
	case duration > slowRequestThreshold:
		c.logger.Warn("slow request", attrs...)
	default:
		c.logger.Debug("request completed", attrs...)
	}
	return err
}

// classify maps a transport-level error to its kind using the request context.
func classify(ctx context.Context, op string, err error) error {
	kind := ErrFailed
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		kind = ErrTimeout
	case errors.Is(ctx.Err(), context.Canceled):
		kind = ErrCanceled
	}
	return &TransportError{Kind: kind, Op: op, Detail: err.Error()}
}

// decodeObject unmarshals a JSON object. Empty bodies and non-object
// payloads (arrays, null, HTML error pages) are malformed.
func decodeObject(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return errors.New("malformed response: empty body")
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("malformed response: expected JSON object, got %q", truncate(string(trimmed), 64))
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} from a failure body, or returns the
// body text itself.
func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return truncate(strings.TrimSpace(string(raw)), 200)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
