// Package backend implements the authenticated request pipeline: the single
// choke point through which every call to the job-portal REST API passes.
// It enforces the invariant that unauthenticated requests never reach the
// backend, attaches the bearer credential, normalizes bodies, and maps
// responses onto the client error taxonomy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/ports"
	"github.com/jobportal/portal-client/internal/metrics"
)

// fallbackMessage is surfaced when an error response has no usable body.
const fallbackMessage = "Request failed"

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 1 << 20

// Client dispatches requests to the backend base URL. One attempt per call,
// no retries: the calling surface offers manual re-trigger instead.
type Client struct {
	base    string
	http    *http.Client
	session ports.SessionGuard
	log     zerolog.Logger
}

// NewClient builds a pipeline rooted at baseURL. httpClient may be nil, in
// which case a 30-second-timeout client is used.
func NewClient(baseURL string, session ports.SessionGuard, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		base:    baseURL,
		http:    httpClient,
		session: session,
		log:     log,
	}
}

// Get issues an authenticated GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

// Post issues an authenticated POST with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, true)
}

// Put issues an authenticated PUT with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, true)
}

// Delete issues an authenticated DELETE. The response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}

// PostAnonymous issues a POST without pre-flight or credential attachment.
// The auth endpoints use it; a 401 here stays an ordinary request error so
// a failed login cannot tear down an existing session.
func (c *Client) PostAnonymous(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, false)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	// Pre-flight: an unusable credential means the request is never sent.
	if authenticated && c.session.TokenExpired() {
		c.log.Warn().Str("method", method).Str("path", path).Msg("token expired before dispatch, invalidating session")
		c.session.Invalidate()
		metrics.SessionInvalidationsTotal.WithLabelValues(metrics.ReasonExpiredToken).Inc()
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeSessionInvalidated).Inc()
		return domain.ErrSessionInvalidated
	}

	reader, contentType, err := encodeBody(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authenticated {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeNetworkError).Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("backend response")

	if resp.StatusCode == http.StatusUnauthorized && authenticated {
		c.log.Warn().Str("path", path).Msg("unauthorized response, invalidating session")
		c.session.Invalidate()
		metrics.SessionInvalidationsTotal.WithLabelValues(metrics.ReasonUnauthorized).Inc()
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeSessionInvalidated).Inc()
		return domain.ErrSessionInvalidated
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeRequestError).Inc()
		return &domain.RequestError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}

	metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeSuccess).Inc()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// encodeBody normalizes the request body. Pre-encoded forms ([]byte,
// io.Reader) pass through untouched; anything else is JSON.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return b, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// errorMessage extracts the backend's message field from an error response.
// The body may be absent or unparsable; both fall back to a generic message.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return fallbackMessage
	}
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fallbackMessage
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return fallbackMessage
}
