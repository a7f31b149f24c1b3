// internal/adapters/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/awidjaja/stokgate/internal/core/ports"
)

// Config holds the connection settings for the upstream inventory API.
type Config struct {
	// BaseURL is the backend origin, e.g. "http://localhost:5000".
	BaseURL string
	// Timeout bounds every request including the transparent replay.
	Timeout time.Duration
}

// Client is the single point through which every backend call is issued.
// It owns the session cookie jar, so callers never attach credentials, and
// it recovers exactly once from an expired access token by refreshing and
// replaying the original request.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger

	// refreshMu guards refreshGen. Concurrent 403s coalesce into one
	// refresh call: waiters re-check the generation under the lock and
	// skip the refresh when another request already rotated the token.
	refreshMu  sync.Mutex
	refreshGen uint64
}

// Statically assert that *Client implements the backend ports.
var _ ports.BackendAPI = (*Client)(nil)

// NewClient creates a backend client with a fresh cookie jar.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout,
		},
		logger: logger.With(slog.String("component", "backend_client")),
	}, nil
}

// StatusError is a completed upstream response outside the success range.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("backend request failed: %s", e.Status)
	}
	return fmt.Sprintf("backend request failed: %s: %s", e.Status, e.Body)
}

func newStatusError(resp *http.Response, body []byte) error {
	return &StatusError{
		Code:   resp.StatusCode,
		Status: resp.Status,
		Body:   strings.TrimSpace(string(body)),
	}
}

// do issues one backend call. The body, if any, is marshaled once and
// buffered so the request can be replayed after a token refresh. On a 403
// the client refreshes and replays exactly once; a second 403 surfaces as a
// StatusError like any other failure status.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
	}

	gen := c.generation()
	resp, respBody, err := c.send(ctx, method, path, query, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusForbidden {
		// Expired access token. Refresh once, then replay the original
		// request once. A refresh failure is terminal for this call.
		if err := c.refresh(ctx, gen); err != nil {
			return err
		}

		c.logger.DebugContext(ctx, "replaying request after refresh",
			slog.String("method", method),
			slog.String("path", path))

		resp, respBody, err = c.send(ctx, method, path, query, payload)
		if err != nil {
			return err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding %s response: %w", path, err)
		}
	}

	return nil
}

// send performs a single HTTP round trip and drains the body.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Response, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s response: %w", path, err)
	}

	return resp, respBody, nil
}

// generation reports the current refresh generation. A request captures it
// before its first send so a later 403 can tell whether the token it used
// has already been rotated.
func (c *Client) generation() uint64 {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	return c.refreshGen
}

// refresh rotates the expired access token. The new token arrives as a
// cookie and lands in the jar automatically. seen is the generation the
// caller observed before its rejected request; when it is already stale the
// token was rotated in the meantime and no second refresh is issued.
func (c *Client) refresh(ctx context.Context, seen uint64) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if c.refreshGen != seen {
		c.logger.DebugContext(ctx, "skipping refresh, token already rotated")
		return nil
	}

	resp, body, err := c.send(ctx, http.MethodPost, "/api/user/refresh", nil, nil)
	if err != nil {
		return fmt.Errorf("refreshing session: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "session refresh rejected",
			slog.Int("status", resp.StatusCode))
		return fmt.Errorf("refreshing session: %w", newStatusError(resp, body))
	}

	c.refreshGen++
	return nil
}
