// Package remote implements the checklist repository against the checklist
// HTTP API, with the change feed carried over a websocket.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"realtime-checklist/internal/checklist/repository"
	pkgLog "realtime-checklist/pkg/log"
)

const defaultTimeout = 30 * time.Second

var (
	errNotFound     = errors.New("remote: not found")
	errUnauthorized = errors.New("remote: unauthorized")
)

// Client is the HTTP wrapper for the checklist REST API.
type Client struct {
	l           pkgLog.Logger
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// New creates a client for the API at baseURL authenticating with accessToken.
func New(l pkgLog.Logger, baseURL, accessToken string) *Client {
	return &Client{
		l:           l,
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
}

var (
	_ repository.Repository    = (*Client)(nil)
	_ repository.ActorResolver = (*Client)(nil)
)

// envelope is the response body every API route returns.
type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

// do sends a JSON request to path and decodes the envelope's data into out.
// 404 and 401 come back as errNotFound and errUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	if id := pkgLog.RequestIDFromContext(ctx); id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return errNotFound
	case http.StatusUnauthorized:
		return errUnauthorized
	default:
		var env envelope
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			return fmt.Errorf("checklist API %s %s error %d: %s", method, path, resp.StatusCode, env.Message)
		}
		return fmt.Errorf("checklist API %s %s error %d: %s", method, path, resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s data: %w", method, path, err)
	}
	return nil
}
