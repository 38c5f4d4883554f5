// Package hyperbolic is a thin client for the Hyperbolic platform
// API, covering the GPU marketplace, billing and account settings.
package hyperbolic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.hyperbolic.xyz"
	// EnvAPIKey is the environment variable holding the API key.
	EnvAPIKey = "HYPERBOLIC_API_KEY"
)

// APIError is an error response of the platform API. The response
// body is preserved verbatim to keep the upstream diagnostics.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hyperbolic API error: status %d: %s", e.Status, e.Body)
}

// Client talks to the Hyperbolic platform API.
type Client struct {
	*Options
	httpClient *http.Client
}

// NewClient creates a new API client. The API key is taken from the
// options or from the environment; a missing key is a configuration
// error raised before any request is made.
func NewClient(options ...Option) (*Client, error) {
	opts, err := GetDefaultOptions().Apply(options...)
	if err != nil {
		return nil, err
	}

	if opts.APIKey == "" {
		opts.APIKey = os.Getenv(EnvAPIKey)
	}
	if opts.APIKey == "" {
		return nil, errors.New(EnvAPIKey + " environment variable is not set")
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	return &Client{
		Options: opts,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}, nil
}

// do performs a single API request and decodes the JSON response into
// out, if any.
func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.Logger.Debug().Str("method", method).Str("path", path).Msg("Calling platform API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
