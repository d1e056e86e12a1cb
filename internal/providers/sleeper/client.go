package sleeper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/preston-bernstein/sleeper-bridge/internal/providers"
)

// Config controls how the Sleeper client reaches the upstream API.
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client issues GET requests against the Sleeper API and decodes JSON bodies.
// A single Client is safe for concurrent use and should be shared across requests.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs a Sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// Get fetches path relative to the base URL and decodes the body into dest.
func (c *Client) Get(ctx context.Context, path string, dest any) error {
	req, err := c.buildRequest(ctx, path)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.UpstreamError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	// Decode straight from the body so large catalogs are not buffered twice.
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(dest); err != nil {
		return &providers.DecodeError{Path: path, Err: err}
	}
	if hasTrailingContent(dec, resp.Body) {
		return &providers.DecodeError{Path: path, Err: errTrailingContent}
	}
	return nil
}

var errTrailingContent = errors.New("invalid character after top-level value")

// hasTrailingContent reports whether anything other than whitespace follows the decoded value.
func hasTrailingContent(dec *json.Decoder, body io.Reader) bool {
	rest, _ := io.ReadAll(io.LimitReader(io.MultiReader(dec.Buffered(), body), maxTrailingScan))
	return len(bytes.TrimSpace(rest)) > 0
}

func (c *Client) buildRequest(ctx context.Context, path string) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("sleeper: build request for %q: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}
