package platform

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/crcs-platform/campusctl/internal/errors"
	"github.com/crcs-platform/campusctl/internal/log"
)

// Credentials is the slice of the session store the pipeline needs: read the
// current token pair, rotate it after a refresh, and destroy the session on
// unrecoverable auth failure. Implemented by *session.Store.
type Credentials interface {
	AccessToken() string
	RefreshToken() string
	UpdateTokens(access, refresh string) error
	ClearSession()
}

// Client is the CRCS API gateway client. Every domain call goes through the
// authenticated request pipeline in transport.go.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials
	logger     *log.Logger

	// refreshGroup collapses concurrent refresh attempts into a single
	// network call per refresh token.
	refreshGroup singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a gateway client. creds is consulted before every
// dispatch and mutated only by the recovery path.
func NewClient(baseURL string, creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		creds:  creds,
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured gateway URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs an authenticated JSON request and decodes the response into
// out (which may be nil for calls whose body the caller discards).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		// bytes.Reader gives net/http a GetBody, so the pipeline can
		// replay the request after a token refresh.
		reqBody = bytes.NewReader(jsonBody)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.send(req)
	if err != nil {
		var urlErr *url.Error
		if stderrors.As(err, &urlErr) {
			return errors.NewGatewayUnreachableError(c.baseURL, err)
		}
		return err
	}
	return parseResponse(resp, out)
}

// parseResponse decodes a successful response into target and converts
// non-2xx responses into *APIError.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
