package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cheikh-mbacke/emailight-mobile/client/internal/api"
	apierrors "github.com/cheikh-mbacke/emailight-mobile/client/internal/errors"
	"github.com/cheikh-mbacke/emailight-mobile/devmode"
)

// Environment selects the default API base URL.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// BaseURLFor returns the default API root for env. Unknown values fall back
// to the development address.
func BaseURLFor(env Environment) string {
	if env == Production {
		return devmode.ProductionBaseURL
	}
	return devmode.BaseURL
}

// RequestIDHeader is set on every request that does not already carry one.
const RequestIDHeader = "X-Request-ID"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the single choke point for calls to the Emailight backend.
// Every call returns a *Response envelope; transport failures never surface
// as Go errors. A Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
	logger  zerolog.Logger
	debug   bool
}

// New constructs a Client. Without options it targets the development API
// with no token and no timeout.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: BaseURLFor(Development),
		http:    &http.Client{},
		session: &Session{},
		logger:  log.Logger,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	// Transports are layered once every option has run, so option order
	// cannot drop one: debug dump innermost, then metrics, then bearer.
	if c.debug || debugLoggingRequested() {
		c.http.Transport = &debugTransport{base: c.http.Transport}
	}
	c.http.Transport = instrumentTransport(c.http.Transport)
	c.wrapTransportWithBearer()

	return c, nil
}

// NewWithDevMode constructs a Client for the local development backend.
func NewWithDevMode(opts ...Option) (*Client, error) {
	return New(append([]Option{WithBaseURL(devmode.BaseURL)}, opts...)...)
}

// wrapTransportWithBearer installs the transport that reads the session on
// every request and adds the Authorization header when a token is set.
func (c *Client) wrapTransportWithBearer() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:    baseTransport,
		session: c.session,
	}
}

// bearerTransport wraps an http.RoundTripper to add the session token.
type bearerTransport struct {
	base    http.RoundTripper
	session *Session
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, ok := t.session.Token()
	if !ok {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(cloned)
}

// SetAuthToken stores token for subsequent calls.
func (c *Client) SetAuthToken(token string) { c.session.Set(token) }

// ClearAuthToken removes the stored token.
func (c *Client) ClearAuthToken() { c.session.Clear() }

// IsAuthenticated reports whether a token is set. The token is not validated
// against the server.
func (c *Client) IsAuthenticated() bool {
	_, ok := c.session.Token()
	return ok
}

// BaseURL returns the API root every endpoint is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// Do issues one request to endpoint and decodes a 2xx body into T.
// It is a function rather than a method because methods cannot declare type
// parameters; the typed wrappers on Client all go through it.
func Do[T any](ctx context.Context, c *Client, endpoint string, opts RequestOptions) *Response[T] {
	var requestID string
	opts.Headers, requestID = withRequestID(opts.Headers)

	resp, err := api.Send[T](ctx, c.http, c.baseURL, endpoint, opts)
	if err != nil {
		c.logFailure(resp.Status, requestID, err)
	}
	return resp
}

// withRequestID returns a copy of headers that carries a request ID.
func withRequestID(headers map[string]string) (map[string]string, string) {
	out := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		out[k] = v
	}
	for k, v := range out {
		if http.CanonicalHeaderKey(k) == RequestIDHeader {
			return out, v
		}
	}
	id := uuid.NewString()
	out[RequestIDHeader] = id
	return out, id
}

func (c *Client) logFailure(status int, requestID string, err error) {
	kind := "application"
	ev := c.logger.Warn()
	if apierrors.IsTransport(err) {
		kind = "transport"
		ev = c.logger.Error()
	}
	envelopeFailuresTotal.WithLabelValues(kind).Inc()
	if cat, ok := apierrors.CategoryOf(err); ok {
		ev = ev.Str("category", cat.String())
	}
	ev.Err(err).
		Str("request_id", requestID).
		Int("status", status).
		Str("kind", kind).
		Msg("API request failed")
}
