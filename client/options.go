package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Transports are installed after every option has run, so options may be
// given in any order.
type Option func(*Client) error

// WithBaseURL overrides the API root. It must be an absolute http(s) URL.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base url: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid base url %q: want absolute http(s) URL", raw)
		}
		c.baseURL = raw
		return nil
	}
}

// WithEnvironment selects the default base URL for env. A later WithBaseURL
// still wins.
func WithEnvironment(env Environment) Option {
	return func(c *Client) error {
		if env != Development && env != Production {
			return fmt.Errorf("unknown environment %q", env)
		}
		c.baseURL = BaseURLFor(env)
		return nil
	}
}

// WithHTTPClient uses a copy of hc for all calls. The copy's transport is
// wrapped; hc itself is left untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout. There is no
// timeout by default. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging dumps each request and response at debug level when
// enabled is true. The Authorization header is masked in request dumps;
// bodies, passwords included, are not. Do not enable it in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithAuthToken seeds the session with token.
func WithAuthToken(token string) Option {
	return func(c *Client) error {
		c.session.Set(token)
		return nil
	}
}

// WithLogger sets the logger used to report failed calls.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}
