package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       ioNopCloser(body),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestWithHTTPTimeoutAndDebugLogging(t *testing.T) {
	// timeout option sets http timeout
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}

	// debug logging wraps the injected transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	c2, err := New(WithBaseURL("http://example.com"), WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c2.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestNew_NoTimeoutByDefault(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 0 {
		t.Fatalf("expected no timeout, got %s", c.http.Timeout)
	}
}

func TestWithHTTPClient_DoesNotMutateCaller(t *testing.T) {
	hc := &http.Client{}
	if _, err := New(WithHTTPClient(hc)); err != nil {
		t.Fatalf("New: %v", err)
	}
	if hc.Transport != nil {
		t.Fatalf("caller's http.Client transport was modified")
	}
	if _, err := New(WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
}

func TestWithBaseURL(t *testing.T) {
	c, err := New(WithBaseURL("https://api.example.com/api/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.BaseURL(); got != "https://api.example.com/api" {
		t.Fatalf("trailing slash not trimmed: %q", got)
	}
	for _, bad := range []string{"", "example.com", "ftp://example.com", "http://"} {
		if _, err := New(WithBaseURL(bad)); err == nil {
			t.Fatalf("expected error for base url %q", bad)
		}
	}
}

func TestWithEnvironment(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != BaseURLFor(Development) {
		t.Fatalf("default base url = %q", c.BaseURL())
	}
	p, err := New(WithEnvironment(Production))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.BaseURL() != BaseURLFor(Production) || p.BaseURL() == c.BaseURL() {
		t.Fatalf("production base url = %q", p.BaseURL())
	}
	o, err := New(WithEnvironment(Production), WithBaseURL("http://override.local/api"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if o.BaseURL() != "http://override.local/api" {
		t.Fatalf("explicit base url should win, got %q", o.BaseURL())
	}
	if _, err := New(WithEnvironment("staging")); err == nil {
		t.Fatalf("expected error for unknown environment")
	}
}

func TestNewWithDevMode(t *testing.T) {
	c, err := NewWithDevMode(WithAuthToken("seed"))
	if err != nil {
		t.Fatalf("NewWithDevMode: %v", err)
	}
	if c.BaseURL() != BaseURLFor(Development) || !c.IsAuthenticated() {
		t.Fatalf("unexpected dev client: base=%q auth=%v", c.BaseURL(), c.IsAuthenticated())
	}
}
