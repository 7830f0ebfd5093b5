package api

import (
	"net/url"

	"github.com/cheikh-mbacke/emailight-mobile/client/internal/types"
)

// HTTPClient is the subset of *http.Client the request layer needs.
type HTTPClient = types.HTTPClient

// Options describes a single outbound call.
type Options struct {
	// Method defaults to GET.
	Method string
	// Headers are applied over the default Content-Type; caller values win.
	Headers map[string]string
	// Query is appended to the endpoint when non-empty.
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body any
}
