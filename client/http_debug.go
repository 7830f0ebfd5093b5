package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps every request and response at debug level.
//
// Enable with EMAILIGHT_DEBUG=true or DEBUG=true, or WithDebugLogging(true).
// The Authorization header is masked; bodies are dumped as sent, so
// passwords sent to /auth/login appear in the log. Keep it out of production.
type debugTransport struct{ base http.RoundTripper }

const redacted = "Bearer [REDACTED]"

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	masked := req.Clone(req.Context())
	if masked.Header.Get("Authorization") != "" {
		masked.Header.Set("Authorization", redacted)
	}
	if reqDump, err := httputil.DumpRequestOut(masked, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}
	// The clone shares the body reader; the dump left a fresh copy on it.
	req.Body = masked.Body

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether EMAILIGHT_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("EMAILIGHT_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
