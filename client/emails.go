package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GenerateEmail asks the backend to write an email in the requested style.
func (c *Client) GenerateEmail(ctx context.Context, req EmailGenerationRequest) *Response[GeneratedEmail] {
	return Do[GeneratedEmail](ctx, c, "/emails/generate", RequestOptions{Method: http.MethodPost, Body: req})
}

// GetHistory returns a page of sent emails. limit and offset are only sent
// when positive.
func (c *Client) GetHistory(ctx context.Context, limit, offset int) *Response[History] {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return Do[History](ctx, c, "/history", RequestOptions{Query: q})
}

// HealthCheck pings the backend.
func (c *Client) HealthCheck(ctx context.Context) *Response[HealthStatus] {
	return Do[HealthStatus](ctx, c, "/health", RequestOptions{})
}
