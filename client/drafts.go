package client

import (
	"context"
	"net/http"
	"net/url"
)

// --------------------------------------------------------------------
// Drafts
// --------------------------------------------------------------------

func draftPath(id string) string { return "/drafts/" + url.PathEscape(id) }

// GetDrafts lists the drafts of the authenticated user.
func (c *Client) GetDrafts(ctx context.Context) *Response[[]Draft] {
	return Do[[]Draft](ctx, c, "/drafts", RequestOptions{})
}

// CreateDraft saves a new draft.
func (c *Client) CreateDraft(ctx context.Context, draft DraftInput) *Response[Draft] {
	return Do[Draft](ctx, c, "/drafts", RequestOptions{Method: http.MethodPost, Body: draft})
}

// GetDraft fetches one draft.
func (c *Client) GetDraft(ctx context.Context, id string) *Response[Draft] {
	return Do[Draft](ctx, c, draftPath(id), RequestOptions{})
}

// UpdateDraft applies a partial update to a draft.
func (c *Client) UpdateDraft(ctx context.Context, id string, updates DraftUpdate) *Response[Draft] {
	return Do[Draft](ctx, c, draftPath(id), RequestOptions{Method: http.MethodPut, Body: updates})
}

// DeleteDraft removes a draft.
func (c *Client) DeleteDraft(ctx context.Context, id string) *Response[MessageResult] {
	return Do[MessageResult](ctx, c, draftPath(id), RequestOptions{Method: http.MethodDelete})
}
