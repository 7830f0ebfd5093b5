package client

import (
	"context"
	"net/http"
	"net/url"
)

// --------------------------------------------------------------------
// Email accounts
// --------------------------------------------------------------------

func accountPath(id, action string) string {
	return "/email-accounts/" + url.PathEscape(id) + "/" + action
}

// GetEmailAccounts lists connected email accounts.
func (c *Client) GetEmailAccounts(ctx context.Context) *Response[[]EmailAccount] {
	return Do[[]EmailAccount](ctx, c, "/email-accounts", RequestOptions{})
}

// ConnectEmailAccount links a mailbox using the provider's auth code.
func (c *Client) ConnectEmailAccount(ctx context.Context, provider Provider, authCode string) *Response[EmailAccount] {
	body := ConnectAccountRequest{Provider: provider, AuthCode: authCode}
	return Do[EmailAccount](ctx, c, "/email-accounts/connect", RequestOptions{Method: http.MethodPost, Body: body})
}

// DisconnectEmailAccount unlinks a mailbox.
func (c *Client) DisconnectEmailAccount(ctx context.Context, id string) *Response[MessageResult] {
	return Do[MessageResult](ctx, c, accountPath(id, "disconnect"), RequestOptions{Method: http.MethodPost})
}

// SendEmail sends an email through a connected account.
func (c *Client) SendEmail(ctx context.Context, accountID string, email SendEmailRequest) *Response[SendEmailResult] {
	return Do[SendEmailResult](ctx, c, accountPath(accountID, "send"), RequestOptions{Method: http.MethodPost, Body: email})
}
