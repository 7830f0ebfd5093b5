package client

import (
	"context"
	"net/http"
)

// --------------------------------------------------------------------
// Authentication and profile
// --------------------------------------------------------------------

// Register creates an account. The returned token is not stored; call
// SetAuthToken with it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) *Response[AuthResponse] {
	return Do[AuthResponse](ctx, c, "/auth/register", RequestOptions{Method: http.MethodPost, Body: req})
}

// Login authenticates with email and password. The returned token is not
// stored; call SetAuthToken with it.
func (c *Client) Login(ctx context.Context, req LoginRequest) *Response[AuthResponse] {
	return Do[AuthResponse](ctx, c, "/auth/login", RequestOptions{Method: http.MethodPost, Body: req})
}

// RefreshToken asks for a fresh token for the current session.
func (c *Client) RefreshToken(ctx context.Context) *Response[TokenResult] {
	return Do[TokenResult](ctx, c, "/auth/refresh", RequestOptions{Method: http.MethodPost})
}

// Logout ends the session server-side and then clears the local token,
// whatever the outcome of the call.
func (c *Client) Logout(ctx context.Context) *Response[MessageResult] {
	resp := Do[MessageResult](ctx, c, "/auth/logout", RequestOptions{Method: http.MethodPost})
	c.ClearAuthToken()
	return resp
}

// GetProfile returns the authenticated user.
func (c *Client) GetProfile(ctx context.Context) *Response[User] {
	return Do[User](ctx, c, "/auth/profile", RequestOptions{})
}

// UpdateProfile applies a partial update to the authenticated user.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) *Response[User] {
	return Do[User](ctx, c, "/auth/profile", RequestOptions{Method: http.MethodPut, Body: req})
}

// ChangePassword replaces the password of the authenticated user.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) *Response[MessageResult] {
	body := ChangePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	return Do[MessageResult](ctx, c, "/auth/change-password", RequestOptions{Method: http.MethodPut, Body: body})
}
