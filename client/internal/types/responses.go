package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// Response is the envelope returned by every API call, success or failure.
//
// Data is set only for 2xx statuses. Transport failures are reported with
// Status 500 and a non-empty Error; they never surface as Go errors.
type Response[T any] struct {
	Data    *T       `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Status  int      `json:"status"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

// OK reports whether the call completed with a 2xx status.
func (r *Response[T]) OK() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

// ErrorBody is the shape the backend uses for failures. Message is also read
// from successful bodies.
type ErrorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	Message string   `json:"message,omitempty"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// TokenResult is returned by the refresh endpoint
type TokenResult struct {
	Token string `json:"token"`
}

// MessageResult is returned by endpoints that only acknowledge
type MessageResult struct {
	Message string `json:"message"`
}

// GeneratedEmail is returned by the generation endpoint
type GeneratedEmail struct {
	GeneratedContent string `json:"generatedContent"`
}

// SendEmailResult is returned after an email is sent
type SendEmailResult struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// History is a page of sent emails. Emails are passed through untyped.
type History struct {
	Emails     []json.RawMessage `json:"emails"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

// HealthStatus is returned by the health endpoint
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
