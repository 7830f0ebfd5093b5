package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest holds parameters for a new account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest holds a partial profile update; empty fields are omitted.
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// ChangePasswordRequest holds the current and new password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// EmailGenerationRequest asks the backend to draft an email
type EmailGenerationRequest struct {
	Content string `json:"content"`
	Style   Style  `json:"style"`
	Context string `json:"context,omitempty"`
}

// DraftInput holds the fields of a new draft
type DraftInput struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
	Style   Style  `json:"style"`
	Context string `json:"context,omitempty"`
}

// DraftUpdate holds a partial draft update; nil fields are left untouched.
type DraftUpdate struct {
	Subject *string `json:"subject,omitempty"`
	Content *string `json:"content,omitempty"`
	Style   *Style  `json:"style,omitempty"`
	Context *string `json:"context,omitempty"`
}

// ConnectAccountRequest links an email account using a provider auth code
type ConnectAccountRequest struct {
	Provider Provider `json:"provider"`
	AuthCode string   `json:"authCode"`
}

// SendEmailRequest holds an outgoing email
type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`
	Cc      string `json:"cc,omitempty"`
	Bcc     string `json:"bcc,omitempty"`
}
