package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// User is the account returned by the auth and profile endpoints.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// Draft is a saved email draft.
type Draft struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Style     Style  `json:"style"`
	Context   string `json:"context,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// EmailAccount is a mailbox connected through an external provider.
type EmailAccount struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Email       string   `json:"email"`
	Provider    Provider `json:"provider"`
	IsConnected bool     `json:"isConnected"`
	CreatedAt   string   `json:"createdAt"`
}

// Style is the tone requested for a generated email.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleCasual       Style = "casual"
	StyleFormal       Style = "formal"
	StyleFriendly     Style = "friendly"
)

// Valid reports whether s is one of the styles the backend accepts.
func (s Style) Valid() bool {
	switch s {
	case StyleProfessional, StyleCasual, StyleFormal, StyleFriendly:
		return true
	}
	return false
}

// Provider identifies an email provider.
type Provider string

const (
	ProviderGmail   Provider = "gmail"
	ProviderOutlook Provider = "outlook"
	ProviderYahoo   Provider = "yahoo"
)

// Valid reports whether p is a supported provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderGmail, ProviderOutlook, ProviderYahoo:
		return true
	}
	return false
}
