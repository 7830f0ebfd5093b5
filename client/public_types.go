package client

import (
	"github.com/cheikh-mbacke/emailight-mobile/client/internal/api"
	"github.com/cheikh-mbacke/emailight-mobile/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.

// Response is the envelope returned by every call.
type Response[T any] = types.Response[T]

// RequestOptions configures a raw call made through Do.
type RequestOptions = api.Options

type (
	// Requests
	LoginRequest           = types.LoginRequest
	RegisterRequest        = types.RegisterRequest
	UpdateProfileRequest   = types.UpdateProfileRequest
	ChangePasswordRequest  = types.ChangePasswordRequest
	EmailGenerationRequest = types.EmailGenerationRequest
	DraftInput             = types.DraftInput
	DraftUpdate            = types.DraftUpdate
	ConnectAccountRequest  = types.ConnectAccountRequest
	SendEmailRequest       = types.SendEmailRequest

	// Domain entities
	User         = types.User
	Draft        = types.Draft
	EmailAccount = types.EmailAccount
	Style        = types.Style
	Provider     = types.Provider

	// Responses
	ErrorBody       = types.ErrorBody
	AuthResponse    = types.AuthResponse
	TokenResult     = types.TokenResult
	MessageResult   = types.MessageResult
	GeneratedEmail  = types.GeneratedEmail
	SendEmailResult = types.SendEmailResult
	History         = types.History
	HealthStatus    = types.HealthStatus
)

const (
	StyleProfessional = types.StyleProfessional
	StyleCasual       = types.StyleCasual
	StyleFormal       = types.StyleFormal
	StyleFriendly     = types.StyleFriendly

	ProviderGmail   = types.ProviderGmail
	ProviderOutlook = types.ProviderOutlook
	ProviderYahoo   = types.ProviderYahoo
)
