package forms

import (
	"net/http"
	"strings"

	"github.com/cheikh-mbacke/emailight-mobile/client"
)

// User-facing messages for failed submissions.
const (
	MsgBadCredentials = "Incorrect email or password"
	MsgNoAccount      = "No account found with this email"
	MsgEmailTaken     = "An account with this email already exists"
	MsgInvalidData    = "Invalid data. Please check your information."
	MsgTryAgain       = "Connection error. Please try again."
	MsgLoginFailed    = "Login failed"
	MsgSignUpFailed   = "Something went wrong while creating the account"
)

// LoginFailure maps a login envelope to form errors. It returns nil when the
// response carries a token.
func LoginFailure(resp *client.Response[client.AuthResponse]) Errors {
	if resp.OK() {
		if resp.Data != nil && resp.Data.Token != "" {
			return nil
		}
		return Errors{General: orDefault(resp.Message, MsgLoginFailed)}
	}
	switch resp.Status {
	case http.StatusUnauthorized:
		return Errors{General: MsgBadCredentials}
	case http.StatusNotFound:
		return Errors{Email: MsgNoAccount}
	default:
		return Errors{General: MsgTryAgain}
	}
}

// SignUpFailure maps a register envelope to form errors. It returns nil when
// the response carries a token.
func SignUpFailure(resp *client.Response[client.AuthResponse]) Errors {
	if resp.OK() {
		if resp.Data != nil && resp.Data.Token != "" {
			return nil
		}
		return Errors{General: orDefault(resp.Message, MsgSignUpFailed)}
	}
	text := strings.ToLower(resp.Message + " " + resp.Error)
	switch {
	case resp.Status == http.StatusConflict || strings.Contains(text, "already in use"):
		return Errors{Email: MsgEmailTaken}
	case strings.Contains(text, "validation"):
		return Errors{General: MsgInvalidData}
	default:
		return Errors{General: MsgTryAgain}
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
