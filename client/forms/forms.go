// Package forms validates the login and sign-up forms before submission and
// turns failed responses into messages aimed at a form field.
//
// Validation is pure and synchronous. An empty Errors value means the form
// may be submitted.
package forms

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cheikh-mbacke/emailight-mobile/client"
)

// Field names a form input. General is used for messages that belong to the
// form as a whole.
type Field string

const (
	Name            Field = "name"
	Email           Field = "email"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
	General         Field = "general"
)

// MaxNameLength is the longest accepted name, counted in characters after trimming.
const MaxNameLength = 100

// MinPasswordLength applies to sign-up only.
const MinPasswordLength = 6

// emailRx: word characters with optional single dot/hyphen separators, an @,
// the same for the domain, then one or more 2-3 character TLD segments.
var emailRx = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Validation messages.
const (
	MsgEmailRequired      = "Email is required"
	MsgEmailInvalid       = "Invalid email format"
	MsgPasswordRequired   = "Password is required"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgConfirmRequired    = "Please confirm your password"
	MsgPasswordsDontMatch = "Passwords do not match"
	MsgNameRequired       = "Name is required"
	MsgNameTooLong        = "Name cannot exceed 100 characters"
)

// Errors maps a field to its message. A field without a key is valid.
type Errors map[Field]string

// Valid reports whether no field has an error.
func (e Errors) Valid() bool { return len(e) == 0 }

// LoginForm is the raw input of the login form.
type LoginForm struct {
	Email    string
	Password string
}

// SignUpForm is the raw input of the sign-up form.
type SignUpForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidEmail reports whether s, after trimming, looks like an address.
func ValidEmail(s string) bool {
	return emailRx.MatchString(strings.TrimSpace(s))
}

func validateEmail(errs Errors, email string) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		errs[Email] = MsgEmailRequired
	case !emailRx.MatchString(email):
		errs[Email] = MsgEmailInvalid
	}
}

// ValidateLogin checks the login form.
func ValidateLogin(f LoginForm) Errors {
	errs := Errors{}
	validateEmail(errs, f.Email)
	if f.Password == "" {
		errs[Password] = MsgPasswordRequired
	}
	return errs
}

// ValidateSignUp checks the sign-up form.
func ValidateSignUp(f SignUpForm) Errors {
	errs := Errors{}

	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		errs[Name] = MsgNameRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		errs[Name] = MsgNameTooLong
	}

	validateEmail(errs, f.Email)

	switch {
	case f.Password == "":
		errs[Password] = MsgPasswordRequired
	case len(f.Password) < MinPasswordLength:
		errs[Password] = MsgPasswordTooShort
	}

	switch {
	case f.ConfirmPassword == "":
		errs[ConfirmPassword] = MsgConfirmRequired
	case f.Password != f.ConfirmPassword:
		errs[ConfirmPassword] = MsgPasswordsDontMatch
	}
	return errs
}

// Request normalizes the form for submission: the email is trimmed and
// lower-cased, the password is sent as typed.
func (f LoginForm) Request() client.LoginRequest {
	return client.LoginRequest{
		Email:    normalizeEmail(f.Email),
		Password: f.Password,
	}
}

// Request normalizes the form for submission.
func (f SignUpForm) Request() client.RegisterRequest {
	return client.RegisterRequest{
		Name:     strings.TrimSpace(f.Name),
		Email:    normalizeEmail(f.Email),
		Password: f.Password,
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
