package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Account errors
var (
	ErrAccountNotFound    = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyVerified    = errors.New("email is already verified")
)

// Secret errors. A wrong code and an expired code are deliberately
// indistinguishable, same for reset tokens.
var (
	ErrSecretInvalid = errors.New("invalid or expired secret")
)

// Session token errors
var (
	ErrNoToken        = errors.New("no token provided")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Notification errors
var (
	ErrDispatchFailed = errors.New("notification dispatch failed")
)

// FieldError describes a single field-level violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found in a request,
// not just the first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a violation and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
