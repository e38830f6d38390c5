package models

import (
	"errors"
	"strings"
)

var (
	ErrServiceNotFound      = errors.New("models: service not found")
	ErrServiceForbidden     = errors.New("models: service not owned by caller")
	ErrSubscriptionNotFound = errors.New("models: subscription not found")
	ErrUserNotFound         = errors.New("models: user not found")
	ErrCategoryNotFound     = errors.New("models: category not found")
	ErrDuplicateEmail       = errors.New("models: duplicate email")
	ErrDuplicatePhone       = errors.New("models: duplicate phone number")
	ErrInvalidCredentials   = errors.New("models: invalid credentials")
	ErrSessionNotFound      = errors.New("models: session not found")
	ErrResetCodeMismatch    = errors.New("models: reset code mismatch")
)

// ValidationError aggregates every field failure of one request so the client
// receives a single joined message.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}
