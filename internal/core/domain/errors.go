package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAuthentication is returned when the token endpoint refuses the
	// refresh token or answers without an access token.
	ErrAuthentication = errors.New("authentication failed")

	// ErrCreationRejected matches any *CreationRejectedError.
	ErrCreationRejected = errors.New("creation rejected")

	// ErrUnexpectedStatus matches any *APIError.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// RejectionReason is one error reported by the platform for a batch entry.
type RejectionReason struct {
	Index   int
	Code    string
	Message string
}

func (r RejectionReason) String() string {
	if r.Message == "" {
		return fmt.Sprintf("#%d %s", r.Index, r.Code)
	}
	return fmt.Sprintf("#%d %s: %s", r.Index, r.Code, r.Message)
}

// CreationRejectedError is returned when a creation response has no
// successful entries. Reasons holds whatever the platform listed under its
// error list, which may be empty.
type CreationRejectedError struct {
	Resource string
	Reasons  []RejectionReason
}

func (e *CreationRejectedError) Error() string {
	if len(e.Reasons) == 0 {
		return fmt.Sprintf("%s: no entries created", e.Resource)
	}
	parts := make([]string, 0, len(e.Reasons))
	for _, r := range e.Reasons {
		parts = append(parts, r.String())
	}
	return fmt.Sprintf("%s: no entries created: %s", e.Resource, strings.Join(parts, "; "))
}

func (e *CreationRejectedError) Is(target error) bool {
	return target == ErrCreationRejected
}

// APIError is returned when a creation endpoint answers with a status that
// carries no multi-status body, for example 401 or 400.
type APIError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Resource, e.StatusCode, e.Body)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
