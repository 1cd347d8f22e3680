package common

import "fmt"

// ValidationError reports a locally detected bad input: a missing required
// field, an invalid category, or an unsupported upload content type.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports an unknown id, or an id belonging to a different
// collection (treated identically).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

type AuthReason string

const (
	AuthInvalidCredentials AuthReason = "invalid_credentials"
	AuthTokenMissing       AuthReason = "token_missing"
	AuthTokenExpired       AuthReason = "token_expired"
	AuthTokenMalformed     AuthReason = "token_malformed"
	AuthSignatureInvalid   AuthReason = "signature_invalid"
	AuthForbidden          AuthReason = "forbidden"
)

// AuthError reports a failed credential check or token validation.
type AuthError struct {
	Reason  AuthReason
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewAuthError(reason AuthReason, message string) *AuthError {
	return &AuthError{Reason: reason, Message: message}
}

// StorageError wraps a failed operation against the underlying store. The
// cause goes to logs, never into response bodies.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
