// Package vaulterr provides typed errors for vault operations.
// This enables callers to use errors.Is()/errors.As() for specific error
// handling while the CLI layer prints the exact user-facing message carried
// on VaultError.
package vaulterr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error categories of spec section 7.
// Use errors.Is(err, vaulterr.ErrSealed) to check for a specific condition.
var (
	// State errors
	ErrSealed        = errors.New("vault is sealed")
	ErrAlreadySealed = errors.New("vault is already sealed")
	ErrAlreadyExists = errors.New("vault file already exists")
	ErrVaultNotFound = errors.New("vault file not found")
	ErrAuditNotFound = errors.New("audit log file not found")

	// Validation errors
	ErrEmptyPassword  = errors.New("master password must not be empty")
	ErrInvalidPath    = errors.New("invalid path format")
	ErrEmptyValue     = errors.New("secret value must not be empty")
	ErrNoCapabilities = errors.New("at least one capability must be specified")
	ErrInvalidCap     = errors.New("invalid capability")

	// Authorization errors
	ErrAccessDenied = errors.New("access denied")

	// Not-found errors
	ErrSecretNotFound  = errors.New("secret not found")
	ErrVersionNotFound = errors.New("version not found")
	ErrPolicyNotFound  = errors.New("policy not found")

	// Cryptographic errors
	ErrIncorrectPassword = errors.New("incorrect master password")
	ErrAuthFailed        = errors.New("authentication failed")
)

// VaultError is the single user-facing error category. Its Error() text is
// the exact contract string from spec section 6; Unwrap exposes the
// underlying sentinel so callers can still branch on error category.
type VaultError struct {
	Message string
	Err     error
}

func (e *VaultError) Error() string {
	return e.Message
}

func (e *VaultError) Unwrap() error {
	return e.Err
}

// New creates a VaultError with the given message, wrapping sentinel.
func New(sentinel error, message string) *VaultError {
	return &VaultError{Message: message, Err: sentinel}
}

// Newf creates a VaultError with a formatted message, wrapping sentinel.
func Newf(sentinel error, format string, args ...any) *VaultError {
	return &VaultError{Message: fmt.Sprintf(format, args...), Err: sentinel}
}

// Is reports whether err matches target, delegating to errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target, delegating to errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap adds context to err while preserving its chain for errors.Is/As.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
