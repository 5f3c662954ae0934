// Package errors provides structured error types for skillet.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes for skillet operations.
const (
	// Config errors
	CodeConfigNoHome       = "CONFIG_001" // Home directory cannot be determined
	CodeConfigInvalidValue = "CONFIG_002" // Invalid config value

	// Source errors
	CodeSourceUnsupported      = "SRC_001" // Source string cannot be resolved
	CodeSourceInvalidShorthand = "SRC_002" // Shorthand is missing owner/repo segments

	// Path errors
	CodePathUnsafe = "PATH_001" // Target escapes the destination directory

	// Fetch errors
	CodeFetchCloneFailed   = "FETCH_001" // git clone failed
	CodeFetchSubpathAbsent = "FETCH_002" // Subpath not present in fetched repo

	// IO errors
	CodeIONotFound  = "IO_001" // File or directory not found
	CodeIOCopyError = "IO_002" // Copy failed
)

// SkilletError is the structured error type for skillet operations.
type SkilletError struct {
	Code    string         `json:"code"`              // Error code (e.g., "SRC_001")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (source, path, etc.)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *SkilletError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *SkilletError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *SkilletError) WithDetail(key string, value any) *SkilletError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error.
func (e *SkilletError) WithCause(err error) *SkilletError {
	e.Cause = err
	return e
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *SkilletError) MarshalJSON() ([]byte, error) {
	type alias SkilletError
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new SkilletError.
func New(code, message string) *SkilletError {
	return &SkilletError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new SkilletError with formatted message.
func Newf(code, format string, args ...any) *SkilletError {
	return &SkilletError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with a SkilletError.
func Wrap(code, message string, err error) *SkilletError {
	return &SkilletError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted SkilletError.
func Wrapf(code string, err error, format string, args ...any) *SkilletError {
	return &SkilletError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// --- Config Errors ---

// ConfigNoHome creates an error for an unresolvable home directory.
func ConfigNoHome(err error) *SkilletError {
	return Wrap(CodeConfigNoHome, "home directory cannot be determined", err)
}

// ConfigInvalidValue creates an error for an invalid config value.
func ConfigInvalidValue(field string, value any, reason string) *SkilletError {
	return Newf(CodeConfigInvalidValue, "invalid config value for %s: %s", field, reason).
		WithDetail("field", field).
		WithDetail("value", value).
		WithDetail("reason", reason)
}

// --- Source Errors ---

// SourceUnsupported creates an error for a source that cannot be resolved.
func SourceUnsupported(source string) *SkilletError {
	return Newf(CodeSourceUnsupported, "cannot resolve install source: %s", source).
		WithDetail("source", source)
}

// SourceInvalidShorthand creates an error for a malformed GitHub shorthand.
func SourceInvalidShorthand(source string) *SkilletError {
	return Newf(CodeSourceInvalidShorthand, "not a valid owner/repo shorthand: %s", source).
		WithDetail("source", source)
}

// --- Path Errors ---

// PathUnsafe creates an error for a containment violation.
// This is security-relevant: it means either malicious input or a bug in
// path construction, and the install must abort with no partial write.
func PathUnsafe(target, base string) *SkilletError {
	return Newf(CodePathUnsafe, "refusing to write outside %s", base).
		WithDetail("target", target).
		WithDetail("base", base)
}

// --- Fetch Errors ---

// FetchCloneFailed creates an error for a failed git clone.
func FetchCloneFailed(repoURL string, err error) *SkilletError {
	return Wrap(CodeFetchCloneFailed, "failed to clone repository", err).
		WithDetail("repo_url", repoURL)
}

// FetchSubpathAbsent creates an error for a missing subpath in a fetched repo.
func FetchSubpathAbsent(repoURL, subpath string) *SkilletError {
	return Newf(CodeFetchSubpathAbsent, "path %q not found in repository", subpath).
		WithDetail("repo_url", repoURL).
		WithDetail("subpath", subpath)
}

// --- IO Errors ---

// IONotFound creates an error for a missing file or directory.
func IONotFound(path string) *SkilletError {
	return Newf(CodeIONotFound, "not found: %s", path).
		WithDetail("path", path)
}

// IOCopyError creates an error for a failed copy.
func IOCopyError(src, dst string, err error) *SkilletError {
	return Wrap(CodeIOCopyError, "failed to copy skill files", err).
		WithDetail("src", src).
		WithDetail("dst", dst)
}

// HasCode checks if an error is a SkilletError with the given code.
// It handles wrapped errors by unwrapping to find a SkilletError.
func HasCode(err error, code string) bool {
	var serr *SkilletError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// Code returns the error code if err is a SkilletError, empty string otherwise.
// It handles wrapped errors by unwrapping to find a SkilletError.
func Code(err error) string {
	var serr *SkilletError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ""
}
