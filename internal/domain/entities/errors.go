package entities

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingCredential is returned when HUB_USER or HUB_PAT is not set.
	ErrMissingCredential = errors.New("missing credential")
	// ErrMissingToken is returned when DOCKER_HUB_TOKEN is not set.
	ErrMissingToken = errors.New("DOCKER_HUB_TOKEN environment variable must be set")
	// ErrMalformedResponse is returned when a 200 login response carries no token.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrMissingFile is the kind of a FileError for a path that does not exist.
	ErrMissingFile = errors.New("file not found")
	// ErrEmptyFile is the kind of a FileError for a file with only whitespace.
	ErrEmptyFile = errors.New("file is empty")
)

const maxBodySnippet = 200

// transientStatusCodes are the server errors worth another login attempt.
//
//nolint:gochecknoglobals // read-only lookup table
var transientStatusCodes = map[int]bool{
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// AuthError is a failed login. StatusCode is 0 when no response was received.
type AuthError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AuthError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("failed to login: %d - %s", e.StatusCode, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Transient reports whether the login is worth retrying: 5xx gateway-type
// failures and network errors are, anything else (401, 403, ...) is not.
func (e *AuthError) Transient() bool {
	return e.StatusCode == 0 || transientStatusCodes[e.StatusCode]
}

// IsTransient reports whether err carries a transient AuthError.
func IsTransient(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Transient()
}

// ExhaustedRetriesError wraps the last error after every attempt failed.
type ExhaustedRetriesError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("Docker Hub login failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedRetriesError) Unwrap() error {
	return e.Err
}

// FileError names the input file that failed validation.
type FileError struct {
	Kind error // ErrMissingFile or ErrEmptyFile
	Path string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Kind
}

// PublishError is a non-2xx answer to the description PATCH.
type PublishError struct {
	StatusCode int
	Body       string
}

// NewPublishError keeps at most 200 characters of the response body.
func NewPublishError(statusCode int, body string) *PublishError {
	return &PublishError{StatusCode: statusCode, Body: Snippet(body)}
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to upload description (HTTP %d): %s", e.StatusCode, e.Body)
}

// UploadError is any failure of the logo upload. StatusCode is 0 when the
// request never got a response (read or transport failure).
type UploadError struct {
	StatusCode int
	Err        error
}

func (e *UploadError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("logo upload failed: %v", e.Err)
	}
	return fmt.Sprintf("logo upload failed: %d", e.StatusCode)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Snippet cuts a response body to 200 characters for diagnostics.
func Snippet(body string) string {
	runes := []rune(body)
	if len(runes) <= maxBodySnippet {
		return body
	}
	return string(runes[:maxBodySnippet]) + "..."
}
