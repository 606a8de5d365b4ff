package upload

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotLoggedIn indicates a missing or expired session.
	ErrNotLoggedIn = errors.New("not logged in or session expired")
	// ErrNoReports indicates an upload with nothing to send.
	ErrNoReports = errors.New("no reports to upload")
	// ErrTimeout indicates the server did not answer in time.
	ErrTimeout = errors.New("request timed out")
	// ErrConnection indicates the server could not be reached.
	ErrConnection = errors.New("cannot connect to server")
	// ErrNoToken indicates a successful login response without a token.
	ErrNoToken = errors.New("server returned no token")
)

// APIError is a failure reported by the server, either as an HTTP status or
// as a non-success envelope code.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode < 200 || e.StatusCode > 299 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// Unauthorized reports whether the server rejected the credentials.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// statusMessage describes an HTTP status whose body carried no message.
func statusMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "unauthorized or session expired"
	case http.StatusForbidden:
		return "permission denied"
	case http.StatusNotFound:
		return "API endpoint not found"
	case http.StatusInternalServerError:
		return "internal server error"
	default:
		return http.StatusText(status)
	}
}
