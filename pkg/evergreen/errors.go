package evergreen

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for consistent error handling.
var (
	// ErrInvalidArguments indicates a call was made with an argument
	// combination the API cannot serve. It is raised before any network
	// traffic and is never retried.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrAPIServerRequired indicates no API server URL was configured.
	ErrAPIServerRequired = errors.New("API server URL is required")

	// ErrNoMoreItems is returned by iterators once the sequence is exhausted.
	ErrNoMoreItems = errors.New("no more items")
)

// APIError is a failure the Evergreen server reported explicitly: the
// response carried a JSON body with an "error" field. Message holds the
// server's text verbatim.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("evergreen API error (status %d): %s", e.StatusCode, e.Message)
}

// HTTPError is a failure response without a server-reported message. The
// status code is the only diagnostic the server gave us.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ConnectionError is a transport-level failure: the request never produced
// an HTTP response at all.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is one of the transient kinds the
// retrying client re-attempts: server-reported errors, bare HTTP failures,
// and transport failures. Argument validation errors are not retryable.
func IsRetryable(err error) bool {
	var apiErr *APIError
	var httpErr *HTTPError
	var connErr *ConnectionError
	return errors.As(err, &apiErr) || errors.As(err, &httpErr) || errors.As(err, &connErr)
}

// IsNotFound reports whether err represents a 404 response.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err represents a 401 response.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
