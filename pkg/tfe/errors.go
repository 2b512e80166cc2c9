package tfe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorSource identifies the part of the request document an error refers to.
type ErrorSource struct {
	Pointer   string `json:"pointer,omitempty"   yaml:"pointer,omitempty"`
	Parameter string `json:"parameter,omitempty" yaml:"parameter,omitempty"`
}

// ErrorObject is a single entry of a JSON:API errors array.
type ErrorObject struct {
	Status string       `json:"status,omitempty" yaml:"status,omitempty"`
	Title  string       `json:"title,omitempty"  yaml:"title,omitempty"`
	Detail string       `json:"detail,omitempty" yaml:"detail,omitempty"`
	Source *ErrorSource `json:"source,omitempty" yaml:"source,omitempty"`
}

func (e ErrorObject) String() string {
	switch {
	case e.Title != "" && e.Detail != "":
		return e.Title + ": " + e.Detail
	case e.Detail != "":
		return e.Detail
	case e.Title != "":
		return e.Title
	default:
		return "unknown error"
	}
}

// APIError is the decoded form of a non-2xx response. The concrete error
// returned to callers is always one of the typed wrappers below; APIError is
// embedded so errors.As against *APIError matches any of them.
type APIError struct {
	StatusCode int           `json:"status_code" yaml:"status_code"`
	Errors     []ErrorObject `json:"errors"      yaml:"errors"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}

	parts := make([]string, 0, len(e.Errors))
	for _, eo := range e.Errors {
		parts = append(parts, eo.String())
	}

	return fmt.Sprintf("%s (status %d)", strings.Join(parts, "; "), e.StatusCode)
}

// FirstError returns the first error object or nil.
func (e *APIError) FirstError() *ErrorObject {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// AuthError is returned for 401 and 403 responses. Never retried.
type AuthError struct {
	APIError
}

// NotFoundError is returned for 404 responses. Never retried.
type NotFoundError struct {
	APIError
}

// ValidationError is returned for 422 responses and preserves the
// field-level detail from the errors array.
type ValidationError struct {
	APIError
}

// FieldErrors groups validation messages by the attribute the source pointer
// names, e.g. "/data/attributes/name" -> "name". Errors without a pointer are
// grouped under the empty key.
func (e *ValidationError) FieldErrors() map[string][]string {
	fields := make(map[string][]string)

	for _, eo := range e.Errors {
		field := ""
		if eo.Source != nil && eo.Source.Pointer != "" {
			parts := strings.Split(eo.Source.Pointer, "/")
			field = parts[len(parts)-1]
		}

		fields[field] = append(fields[field], eo.String())
	}

	return fields
}

// RateLimitError is returned for 429 responses once the retry budget is
// exhausted. RetryAfter carries the server-suggested delay if one was sent.
type RateLimitError struct {
	APIError

	RetryAfter time.Duration `json:"retry_after,omitempty" yaml:"retry_after,omitempty"`
}

// ServerError is returned for 5xx responses once the retry budget is
// exhausted.
type ServerError struct {
	APIError
}

// DecodeError is returned when a response body cannot be decoded. A malformed
// payload is terminal: retrying cannot fix it.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decoding response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TimeoutError is returned when the per-call deadline elapses, including
// mid-retry: remaining attempts are abandoned.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return "request timed out: " + e.Err.Error()
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrAddressRequired   = errors.New("address is required")
	ErrTokenRequired     = errors.New("API token is required")
	ErrInvalidAddress    = errors.New("address must include protocol (http/https)")
	ErrNoMoreItems       = errors.New("no more items")
	ErrInvalidResourceID = errors.New("invalid resource ID")
	ErrInvalidOrg        = errors.New("invalid organization name")
	ErrWorkspaceRequired = errors.New("workspace ID is required")
	ErrRunRequired       = errors.New("run ID is required")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError

	return errors.As(err, &nf)
}

// IsUnauthorized checks if the error is an authentication or authorization
// failure (401 or 403).
func IsUnauthorized(err error) bool {
	var ae *AuthError

	return errors.As(err, &ae)
}

// IsValidation checks if the error carries field-level validation detail.
func IsValidation(err error) bool {
	var ve *ValidationError

	return errors.As(err, &ve)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	var re *RateLimitError

	return errors.As(err, &re)
}

// IsServerError checks if the error is a server-side failure.
func IsServerError(err error) bool {
	var se *ServerError

	return errors.As(err, &se)
}

// IsTimeout checks if the error is a timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError

	return errors.As(err, &te)
}

// IsDecode checks if the error is a malformed-payload error.
func IsDecode(err error) bool {
	var de *DecodeError

	return errors.As(err, &de)
}

// ParseErrorObjects decodes a JSON:API errors payload. A body that is empty or
// not an errors document yields an empty slice, not an error: classification
// must still succeed from the status code alone.
func ParseErrorObjects(data []byte) []ErrorObject {
	if len(data) == 0 {
		return nil
	}

	var doc struct {
		Errors []ErrorObject `json:"errors"`
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	return doc.Errors
}

// ClassifyResponse maps a non-2xx status and body to the typed error for that
// status. retryAfter applies only to 429 responses.
func ClassifyResponse(statusCode int, body []byte, retryAfter time.Duration) error {
	apiErr := APIError{
		StatusCode: statusCode,
		Errors:     ParseErrorObjects(body),
	}

	switch {
	case statusCode == 401 || statusCode == 403:
		return &AuthError{APIError: apiErr}
	case statusCode == 404:
		return &NotFoundError{APIError: apiErr}
	case statusCode == 422:
		return &ValidationError{APIError: apiErr}
	case statusCode == 429:
		return &RateLimitError{APIError: apiErr, RetryAfter: retryAfter}
	case statusCode >= 500:
		return &ServerError{APIError: apiErr}
	default:
		return &apiErr
	}
}
