package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of a Betfair API error.
type ErrorType int

const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeAuthFailure indicates the identity service rejected the login or keep-alive.
	// It is an expected outcome, not an infrastructure fault.
	ErrorTypeAuthFailure
	// ErrorTypeServerError indicates a non-2xx HTTP status.
	ErrorTypeServerError
	// ErrorTypeEmptyResponse indicates a 2xx response without a body.
	ErrorTypeEmptyResponse
	// ErrorTypeDecode indicates the body did not match the expected shape.
	ErrorTypeDecode
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	if t < ErrorTypeUnknown || t > ErrorTypeDecode {
		return "UNKNOWN"
	}
	return [...]string{
		"UNKNOWN",
		"AUTH_FAILURE",
		"SERVER_ERROR",
		"EMPTY_RESPONSE",
		"DECODE",
	}[t]
}

var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrMissingSessionToken is returned when an operation is built without a session token.
	ErrMissingSessionToken = errors.New("session token is required")
	// ErrMissingApplicationKey is returned when a request is built without an application key.
	ErrMissingApplicationKey = errors.New("application key is required")
	// ErrNoCredentials is returned when login is attempted without credentials.
	ErrNoCredentials = errors.New("no credentials configured")
)

// APIError is the single error variant surfaced for every failed Betfair exchange.
type APIError struct {
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status of the response, zero when not applicable.
	StatusCode int `json:"status_code"`
	// Code is the Betfair error code, or the loginStatus for auth failures.
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	// Body is the raw response body (or status text when the body was empty).
	Body      string    `json:"body,omitempty"`
	Operation string    `json:"operation,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Err       error     `json:"-"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Operation != "" {
		return e.Operation + ": " + msg
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// WithCode sets the Betfair error code and returns the error for chaining.
func (e *APIError) WithCode(code ErrorCode) *APIError {
	e.Code = string(code)
	return e
}

// NewAuthFailure creates an auth failure carrying the status reported by the identity service.
func NewAuthFailure(operation, status string) *APIError {
	return &APIError{
		Type:      ErrorTypeAuthFailure,
		Code:      status,
		Message:   fmt.Sprintf("login status: %s", status),
		Operation: operation,
		Timestamp: time.Now(),
	}
}

// NewServerError creates the error for a non-2xx response. The message embeds the
// status code and reason verbatim.
func NewServerError(operation string, statusCode int, reason string) *APIError {
	return &APIError{
		Type:       ErrorTypeServerError,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("Response code: %d, reason: %s", statusCode, reason),
		Body:       reason,
		Operation:  operation,
		Timestamp:  time.Now(),
	}
}

// NewEmptyResponseError creates the error for a 2xx response without a body.
func NewEmptyResponseError(operation string, statusCode int) *APIError {
	return &APIError{
		Type:       ErrorTypeEmptyResponse,
		StatusCode: statusCode,
		Message:    "Response body is null",
		Operation:  operation,
		Timestamp:  time.Now(),
	}
}

// NewDecodeError creates the error for a body that could not be decoded into the expected type.
func NewDecodeError(operation string, statusCode int, body []byte, err error) *APIError {
	return &APIError{
		Type:       ErrorTypeDecode,
		StatusCode: statusCode,
		Message:    "decode response",
		Body:       string(body),
		Operation:  operation,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

func hasType(err error, t ErrorType) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == t
	}
	return false
}

// IsAuthFailure returns true if the identity service rejected the credentials or session.
func IsAuthFailure(err error) bool {
	return hasType(err, ErrorTypeAuthFailure)
}

// IsServerError returns true if the error came from a non-2xx response.
func IsServerError(err error) bool {
	return hasType(err, ErrorTypeServerError)
}

// IsEmptyResponse returns true if a 2xx response carried no body.
func IsEmptyResponse(err error) bool {
	return hasType(err, ErrorTypeEmptyResponse)
}

// IsDecodeError returns true if the response body did not match the expected shape.
func IsDecodeError(err error) bool {
	return hasType(err, ErrorTypeDecode)
}

// IsSessionError returns true if the caller should log in again: either a rejected
// login/keep-alive or an operation refused because of the session token.
func IsSessionError(err error) bool {
	return IsAuthFailure(err) ||
		IsErrorCode(err, ErrCodeInvalidSessionInformation) ||
		IsErrorCode(err, ErrCodeNoSession)
}
