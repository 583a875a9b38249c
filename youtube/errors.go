package youtube

import (
	"errors"
	"fmt"
)

// Messages surfaced to callers. They are part of the client's public
// contract and callers may compare against them.
const (
	MsgMissingKey = "Please set a key using SetKey. Get a key in https://console.developers.google.com"
	MsgNotFound   = "Not found error"
	MsgForbidden  = "forbidden"
	// MsgRateLimited keeps the historical spelling for string compatibility.
	MsgRateLimited = "Retelimit exceeded"
	MsgUnknown     = "Some kind of error"
)

// ErrMissingKey is matched by errors.Is for validation failures.
var ErrMissingKey = errors.New("youtube API key is not set")

// Kind classifies an Error.
type Kind int

const (
	// KindUnknown covers transport failures and unrecognised responses
	KindUnknown Kind = iota
	// KindValidation is a local failure; no request was sent
	KindValidation
	// KindAPI means the API returned its own error payload
	KindAPI
	// KindNotFound is a 404
	KindNotFound
	// KindForbidden is a 403 caused by an unauthorized request
	KindForbidden
	// KindRateLimited is any other 403
	KindRateLimited
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAPI:
		return "api"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by resource operations.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	// Payload is the API's decoded "error" object, when there was one.
	Payload map[string]any
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsForbidden checks if the API rejected the request as unauthorized
func (e *Error) IsForbidden() bool {
	return e.Kind == KindForbidden
}

// IsRateLimited checks if the API rejected the request for quota reasons
func (e *Error) IsRateLimited() bool {
	return e.Kind == KindRateLimited
}

// ErrorResult is the {"error":{"message":...}} shape of an Error.
type ErrorResult struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody holds the message of an ErrorResult.
type ErrorBody struct {
	Message string `json:"message"`
}

// Result converts the error to its wire shape.
func (e *Error) Result() ErrorResult {
	return ErrorResult{Error: ErrorBody{Message: e.Message}}
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var ytErr *Error
	if errors.As(err, &ytErr) {
		return ytErr, true
	}
	return nil, false
}

func newValidationError() *Error {
	return &Error{
		Kind:    KindValidation,
		Message: MsgMissingKey,
		Err:     ErrMissingKey,
	}
}

func newUnknownError(statusCode int, cause error) *Error {
	if cause == nil {
		cause = fmt.Errorf("unexpected status code: %d", statusCode)
	}
	return &Error{
		Kind:       KindUnknown,
		StatusCode: statusCode,
		Message:    MsgUnknown,
		Err:        cause,
	}
}
