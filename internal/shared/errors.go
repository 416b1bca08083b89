package shared

import (
	"errors"
	"fmt"
)

// RequestError is used when we want a specific error message and StatusCode
// returned to the caller. Sane defaults are listed below. Errors that should
// show the user a generic message while keeping detail for logs and traces
// belong in ServiceError instead.
type RequestError struct {
	StatusCode int
	Err        error
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status %d: err %v", r.StatusCode, r.Err)
}

var (
	ErrMissingAuth   = &RequestError{Err: errors.New("missing authorization header"), StatusCode: 401}
	ErrInvalidFormat = &RequestError{Err: errors.New("invalid authentication format"), StatusCode: 401}
	ErrUnauthorized  = &RequestError{Err: errors.New("unauthorized"), StatusCode: 401}

	ErrInvalidRequest = &RequestError{Err: errors.New("invalid request body"), StatusCode: 400}
	ErrMissingMessage = &RequestError{Err: errors.New("message is required"), StatusCode: 400}
)

// ErrorKind tags the failure modes of one outbound LLM invocation. A kind is
// terminal for its request; nothing retries.
type ErrorKind int

const (
	KindCallFailed ErrorKind = iota
	KindEmptyResponse
	KindMalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindCallFailed:
		return "failed to call LLM provider"
	case KindEmptyResponse:
		return "empty response from LLM"
	case KindMalformedResponse:
		return "unexpected LLM response structure"
	default:
		return "unknown LLM error"
	}
}

// Code returns the short label used for metrics and trace metadata.
func (k ErrorKind) Code() string {
	switch k {
	case KindCallFailed:
		return "call_failed"
	case KindEmptyResponse:
		return "empty_response"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// ServiceError is the tagged union carried up from the invocation service.
// It is converted to a response exactly once, at the outermost boundary.
type ServiceError struct {
	Kind  ErrorKind
	Cause error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return e.Kind.String()
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func NewCallFailed(cause error) *ServiceError {
	return &ServiceError{Kind: KindCallFailed, Cause: cause}
}

func NewEmptyResponse() *ServiceError {
	return &ServiceError{Kind: KindEmptyResponse}
}

func NewMalformedResponse(cause error) *ServiceError {
	return &ServiceError{Kind: KindMalformedResponse, Cause: cause}
}
