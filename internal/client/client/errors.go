package client

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/stockkeeper/internal/client/validate"
)

var (
	// ErrUnauthenticated is returned before any I/O when no token is present.
	ErrUnauthenticated = errors.New("authentication token not found")
	// ErrUnavailable wraps transport-level failures.
	ErrUnavailable = errors.New("server unavailable")
	// ErrRequestFailed is matched by every *RequestError.
	ErrRequestFailed = errors.New("request failed")
)

// RequestError is a non-2xx response, or a 2xx body that could not be decoded.
// Message is the server-supplied message when one was parseable.
type RequestError struct {
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

func (e *RequestError) Unwrap() error { return e.Err }

const unreachableMessage = "Unable to reach the server. Please try again."

// UserMessage renders err as the single line shown to the user.
func UserMessage(err error) string {
	var (
		re *RequestError
		ve *validate.Error
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &re):
		return re.Message
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, ErrUnauthenticated):
		return "Authentication token not found"
	case errors.Is(err, ErrUnavailable):
		return unreachableMessage
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Request cancelled"
	default:
		return err.Error()
	}
}
