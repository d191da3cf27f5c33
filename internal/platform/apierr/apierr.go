package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Codes shared between services and the HTTP error envelope.
const (
	CodeMissingFields = "missing_required_fields"
	CodeInvalidID     = "invalid_id"
	CodeNotFound      = "not_found"
	CodeInternal      = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// From extracts the first *Error in err's chain. Anything else is reported
// as an internal error wrapping err.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae
	}
	return New(http.StatusInternalServerError, CodeInternal, err)
}
