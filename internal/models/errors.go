package models

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrUnknownSortColumn = errors.New("unknown sort column")
	ErrInvalidPageSize   = errors.New("invalid page size")
	ErrNoProductSelected = errors.New("no product selected")
)

// RequestError is a failed call to the remote catalog, either a transport
// error (Err set) or a non-2xx response (Status and Body set).
type RequestError struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Message returns a human readable reason, preferring the remote "message"
// field of a JSON error body.
func (e *RequestError) Message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if gjson.Valid(e.Body) {
		msg := gjson.Get(e.Body, "message")
		if msg.IsArray() {
			parts := msg.Array()
			if len(parts) > 0 {
				return parts[0].String()
			}
		} else if msg.String() != "" {
			return msg.String()
		}
	}
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("status %d", e.Status)
}

// IsRequestError reports whether err is a failed remote call.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// ValidationError is a form constraint violated before any request is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingRequiredFields = &ValidationError{Message: "missing required fields"}
	ErrPriceNotPositive      = &ValidationError{Message: "price must be positive"}
	ErrInvalidCategory       = &ValidationError{Message: "invalid category"}
)

// IsValidationError reports whether err is a form validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
