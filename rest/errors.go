package rest

import (
	"errors"
	"fmt"
)

// maxExcerpt bounds the payload excerpt carried by DecodeError.
const maxExcerpt = 256

// StatusError reports that a response arrived with a status other than the
// expected one. It carries both codes and the response body, and is the
// primary assertion failure test code observes.
type StatusError struct {
	// Want is the expected status.
	Want Status
	// Got is the status the server actually returned.
	Got Status
	// Body is the raw response body, kept for diagnostics.
	Body []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("rest: unexpected status: want %s, got %s", e.Want, e.Got)
}

// PathError reports a placeholder/value count mismatch when expanding a path
// template. This is a programmer error and fails before any network call.
type PathError struct {
	// Template is the offending template.
	Template Template
	// Want is the number of placeholders in the template.
	Want int
	// Got is the number of substitution values supplied.
	Got int
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("rest: template %q has %d placeholder(s), got %d value(s)", string(e.Template), e.Want, e.Got)
}

// DecodeError reports that a response body could not be decoded into the
// expected type. It names the target type and carries a truncated excerpt of
// the offending payload.
type DecodeError struct {
	// Target is the name of the type the body was decoded into.
	Target string
	// Excerpt is the start of the malformed payload, truncated to a few
	// hundred bytes.
	Excerpt string
	// Err is the underlying decoding error.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("rest: decode into %s: %v (payload: %s)", e.Target, e.Err, e.Excerpt)
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsUnexpectedStatus checks if an error is a status mismatch.
func IsUnexpectedStatus(err error) bool {
	var e *StatusError
	return errors.As(err, &e)
}

// IsPathError checks if an error is a template substitution error.
func IsPathError(err error) bool {
	var e *PathError
	return errors.As(err, &e)
}

// IsDecodeError checks if an error is a payload decoding error.
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// excerpt truncates a payload for inclusion in error messages.
func excerpt(body []byte) string {
	if len(body) > maxExcerpt {
		return string(body[:maxExcerpt]) + "..."
	}
	return string(body)
}
