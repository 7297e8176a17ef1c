package rest

import (
	"fmt"
	"net/http"
)

// Status is an HTTP status code with a symbolic name.
type Status int

// Common expectations. Any http.Status* constant converts directly:
// rest.Status(http.StatusForbidden).
const (
	StatusOK        = Status(http.StatusOK)
	StatusCreated   = Status(http.StatusCreated)
	StatusNoContent = Status(http.StatusNoContent)
	StatusNotFound  = Status(http.StatusNotFound)
)

// Code returns the numeric status code.
func (s Status) Code() int {
	return int(s)
}

// String returns the code with its standard reason phrase, e.g. "201 Created".
func (s Status) String() string {
	if text := http.StatusText(int(s)); text != "" {
		return fmt.Sprintf("%d %s", int(s), text)
	}
	return fmt.Sprintf("%d", int(s))
}
