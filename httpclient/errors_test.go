package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrCodeTimeout:    "timeout",
		ErrCodeConnection: "connection",
		ErrCodeEncode:     "encode",
		ErrorCode(99):     "unknown",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("code %d: expected %q, got %q", code, want, got)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewConnectionError(cause)
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
}

func TestPredicates(t *testing.T) {
	timeout := NewTimeoutError(errors.New("deadline exceeded"))
	conn := NewConnectionError(errors.New("refused"))
	enc := NewEncodeError("bad body")

	if !IsTimeout(timeout) || IsTimeout(conn) {
		t.Error("IsTimeout misclassified")
	}
	if !IsConnection(conn) || IsConnection(timeout) {
		t.Error("IsConnection misclassified")
	}
	for _, err := range []error{timeout, conn, enc} {
		if !IsTransport(err) {
			t.Errorf("expected IsTransport for %v", err)
		}
	}
	if IsTransport(errors.New("plain")) {
		t.Error("plain errors are not transport errors")
	}

	// Predicates see through wrapping.
	wrapped := fmt.Errorf("call failed: %w", timeout)
	if !IsTimeout(wrapped) {
		t.Error("expected IsTimeout through wrapping")
	}
}
