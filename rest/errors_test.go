package rest

import (
	"errors"
	"strings"
	"testing"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Want: StatusCreated, Got: StatusNotFound, Body: []byte(`{}`)}
	msg := err.Error()
	if !strings.Contains(msg, "201 Created") || !strings.Contains(msg, "404 Not Found") {
		t.Errorf("expected both codes in message, got %q", msg)
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{Target: "*rest.note", Excerpt: `{"id":`, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
	if !strings.Contains(err.Error(), "*rest.note") {
		t.Errorf("expected target type in message, got %q", err.Error())
	}
}

func TestExcerptTruncation(t *testing.T) {
	long := strings.Repeat("x", maxExcerpt+100)
	got := excerpt([]byte(long))
	if len(got) != maxExcerpt+3 {
		t.Errorf("expected truncated excerpt, got %d bytes", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("expected ellipsis suffix")
	}

	short := "short"
	if excerpt([]byte(short)) != short {
		t.Error("short payloads pass through unchanged")
	}
}
