package validation

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Level string `json:"level" validate:"omitempty,oneof=low high"`
}

func TestValidateStructTags(t *testing.T) {
	if err := Validate(sample{Name: "ok", Email: "a@b.co", Level: "low"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := Validate(sample{Email: "nope"})
	if err == nil {
		t.Fatal("expected error")
	}
	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if len(ve.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(ve.Fields), ve.Fields)
	}
	// Field names come from json tags.
	if !strings.Contains(err.Error(), "name: is required") {
		t.Errorf("unexpected message: %v", err)
	}
	if !strings.Contains(err.Error(), "email: must be a valid email address") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestValidateOneof(t *testing.T) {
	err := Validate(sample{Name: "ok", Level: "medium"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "must be one of: low high") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestProgrammaticValidator(t *testing.T) {
	v := New()
	v.Required("base_url", "").
		Check(false, "timeout", "must be positive").
		Check(true, "ok", "never reported")

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(v.Errors()))
	}

	err := v.Error()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "base_url: is required") {
		t.Errorf("unexpected message: %v", err)
	}

	clean := New()
	if clean.Error() != nil {
		t.Error("expected nil for a clean validator")
	}
}
