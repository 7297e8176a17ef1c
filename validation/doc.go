// Package validation provides input validation for restkit DTOs and
// configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type Comment struct {
//	    Body  string `json:"body" validate:"required"`
//	    Email string `json:"email" validate:"omitempty,email"`
//	}
//	err := validation.Validate(comment)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("base_url", cfg.BaseURL)
//	err := v.Error()
package validation
