package rest

import (
	"encoding/json"
	"fmt"

	"github.com/kbukum/restkit/httpclient"
)

// ValidatedResponse wraps a transport response whose status has been checked
// against an expectation. It is produced and consumed within a single call
// chain; callers should extract what they need and drop it.
type ValidatedResponse struct {
	resp *httpclient.Response
}

// validate checks the response status against the expectation and wraps it.
// A mismatch returns a *StatusError carrying both codes.
func validate(resp *httpclient.Response, want Status) (*ValidatedResponse, error) {
	if resp.StatusCode != int(want) {
		return nil, &StatusError{
			Want: want,
			Got:  Status(resp.StatusCode),
			Body: resp.Body,
		}
	}
	return &ValidatedResponse{resp: resp}, nil
}

// Status returns the (already validated) response status.
func (r *ValidatedResponse) Status() Status {
	return Status(r.resp.StatusCode)
}

// Header returns a response header value, or "" if absent.
func (r *ValidatedResponse) Header(key string) string {
	return r.resp.Header(key)
}

// Body returns the raw response body.
func (r *ValidatedResponse) Body() []byte {
	return r.resp.Body
}

// Decode unmarshals the response body into v. Failure surfaces as a
// *DecodeError naming the target type with a truncated payload excerpt;
// it is never swallowed.
func (r *ValidatedResponse) Decode(v any) error {
	if err := json.Unmarshal(r.resp.Body, v); err != nil {
		return &DecodeError{
			Target:  fmt.Sprintf("%T", v),
			Excerpt: excerpt(r.resp.Body),
			Err:     err,
		}
	}
	return nil
}
