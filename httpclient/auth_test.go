package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func authHeaderServer(t *testing.T, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		check(r)
	}))
}

func TestBearerAuth(t *testing.T) {
	srv := authHeaderServer(t, func(r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected auth header %q", got)
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: BearerAuth("tok-123")})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatal(err)
	}
}

func TestBasicAuth(t *testing.T) {
	srv := authHeaderServer(t, func(r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "qa" || pass != "secret" {
			t.Errorf("unexpected basic auth %q %q %v", user, pass, ok)
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: BasicAuth("qa", "secret")})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatal(err)
	}
}

func TestAPIKeyAuthQuery(t *testing.T) {
	srv := authHeaderServer(t, func(r *http.Request) {
		if got := r.URL.Query().Get("api_key"); got != "k-1" {
			t.Errorf("unexpected api key %q", got)
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: APIKeyAuthQuery("k-1", "api_key")})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatal(err)
	}
}

func TestRequestAuthOverridesClientAuth(t *testing.T) {
	srv := authHeaderServer(t, func(r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer per-call" {
			t.Errorf("unexpected auth header %q", got)
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: BearerAuth("client-level")})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/",
		Auth:   BearerAuth("per-call"),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "qa",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestBearerFallback_ExpiredJWT(t *testing.T) {
	expired := signedToken(t, time.Now().Add(-time.Hour))

	srv := authHeaderServer(t, func(r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer fallback-key" {
			t.Errorf("expected fallback key, got %q", got)
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: BearerAuthWithFallback(expired, "fallback-key")})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatal(err)
	}
}

func TestBearerFallback_ValidJWT(t *testing.T) {
	valid := signedToken(t, time.Now().Add(time.Hour))

	srv := authHeaderServer(t, func(r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer "+valid {
			t.Errorf("expected live token, got %q", got)
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: BearerAuthWithFallback(valid, "fallback-key")})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatal(err)
	}
}

func TestBearerFallback_OpaqueToken(t *testing.T) {
	// Tokens that do not parse as JWTs are sent as-is.
	if tokenExpired("opaque-token") {
		t.Error("opaque tokens must not be treated as expired")
	}
}
