package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestTokenManager_RoundTrip verifies a created token verifies back to the
// same subject.
func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	tok, err := m.CreateAccessToken("alice")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	sub, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sub != "alice" {
		t.Fatalf("subject = %q, want alice", sub)
	}
}

// TestTokenManager_WrongSecret verifies tokens signed with a different secret
// are rejected.
func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Minute)
	verifier := NewTokenManager("secret-b", time.Minute)

	tok, err := issuer.CreateAccessToken("alice")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	if _, err := verifier.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify error = %v, want ErrInvalidToken", err)
	}
}

// TestTokenManager_Expired verifies expiry is enforced.
func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	tok, err := m.CreateAccessToken("alice")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify error = %v, want ErrInvalidToken", err)
	}
}

// TestTokenManager_Garbage verifies malformed input is rejected.
func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", tok, err)
		}
	}
}

// TestRequireBearer verifies the gate passes valid tokens and rejects the
// rest, and that the disabled gate passes everything through.
func TestRequireBearer(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("disabled passes through", func(t *testing.T) {
		h := RequireBearer(m, false)(ok)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		h := RequireBearer(m, true)(ok)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if w.Header().Get("WWW-Authenticate") != "Bearer" {
			t.Fatal("WWW-Authenticate header missing")
		}
		if !strings.Contains(w.Body.String(), "Not authenticated") {
			t.Fatalf("body = %q", w.Body.String())
		}
	})

	t.Run("bad token", func(t *testing.T) {
		h := RequireBearer(m, true)(ok)
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		tok, err := m.CreateAccessToken("alice")
		if err != nil {
			t.Fatalf("CreateAccessToken: %v", err)
		}
		h := RequireBearer(m, true)(ok)
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})
}
