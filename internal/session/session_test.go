package session

import (
	"net/http/httptest"
	"testing"
)

func TestMintUniqueOpaque(t *testing.T) {
	a := Mint()
	b := Mint()
	if a == "" || b == "" {
		t.Fatalf("expected non-empty tokens")
	}
	if a == b {
		t.Fatalf("expected unique tokens, got %q twice", a)
	}
}

func TestFromRequestPrefersExplicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/cart", nil)
	if got := FromRequest("sess-42", r); got != "sess-42" {
		t.Fatalf("expected explicit id, got %q", got)
	}
}

func TestFromRequestFallsBackToClientAddress(t *testing.T) {
	r := httptest.NewRequest("GET", "/cart", nil)
	r.RemoteAddr = "203.0.113.7:54321"
	if got := FromRequest("", r); got != "203.0.113.7" {
		t.Fatalf("expected address-derived key, got %q", got)
	}
	r.RemoteAddr = "bare-host"
	if got := FromRequest("", r); got != "bare-host" {
		t.Fatalf("expected raw remote addr, got %q", got)
	}
}
