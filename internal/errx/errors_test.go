package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	if got := StatusOf(Validation("bad input")); got != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got)
	}
	if got := StatusOf(NotFound("missing")); got != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got)
	}
	if got := StatusOf(Integrity(errors.New("boom"), "broken")); got != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got)
	}
	if got := StatusOf(errors.New("plain")); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 for plain error, got %d", got)
	}
}

func TestMessageOfNeverLeaksCause(t *testing.T) {
	cause := errors.New("cart item x references product y")
	err := Integrity(cause, "cart integrity violation")
	if got := MessageOf(err); got != "cart integrity violation" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := MessageOf(cause); got != SystemErrorMessage {
		t.Fatalf("expected generic message, got %q", got)
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := errors.New("root")
	err := fmt.Errorf("joining cart: %w", Integrity(cause, "cart integrity violation"))
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
	var ae *AppError
	if !errors.As(err, &ae) || ae.Status != http.StatusInternalServerError {
		t.Fatalf("expected AppError in chain, got %+v", ae)
	}
}
