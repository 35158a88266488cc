package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNetworkErrorMessageIncludesStatus(t *testing.T) {
	err := &NetworkError{Provider: "gmsfeed", Message: "unexpected status", StatusCode: 503}
	if got := err.Error(); !strings.Contains(got, "status=503") {
		t.Fatalf("expected status in message, got %s", got)
	}
}

func TestNetworkErrorUnwraps(t *testing.T) {
	inner := errors.New("dial tcp: timeout")
	wrapped := fmt.Errorf("fetch failed: %w", &NetworkError{Provider: "gmsfeed", Err: inner})

	netErr, ok := AsNetworkError(wrapped)
	if !ok {
		t.Fatalf("expected AsNetworkError to match wrapped error")
	}
	if !errors.Is(netErr, inner) {
		t.Fatalf("expected inner error to be preserved")
	}
}

func TestParseErrorMessageIncludesField(t *testing.T) {
	err := &ParseError{Provider: "gmsfeed", Message: "missing required field", Field: "date"}
	if got := err.Error(); !strings.Contains(got, "field=date") {
		t.Fatalf("expected field in message, got %s", got)
	}
}

func TestAsParseErrorRejectsOtherKinds(t *testing.T) {
	if _, ok := AsParseError(&NetworkError{Provider: "gmsfeed"}); ok {
		t.Fatalf("expected network error to not match AsParseError")
	}
	if _, ok := AsNetworkError(&ParseError{Provider: "gmsfeed"}); ok {
		t.Fatalf("expected parse error to not match AsNetworkError")
	}
}
