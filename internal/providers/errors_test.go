package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchErrorString(t *testing.T) {
	err := &FetchError{
		Source:     "madden",
		StatusCode: 503,
		Message:    "upstream unavailable",
	}
	if got := err.Error(); !strings.Contains(got, "madden") || !strings.Contains(got, "status=503") {
		t.Fatalf("expected source and status in error string, got %q", got)
	}

	fe, ok := AsFetchError(fmt.Errorf("wrapped: %w", err))
	if !ok || fe == nil || fe.StatusCode != 503 {
		t.Fatalf("expected to unwrap fetch error")
	}

	noStatus := &FetchError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestWrapFetchError(t *testing.T) {
	if WrapFetchError("pff", nil) != nil {
		t.Fatalf("expected nil passthrough")
	}

	wrapped := WrapFetchError("pff", context.DeadlineExceeded)
	fe, ok := AsFetchError(wrapped)
	if !ok || fe.Source != "pff" {
		t.Fatalf("expected source-tagged fetch error, got %v", wrapped)
	}
	if !errors.Is(wrapped, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be preserved")
	}

	existing := &FetchError{StatusCode: 500}
	if got := WrapFetchError("injuries", existing); got != existing || existing.Source != "injuries" {
		t.Fatalf("expected existing fetch error to be reused and tagged")
	}
}
