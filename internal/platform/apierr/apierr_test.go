package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFrom(t *testing.T) {
	base := errors.New("boom")

	wrapped := fmt.Errorf("submit: %w", New(http.StatusBadRequest, CodeMissingFields, base))
	got := From(wrapped)
	if got.Status != http.StatusBadRequest || got.Code != CodeMissingFields {
		t.Fatalf("From(wrapped apierr): got=%+v", got)
	}
	if !errors.Is(got, base) {
		t.Fatalf("expected Unwrap to reach base error")
	}

	plain := From(base)
	if plain.Status != http.StatusInternalServerError || plain.Code != CodeInternal {
		t.Fatalf("From(plain): got=%+v", plain)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	if (&Error{Code: CodeNotFound}).Error() != CodeNotFound {
		t.Fatalf("expected code as message")
	}
	if (&Error{Status: 418}).Error() != "api error (418)" {
		t.Fatalf("expected status message")
	}
	var nilErr *Error
	if nilErr.Error() != "" {
		t.Fatalf("nil error should render empty")
	}
}
