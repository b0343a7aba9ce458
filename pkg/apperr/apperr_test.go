package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: Validationf("bad input"), want: http.StatusBadRequest},
		{name: "business rule", err: BusinessRulef("credit limit exceeded"), want: http.StatusBadRequest},
		{name: "not found", err: NotFoundf("order not found"), want: http.StatusNotFound},
		{name: "unexpected", err: Unexpected("db down", errors.New("conn refused")), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if got := Message(NotFoundf("order %d not found", 7)); got != "order 7 not found" {
		t.Errorf("Message() = %q", got)
	}
	// Plain errors never leak internals to the caller
	if got := Message(errors.New("pq: relation does not exist")); got != "Internal server error" {
		t.Errorf("Message() = %q, want generic message", got)
	}
}

func TestUnexpectedWrapping(t *testing.T) {
	cause := errors.New("conn refused")
	err := Unexpected("db down", cause)

	if !errors.Is(err, cause) {
		t.Error("Unexpected() should wrap the cause")
	}
	if err.Error() != "db down: conn refused" {
		t.Errorf("Error() = %q", err.Error())
	}

	// Classification survives further wrapping
	wrapped := fmt.Errorf("handler: %w", NotFoundf("gone"))
	if KindOf(wrapped) != KindNotFound {
		t.Errorf("KindOf(wrapped) = %v, want KindNotFound", KindOf(wrapped))
	}
}
