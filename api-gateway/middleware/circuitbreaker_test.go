package middleware

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("middleware-test", false)
	logger.SetLevel("error")
	os.Exit(m.Run())
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker("texhub", 3, 30*time.Second)
	boom := errors.New("backend down")

	for i := 0; i < 3; i++ {
		cb.Call(func() error { return boom })
	}

	if cb.GetState() != StateOpen {
		t.Errorf("state = %q, want open after 3 failures", cb.GetState())
	}

	// Open circuit rejects without invoking the function
	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})
	if err == nil {
		t.Error("open circuit should reject the call")
	}
	if called {
		t.Error("open circuit invoked the protected function")
	}
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker("texhub", 3, 30*time.Second)
	boom := errors.New("backend down")

	cb.Call(func() error { return boom })
	cb.Call(func() error { return boom })
	cb.Call(func() error { return nil })
	cb.Call(func() error { return boom })
	cb.Call(func() error { return boom })

	if cb.GetState() != StateClosed {
		t.Errorf("state = %q, want closed (failures interleaved with success)", cb.GetState())
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker("texhub", 1, 10*time.Millisecond)
	boom := errors.New("backend down")

	cb.Call(func() error { return boom })
	if cb.GetState() != StateOpen {
		t.Fatalf("state = %q, want open", cb.GetState())
	}

	time.Sleep(20 * time.Millisecond)

	// Three successes in half-open close the circuit
	for i := 0; i < 3; i++ {
		if err := cb.Call(func() error { return nil }); err != nil {
			t.Fatalf("half-open call %d rejected: %v", i, err)
		}
	}

	if cb.GetState() != StateClosed {
		t.Errorf("state = %q, want closed after recovery", cb.GetState())
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker("texhub", 1, 10*time.Millisecond)
	boom := errors.New("backend down")

	cb.Call(func() error { return boom })
	time.Sleep(20 * time.Millisecond)

	cb.Call(func() error { return boom })

	if cb.GetState() != StateOpen {
		t.Errorf("state = %q, want reopened after half-open failure", cb.GetState())
	}
}

func TestDetermineServiceFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/orders", want: "texhub"},
		{path: "/api/orders/12", want: "texhub"},
		{path: "/api/stock/low", want: "texhub"},
		{path: "/api/customers/3/credit", want: "texhub"},
		{path: "/api/adjustments", want: "texhub"},
		{path: "/api/returns/5/approve", want: "texhub"},
		{path: "/api/notifications/settings", want: "texhub"},
		{path: "/api/auth/login", want: "texhub"},
		{path: "/health", want: ""},
		{path: "/", want: ""},
	}

	for _, tt := range tests {
		if got := determineServiceFromPath(tt.path); got != tt.want {
			t.Errorf("determineServiceFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
