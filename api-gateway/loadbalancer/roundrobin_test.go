package loadbalancer

import (
	"os"
	"testing"

	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("loadbalancer-test", false)
	logger.SetLevel("error")
	os.Exit(m.Run())
}

func TestRoundRobin_Next(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080", "http://b:8080", "http://c:8080"})

	want := []string{
		"http://a:8080", "http://b:8080", "http://c:8080",
		"http://a:8080", "http://b:8080",
	}
	for i, w := range want {
		if got := rr.Next(); got != w {
			t.Errorf("Next() call %d = %q, want %q", i, got, w)
		}
	}
}

func TestRoundRobin_EmptyFallsBackToDefault(t *testing.T) {
	rr := NewRoundRobin(nil)

	if got := rr.Next(); got != "http://localhost:8080" {
		t.Errorf("Next() = %q, want default instance", got)
	}
}

func TestRoundRobin_AddRemove(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080"})

	rr.AddServer("http://b:8080")
	if servers := rr.GetServers(); len(servers) != 2 {
		t.Fatalf("servers = %v, want 2", servers)
	}

	rr.RemoveServer("http://a:8080")
	servers := rr.GetServers()
	if len(servers) != 1 || servers[0] != "http://b:8080" {
		t.Fatalf("servers = %v, want only b", servers)
	}

	// Index must stay valid after removal
	if got := rr.Next(); got != "http://b:8080" {
		t.Errorf("Next() = %q, want b", got)
	}
}
