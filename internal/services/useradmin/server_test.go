package useradmin

import (
	"context"
	"path/filepath"
	"testing"
)

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	_, err := NewServer(context.Background(), Config{}, seededDirectory(t))
	if err == nil {
		t.Fatal("expected error for missing http address")
	}
}

func TestNewServerRequiresDirectory(t *testing.T) {
	_, err := NewServer(context.Background(), Config{HTTPAddr: ":0"}, nil)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestNewServerOpensAuditStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "useradmin.db")
	server, err := NewServer(context.Background(), Config{HTTPAddr: ":0", DBPath: dbPath}, seededDirectory(t))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if server.store == nil {
		t.Fatal("expected audit store to be opened")
	}
	server.Close()
}

func TestNewServerWithoutDBPathDisablesAuditing(t *testing.T) {
	server, err := NewServer(context.Background(), Config{HTTPAddr: ":0"}, seededDirectory(t))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if server.store != nil {
		t.Fatal("expected no audit store")
	}
	server.Close()
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"}, seededDirectory(t))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := server.ListenAndServe(ctx); err != nil {
		t.Fatalf("listen and serve: %v", err)
	}
}
