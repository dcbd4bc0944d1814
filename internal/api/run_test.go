package api_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/api"
	"github.com/mattwhite/moodjournal-go/internal/storage/memory"
)

func runAsync(ctx context.Context, srv *api.Server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	return done
}

func TestRunReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer busy.Close()

	srv := api.NewServer(api.Config{Addr: busy.Addr().String()}, memory.NewStore())
	select {
	case err := <-runAsync(context.Background(), srv):
		if err == nil {
			t.Fatal("Run on a busy port returned nil")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Listen failed")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := api.NewServer(api.Config{Addr: "127.0.0.1:0"}, memory.NewStore())
	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, srv)

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run after cancel = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
