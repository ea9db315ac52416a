package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/parthbanwari/Mediately/internal/config"
	"github.com/parthbanwari/Mediately/internal/core"
	"github.com/parthbanwari/Mediately/internal/store"
	"github.com/parthbanwari/Mediately/internal/store/sqlite"
)

// newTestStore creates an in-memory SQLite store for handler tests.
func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// startTestServer wires a hub and the HTTP layer around the given store.
func startTestServer(t *testing.T, st store.MessageStore) *httptest.Server {
	t.Helper()

	hub := core.NewHub(st, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	disabledLogger := zerolog.Nop()

	cfg := config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
		AllowedOrigin:     "*",
		MaxMessageBytes:   1 << 20,
	}

	server := NewServer(hub, st, &cfg, &disabledLogger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

// brokenStore simulates an unreachable database.
type brokenStore struct{}

func (brokenStore) AppendMessage(context.Context, *store.Message) error {
	return store.ErrUnavailable
}

func (brokenStore) ListMessages(context.Context, string) ([]*store.Message, error) {
	return nil, store.ErrUnavailable
}

func (brokenStore) Close() error { return nil }
