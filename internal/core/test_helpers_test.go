package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/parthbanwari/Mediately/internal/store"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatalf("events channel closed while waiting for kind %v", kind)
			}
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustNoEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()

	select {
	case ev, ok := <-ch:
		if ok {
			t.Fatalf("expected no event, got %+v", ev)
		}
	case <-time.After(200 * time.Millisecond):
	}
}

// settle gives the hub loop time to work through commands that were queued
// from different clients, whose relative order is otherwise unspecified.
func settle() {
	time.Sleep(100 * time.Millisecond)
}

// memStore is an in-memory store.MessageStore for hub tests.
type memStore struct {
	mu       sync.Mutex
	messages []store.Message
}

func (m *memStore) AppendMessage(_ context.Context, msg *store.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg.ID = int64(len(m.messages) + 1)
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memStore) ListMessages(_ context.Context, caseID string) ([]*store.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*store.Message, 0)
	for i := range m.messages {
		if m.messages[i].CaseID == caseID {
			msg := m.messages[i]
			out = append(out, &msg)
		}
	}
	return out, nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func waitForCount(t *testing.T, m *memStore, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if m.count() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d persisted messages, got %d", want, m.count())
}

// flakyStore accepts a fixed number of writes, then starts failing.
type flakyStore struct {
	memStore
	capacity int
}

func (f *flakyStore) AppendMessage(ctx context.Context, msg *store.Message) error {
	f.mu.Lock()
	full := len(f.messages) >= f.capacity
	f.mu.Unlock()
	if full {
		return store.ErrUnavailable
	}
	return f.memStore.AppendMessage(ctx, msg)
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
