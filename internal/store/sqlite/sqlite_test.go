package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/parthbanwari/Mediately/internal/store"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndListOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Inserted out of timestamp order on purpose.
	inputs := []store.Message{
		{CaseID: "case_1", SenderID: "u1", SenderName: "Alice", Text: "third", Timestamp: 3000},
		{CaseID: "case_1", SenderID: "u2", SenderName: "Bob", Text: "first", Timestamp: 1000},
		{CaseID: "case_1", SenderID: "u1", SenderName: "Alice", Text: "second", Timestamp: 2000},
	}
	for i := range inputs {
		if err := s.AppendMessage(ctx, &inputs[i]); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if inputs[i].ID == 0 {
			t.Fatalf("append %d: id not assigned", i)
		}
	}

	messages, err := s.ListMessages(ctx, "case_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(messages))
	}
	for i, text := range want {
		if messages[i].Text != text {
			t.Errorf("position %d: expected %q, got %q", i, text, messages[i].Text)
		}
	}
}

func TestListTimestampTiesKeepInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		msg := store.Message{CaseID: "case_1", SenderID: "u1", SenderName: "Alice", Text: text, Timestamp: 1000}
		if err := s.AppendMessage(ctx, &msg); err != nil {
			t.Fatalf("append %q: %v", text, err)
		}
	}

	messages, err := s.ListMessages(ctx, "case_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, text := range []string{"a", "b", "c"} {
		if messages[i].Text != text {
			t.Errorf("position %d: expected %q, got %q", i, text, messages[i].Text)
		}
	}
}

func TestListKeepsCasesSeparate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, caseID := range []string{"case_1", "case_2", "case_1"} {
		msg := store.Message{CaseID: caseID, SenderID: "u1", SenderName: "Alice", Text: "in " + caseID, Timestamp: 1000}
		if err := s.AppendMessage(ctx, &msg); err != nil {
			t.Fatalf("append to %s: %v", caseID, err)
		}
	}

	messages, err := s.ListMessages(ctx, "case_2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 1 || messages[0].CaseID != "case_2" {
		t.Fatalf("expected only case_2 messages, got %+v", messages)
	}
}

func TestListUnknownCaseReturnsEmpty(t *testing.T) {
	s := newTestStore(t)

	messages, err := s.ListMessages(context.Background(), "unknown-case")
	if err != nil {
		t.Fatalf("expected no error for unknown case, got %v", err)
	}
	if messages == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(messages) != 0 {
		t.Fatalf("expected no messages, got %d", len(messages))
	}
}

func TestDuplicateSendsLandAsDistinctEntries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// A retried request arrives twice; the log keeps both.
	for i := 0; i < 2; i++ {
		msg := store.Message{CaseID: "case_1", SenderID: "u1", SenderName: "Alice", Text: "same", Timestamp: 1000}
		if err := s.AppendMessage(ctx, &msg); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	messages, err := s.ListMessages(ctx, "case_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(messages))
	}
	if messages[0].ID == messages[1].ID {
		t.Fatal("expected distinct ids for duplicate sends")
	}
}

func TestBrokenSchemaReportsUnavailable(t *testing.T) {
	s, err := NewWithSetup(":memory:", func(db *sql.DB) error {
		_, err := db.Exec(`DROP TABLE messages`)
		return err
	})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	msg := store.Message{CaseID: "case_1", SenderID: "u1", SenderName: "Alice", Text: "hi", Timestamp: 1000}
	if err := s.AppendMessage(context.Background(), &msg); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClosedStoreReportsUnavailable(t *testing.T) {
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	msg := store.Message{CaseID: "case_1", SenderID: "u1", SenderName: "Alice", Text: "hi", Timestamp: 1000}
	if err := s.AppendMessage(context.Background(), &msg); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	if _, err := s.ListMessages(context.Background(), "case_1"); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
