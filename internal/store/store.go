package store

import (
	"context"
	"errors"
)

// ErrUnavailable marks failures where the underlying database could not be
// reached or written. Callers inspect it with errors.Is.
var ErrUnavailable = errors.New("store unavailable")

// Message is a persisted chat message in a case log.
type Message struct {
	ID         int64
	CaseID     string
	SenderID   string
	SenderName string
	Text       string
	// Timestamp is epoch milliseconds from the sender's clock, or the
	// server's receipt time when the sender supplied none.
	Timestamp int64
}

// MessageStore handles the per-case message logs.
//
// A log is created implicitly by the first append for a case id; there is no
// uniqueness constraint on messages, so a retried send lands as a distinct
// entry.
type MessageStore interface {
	// AppendMessage writes a message to the end of its case log.
	AppendMessage(ctx context.Context, msg *Message) error

	// ListMessages returns the full history for a case, ascending by
	// timestamp with ties broken by insertion order. An unknown case yields
	// an empty slice, not an error.
	ListMessages(ctx context.Context, caseID string) ([]*Message, error)

	// Close closes the underlying database connection.
	Close() error
}
