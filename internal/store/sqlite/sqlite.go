package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/parthbanwari/Mediately/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	case_id     TEXT NOT NULL,
	sender_id   TEXT NOT NULL,
	sender_name TEXT NOT NULL,
	body        TEXT NOT NULL,
	ts          INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_case_ts ON messages(case_id, ts);
`

// SQLiteStore implements store.MessageStore for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (creating if needed) the SQLite database at dbPath and applies
// the message log schema.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// NewWithSetup opens the database and runs a setup function before the
// default schema is applied. Useful for tests that need to seed rows or
// break the schema on purpose.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*SQLiteStore, error) {
	s, err := New(dbPath)
	if err != nil {
		return nil, err
	}

	if setup != nil {
		if err := setup(s.db); err != nil {
			s.db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendMessage writes a message to the end of its case log.
func (s *SQLiteStore) AppendMessage(ctx context.Context, msg *store.Message) error {
	query := `
		INSERT INTO messages (case_id, sender_id, sender_name, body, ts)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, msg.CaseID, msg.SenderID, msg.SenderName, msg.Text, msg.Timestamp)
	if err != nil {
		return fmt.Errorf("insert message: %w: %v", store.ErrUnavailable, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	msg.ID = id

	return nil
}

// ListMessages returns the full history for a case in ascending timestamp
// order, insertion order breaking ties.
func (s *SQLiteStore) ListMessages(ctx context.Context, caseID string) ([]*store.Message, error) {
	query := `
		SELECT id, case_id, sender_id, sender_name, body, ts
		FROM messages
		WHERE case_id = ?
		ORDER BY ts ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w: %v", store.ErrUnavailable, err)
	}
	defer rows.Close()

	messages := make([]*store.Message, 0)
	for rows.Next() {
		var msg store.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.CaseID,
			&msg.SenderID,
			&msg.SenderName,
			&msg.Text,
			&msg.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w: %v", store.ErrUnavailable, err)
	}

	return messages, nil
}
