package core

// SystemSenderID marks synthetic messages not authored by a participant.
const SystemSenderID = "system"

// Message is the domain model for a chat message in a case room.
type Message struct {
	ID         int64
	CaseID     string
	SenderID   string
	SenderName string
	Text       string
	// Timestamp is epoch milliseconds. Zero means the sender supplied no
	// clock reading and the hub fills in its own receipt time.
	Timestamp int64
}
