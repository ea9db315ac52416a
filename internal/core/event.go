package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventReceiveMessage delivers a chat message to a room member. The
	// payload carries the server-applied defaults, so every member (the
	// sender included) renders the same message.
	EventReceiveMessage EventKind = iota
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	Message Message
}
