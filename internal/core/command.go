package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinRoom subscribes the client to a case room.
	CommandJoinRoom CommandKind = iota
	// CommandSendMessage relays a chat message to the sender's case room.
	CommandSendMessage
)

// Command represents an action requested by a client.
type Command struct {
	Kind    CommandKind
	Room    string
	Message Message
}
