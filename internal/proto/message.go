package proto

import "encoding/json"

// Inbound is the envelope for frames coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoinRoom    = "joinRoom"
	InboundTypeSendMessage = "sendMessage"

	OutboundTypeReceiveMessage = "receiveMessage"
)

// JoinRoomData requests to join the room for a specific case.
type JoinRoomData struct {
	RoomID string `json:"roomId"`
}

// MessagePayload is the chat message shape shared by sendMessage and
// receiveMessage frames. Timestamp is epoch milliseconds; zero on the way
// in means the server stamps its own receipt time.
type MessagePayload struct {
	CaseID     string `json:"caseId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName,omitempty"`
	Text       string `json:"text"`
	Timestamp  int64  `json:"timestamp,omitempty"`
}

// Outbound is the envelope for frames sent to the client.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}
