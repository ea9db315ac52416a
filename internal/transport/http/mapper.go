package http

import (
	"encoding/json"

	"github.com/parthbanwari/Mediately/internal/core"
	"github.com/parthbanwari/Mediately/internal/proto"
)

// inboundToCommand maps a client frame onto a core command. A nil command
// with a nil error means the frame is valid JSON but carries nothing
// actionable; the relay skips it without notifying the client.
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinRoom:
		var join proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, err
		}
		if join.RoomID == "" {
			return nil, nil
		}
		return &core.Command{
			Kind: core.CommandJoinRoom,
			Room: join.RoomID,
		}, nil
	case proto.InboundTypeSendMessage:
		var msg proto.MessagePayload
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, err
		}
		// Field validation and defaulting happen in the hub.
		return &core.Command{
			Kind: core.CommandSendMessage,
			Room: msg.CaseID,
			Message: core.Message{
				CaseID:     msg.CaseID,
				SenderID:   msg.SenderID,
				SenderName: msg.SenderName,
				Text:       msg.Text,
				Timestamp:  msg.Timestamp,
			},
		}, nil
	default:
		return nil, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventReceiveMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeReceiveMessage,
			Data: proto.MessagePayload{
				CaseID:     event.Message.CaseID,
				SenderID:   event.Message.SenderID,
				SenderName: event.Message.SenderName,
				Text:       event.Message.Text,
				Timestamp:  event.Message.Timestamp,
			},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeReceiveMessage}
	}
}
