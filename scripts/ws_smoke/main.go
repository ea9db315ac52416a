package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/parthbanwari/Mediately/internal/proto"
)

// Joins a case room, sends one message, and prints whatever comes back.
// Handy against a locally running relay.
func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	caseID := flag.String("case", "case_demo", "case id / room to join")
	sender := flag.String("sender", "smoke-tester", "sender id")
	name := flag.String("name", "Smoke Tester", "sender display name")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(frameType string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", frameType, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: frameType, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", frameType, err)
		}
		return nil
	}

	if err := send(proto.InboundTypeJoinRoom, proto.JoinRoomData{RoomID: *caseID}); err != nil {
		return err
	}

	if err := send(proto.InboundTypeSendMessage, proto.MessagePayload{
		CaseID:     *caseID,
		SenderID:   *sender,
		SenderName: *name,
		Text:       *text,
		Timestamp:  time.Now().UnixMilli(),
	}); err != nil {
		return err
	}

	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		data, _ := json.Marshal(outbound.Data)
		fmt.Printf("Received outbound: type=%s data=%s\n", outbound.Type, data)
	}
}
