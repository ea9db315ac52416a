package core

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/parthbanwari/Mediately/internal/store"
)

const persistTimeout = 5 * time.Second

// Hub owns the room membership state and relays messages between clients
// that share a case. All membership mutation happens on the Run goroutine,
// so broadcast order within a room is exactly the order in which sends are
// accepted.
type Hub struct {
	store store.MessageStore
	log   *zerolog.Logger

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand

	clients map[*Client]struct{}
	rooms   map[string]*Room
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// NewHub creates a hub. The store may be nil, in which case messages are
// relayed without being persisted.
func NewHub(st store.MessageStore, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		store:      st,
		log:        logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan clientCommand),
		clients:    make(map[*Client]struct{}),
		rooms:      make(map[string]*Room),
	}
}

// RegisterClient hands a freshly connected client to the hub. The client
// starts with no room membership.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient tears the client down. Queued commands are still
// processed before its room memberships are dropped.
func (h *Hub) UnregisterClient(c *Client) {
	c.CloseCommands()
}

// Run processes registrations and client commands until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			go h.pump(ctx, c)
			h.log.Debug().Str("client_id", c.ID).Msg("client connected")
		case c := <-h.unregister:
			h.dropClient(c)
		case cc := <-h.commands:
			h.handleCommand(cc.client, cc.cmd)
		}
	}
}

// pump forwards one client's commands into the hub's single command stream
// and reports the client for unregistration once its command channel closes.
func (h *Hub) pump(ctx context.Context, c *Client) {
	for cmd := range c.Commands {
		select {
		case h.commands <- clientCommand{client: c, cmd: cmd}:
		case <-ctx.Done():
			return
		}
	}
	select {
	case h.unregister <- c:
	case <-ctx.Done():
	}
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandJoinRoom:
		h.handleJoin(c, cmd.Room)
	case CommandSendMessage:
		h.handleSend(cmd.Message)
	default:
		h.log.Warn().Int("kind", int(cmd.Kind)).Msg("unknown command kind")
	}
}

func (h *Hub) handleJoin(c *Client, caseID string) {
	if caseID == "" {
		return
	}

	room, ok := h.rooms[caseID]
	if !ok {
		room = NewRoom(caseID)
		h.rooms[caseID] = room
	}

	if room.AddClient(c) {
		c.Rooms[caseID] = struct{}{}
		h.log.Info().Str("client_id", c.ID).Str("case_id", caseID).Msg("client joined room")
	}
}

// handleSend validates the message, applies the sender-facing defaults,
// kicks off persistence as its own task, and fans the message out to the
// room. Broadcast does not wait on the store: a failed write costs history,
// never live delivery.
func (h *Hub) handleSend(msg Message) {
	msg.CaseID = strings.TrimSpace(msg.CaseID)
	msg.SenderID = strings.TrimSpace(msg.SenderID)
	msg.Text = strings.TrimSpace(msg.Text)
	if msg.CaseID == "" || msg.SenderID == "" || msg.Text == "" {
		h.log.Debug().Str("case_id", msg.CaseID).Str("sender_id", msg.SenderID).Msg("dropping invalid message")
		return
	}

	if strings.TrimSpace(msg.SenderName) == "" {
		msg.SenderName = "Unknown"
	}
	if msg.Timestamp <= 0 {
		msg.Timestamp = time.Now().UnixMilli()
	}

	if h.store != nil {
		go h.persist(msg)
	}

	if room, ok := h.rooms[msg.CaseID]; ok {
		room.Broadcast(&Event{Kind: EventReceiveMessage, Message: msg})
	}
}

func (h *Hub) persist(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	record := store.Message{
		CaseID:     msg.CaseID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Text:       msg.Text,
		Timestamp:  msg.Timestamp,
	}
	if err := h.store.AppendMessage(ctx, &record); err != nil {
		// At most one attempt per message; the room already got its copy.
		h.log.Error().Err(err).Str("case_id", msg.CaseID).Msg("failed to persist message")
	}
}

func (h *Hub) dropClient(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)

	for caseID := range c.Rooms {
		room, ok := h.rooms[caseID]
		if !ok {
			continue
		}
		room.RemoveClient(c)
		if room.Empty() {
			delete(h.rooms, caseID)
		}
	}

	close(c.Events)
	h.log.Debug().Str("client_id", c.ID).Msg("client disconnected")
}
