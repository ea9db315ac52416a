package core

import "sync"

// Client is a live connection as seen by the core layer.
//
// Rooms tracks the case rooms this client has joined. Membership only ever
// accumulates: joining a second case does not leave the first one, matching
// the behavior the web client relies on. It is read and written exclusively
// by the hub goroutine.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event
	Rooms    map[string]struct{}

	closeOnce sync.Once
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 8),
		Rooms:    make(map[string]struct{}),
	}
}

// CloseCommands marks the client as done sending commands. Safe to call
// more than once; the hub unregisters the client once the remaining queued
// commands have drained.
func (c *Client) CloseCommands() {
	c.closeOnce.Do(func() {
		close(c.Commands)
	})
}
