// Package ws is the websocket transport: one hub per process owning client
// connections and their room groups.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

// Hub tracks connected clients and their room membership. It implements the
// game service's Broadcaster.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client
	log     zerolog.Logger
}

// NewHub creates a new connection hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
		log:     logger,
	}
}

// Register adds a connected client.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Unregister drops a client and its room membership.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.ID]; !ok {
		return
	}
	delete(h.clients, c.ID)
	h.leaveLocked(c)
	close(c.send)
}

// JoinRoom adds a client to a room group, leaving any previous one.
func (h *Hub) JoinRoom(roomCode string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(c)
	group, ok := h.rooms[roomCode]
	if !ok {
		group = make(map[string]*Client)
		h.rooms[roomCode] = group
	}
	group[c.ID] = c
	c.roomCode = roomCode
}

// LeaveRoom removes a client from its room group.
func (h *Hub) LeaveRoom(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c)
}

func (h *Hub) leaveLocked(c *Client) {
	if c.roomCode == "" {
		return
	}
	if group, ok := h.rooms[c.roomCode]; ok {
		delete(group, c.ID)
		if len(group) == 0 {
			delete(h.rooms, c.roomCode)
		}
	}
	c.roomCode = ""
}

// ToRoom sends a message to every connection in a room.
func (h *Hub) ToRoom(roomCode string, msg protocol.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error().Err(err).Str("type", string(msg.Type)).Msg("encoding broadcast")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.rooms[roomCode] {
		h.sendLocked(c, data)
	}
}

// ToPlayer sends a message to a single connection.
func (h *Hub) ToPlayer(playerID string, msg protocol.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error().Err(err).Str("type", string(msg.Type)).Msg("encoding message")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if c, ok := h.clients[playerID]; ok {
		h.sendLocked(c, data)
	}
}

// sendLocked queues without blocking; a client that cannot keep up loses
// the frame rather than stalling the room.
func (h *Hub) sendLocked(c *Client, data []byte) {
	select {
	case c.send <- data:
	default:
		h.log.Warn().Str("client", c.ID).Msg("send buffer full, dropping frame")
	}
}
