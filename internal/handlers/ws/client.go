package ws

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// writeWait is the deadline for a single outbound frame
	writeWait = 10 * time.Second

	// pongWait is how long a connection may stay silent
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize bounds inbound frames; game commands are tiny
	maxMessageSize = 4096

	// sendBufferSize is the per-client outbound queue
	sendBufferSize = 64

	// inbound rate limit: sustained events/sec with a burst allowance
	inboundRate  = 20
	inboundBurst = 40
)

// Client is one websocket connection. Its ID doubles as the player identity
// inside the game service.
type Client struct {
	ID string

	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	handler *Handler
	limiter *rate.Limiter
	log     zerolog.Logger

	// roomCode is the joined room, empty before join_room. Written by the
	// read pump and the hub only.
	roomCode string
}

func newClient(id string, hub *Hub, conn *websocket.Conn, handler *Handler, logger zerolog.Logger) *Client {
	return &Client{
		ID:      id,
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		handler: handler,
		limiter: rate.NewLimiter(rate.Limit(inboundRate), inboundBurst),
		log:     logger.With().Str("client", id).Logger(),
	}
}

// readPump drains inbound frames until the connection dies, then cleans up
// the player's room membership.
func (c *Client) readPump() {
	defer func() {
		c.handler.clientGone(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug().Err(err).Msg("connection closed")
			}
			return
		}
		if !c.limiter.Allow() {
			c.log.Warn().Msg("rate limit exceeded, dropping event")
			continue
		}
		c.handler.dispatch(c, raw)
	}
}

// writePump flushes the send queue and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
