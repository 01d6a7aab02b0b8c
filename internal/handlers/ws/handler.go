package ws

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/AvinashSingh09/WebBingo/internal/services/game"
)

// Config holds the websocket handler dependencies.
type Config struct {
	// GameService executes client commands
	GameService game.Service

	// Hub owns the connections; it must be the same instance wired into the
	// game service as Broadcaster
	Hub *Hub

	// Logger for transport events
	Logger zerolog.Logger
}

// Handler upgrades connections and routes their messages to the service.
type Handler struct {
	svc game.Service
	hub *Hub
	log zerolog.Logger

	upgrader websocket.Upgrader
}

// New creates a new websocket handler.
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}

	return &Handler{
		svc: cfg.GameService,
		hub: cfg.Hub,
		log: cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The game is join-by-code; cross-origin pages are fine.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// RegisterRoutes attaches the websocket endpoint.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws", h.serveWS)
}

func (h *Handler) serveWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := newClient(uuid.New().String(), h.hub, conn, h, h.log)
	h.hub.Register(client)

	go client.writePump()
	go client.readPump()
}

// clientGone cleans up after a dropped connection.
func (h *Handler) clientGone(c *Client) {
	if c.roomCode != "" {
		_, err := h.svc.Disconnect(context.Background(), &game.DisconnectInput{
			RoomCode: c.roomCode,
			PlayerID: c.ID,
		})
		if err != nil && !errors.Is(err, game.ErrRoomNotFound) && !errors.Is(err, game.ErrPlayerNotInRoom) {
			h.log.Warn().Err(err).Str("client", c.ID).Msg("disconnect cleanup")
		}
	}
	h.hub.Unregister(c)
}
