package ws

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/AvinashSingh09/WebBingo/internal/protocol"
	"github.com/AvinashSingh09/WebBingo/internal/services/game"
)

// dispatch decodes one inbound envelope and executes it. Unknown types,
// malformed payloads and rejected commands are dropped; only "room not
// found" and "room full" ever surface to the client.
func (h *Handler) dispatch(c *Client, raw []byte) {
	var env protocol.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.Debug().Err(err).Msg("malformed envelope")
		return
	}

	ctx := context.Background()

	switch env.Type {
	case protocol.ClientCreateRoom:
		var data protocol.CreateRoomData
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &data); err != nil {
				return
			}
		}
		out, err := h.svc.CreateRoom(ctx, &game.CreateRoomInput{
			PlayerID: c.ID,
			Name:     strings.TrimSpace(data.Name),
		})
		if err != nil {
			c.log.Error().Err(err).Msg("create room")
			return
		}
		h.hub.JoinRoom(out.RoomCode, c)
		h.send(c, protocol.ServerMessage{
			Type: protocol.ServerRoomCreated,
			Data: protocol.RoomCreatedData{RoomID: out.RoomCode, Seed: out.Seed, HostKey: out.HostKey},
		})
		h.send(c, protocol.ServerMessage{
			Type: protocol.ServerJoined,
			Data: protocol.JoinedData{
				RoomID:   out.RoomCode,
				PlayerID: c.ID,
				Seed:     out.Seed,
				IsHost:   true,
				Card:     protocol.FromCard(out.Card),
				Called:   []string{},
				Marks:    out.Marks,
			},
		})

	case protocol.ClientJoinRoom:
		var data protocol.JoinRoomData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return
		}
		code := strings.ToUpper(strings.TrimSpace(data.RoomID))
		out, err := h.svc.JoinRoom(ctx, &game.JoinRoomInput{
			RoomCode: code,
			PlayerID: c.ID,
			Name:     strings.TrimSpace(data.Name),
			HostKey:  data.HostKey,
		})
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.hub.JoinRoom(code, c)
		h.send(c, protocol.ServerMessage{
			Type: protocol.ServerJoined,
			Data: protocol.JoinedData{
				RoomID:   out.RoomCode,
				PlayerID: out.PlayerID,
				Seed:     out.Seed,
				IsHost:   out.IsHost,
				Card:     protocol.FromCard(out.Card),
				Called:   out.Called,
				Marks:    out.Marks,
			},
		})

	case protocol.ClientHostStart:
		_, err := h.svc.StartGame(ctx, &game.StartGameInput{RoomCode: c.roomCode, PlayerID: c.ID})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientHostPause:
		_, err := h.svc.PauseGame(ctx, &game.PauseGameInput{RoomCode: c.roomCode, PlayerID: c.ID})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientHostReset:
		_, err := h.svc.ResetGame(ctx, &game.ResetGameInput{RoomCode: c.roomCode, PlayerID: c.ID})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientHostSetSpeed:
		var data protocol.SetIntervalData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return
		}
		_, err := h.svc.SetInterval(ctx, &game.SetIntervalInput{
			RoomCode: c.roomCode,
			PlayerID: c.ID,
			Interval: time.Duration(data.Ms) * time.Millisecond,
		})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientHostSetAuto:
		var data protocol.SetAutoMarkData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return
		}
		_, err := h.svc.SetAutoMark(ctx, &game.SetAutoMarkInput{
			RoomCode: c.roomCode,
			PlayerID: c.ID,
			Enabled:  data.Enabled,
		})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientHostCallNext:
		_, err := h.svc.CallNext(ctx, &game.CallNextInput{RoomCode: c.roomCode, PlayerID: c.ID})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientMarkCell:
		var data protocol.CellData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return
		}
		_, err := h.svc.MarkCell(ctx, &game.MarkCellInput{RoomCode: c.roomCode, PlayerID: c.ID, Index: data.Index})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientUnmarkCell:
		var data protocol.CellData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return
		}
		_, err := h.svc.UnmarkCell(ctx, &game.UnmarkCellInput{RoomCode: c.roomCode, PlayerID: c.ID, Index: data.Index})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientClaimFullHouse:
		_, err := h.svc.ClaimFullHouse(ctx, &game.ClaimFullHouseInput{RoomCode: c.roomCode, PlayerID: c.ID})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientVotePlayAgain:
		_, err := h.svc.VotePlayAgain(ctx, &game.VotePlayAgainInput{RoomCode: c.roomCode, PlayerID: c.ID})
		h.dropRejected(c, env.Type, err)

	case protocol.ClientVoteExit:
		_, err := h.svc.VoteExit(ctx, &game.VoteExitInput{RoomCode: c.roomCode, PlayerID: c.ID})
		h.dropRejected(c, env.Type, err)
		h.hub.LeaveRoom(c)

	default:
		c.log.Debug().Str("type", string(env.Type)).Msg("unknown message type")
	}
}

// send queues an outbound message for one client.
func (h *Handler) send(c *Client, msg protocol.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error().Err(err).Str("type", string(msg.Type)).Msg("encoding message")
		return
	}
	select {
	case c.send <- data:
	default:
		c.log.Warn().Msg("send buffer full, dropping frame")
	}
}

// sendError surfaces the few errors clients are allowed to see.
func (h *Handler) sendError(c *Client, err error) {
	var message string
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		message = "Room not found"
	case errors.Is(err, game.ErrRoomFull):
		message = "Room is full"
	default:
		c.log.Debug().Err(err).Msg("command rejected")
		return
	}
	h.send(c, protocol.ServerMessage{
		Type: protocol.ServerError,
		Data: protocol.ErrorData{Message: message},
	})
}

// dropRejected logs a rejected command without answering it.
func (h *Handler) dropRejected(c *Client, kind protocol.ClientKind, err error) {
	if err != nil {
		c.log.Debug().Err(err).Str("type", string(kind)).Msg("command rejected")
	}
}
