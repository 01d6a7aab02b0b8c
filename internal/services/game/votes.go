package game

import (
	"context"
	"math"

	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

// VotePlayAgain casts a restart vote. Reaching quorum schedules a restart
// after the configured delay; repeat votes change nothing.
func (s *service) VotePlayAgain(ctx context.Context, input *VotePlayAgainInput) (*VotePlayAgainOutput, error) {
	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	player, err := requirePlayer(room, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if !room.GameEnded {
		return nil, ErrGameNotEnded
	}

	if !player.PlayAgainVote {
		player.PlayAgainVote = true
		room.PlayAgainVotes[player.ID] = true
	}

	votes := len(room.PlayAgainVotes)
	needed := s.quorum(room)

	s.broadcaster.ToRoom(room.Code, protocol.ServerMessage{
		Type: protocol.ServerPlayAgainVote,
		Data: protocol.PlayAgainVoteData{Votes: votes, Needed: needed},
	})

	if votes >= needed && room.ResetTimer == nil {
		code := room.Code
		room.ResetTimer = s.config.Clock.AfterFunc(s.config.RestartDelay, func() {
			s.restartRoom(code)
		})
	}

	return &VotePlayAgainOutput{Votes: votes, Needed: needed}, nil
}

// VoteExit removes the caller from the room.
func (s *service) VoteExit(ctx context.Context, input *VoteExitInput) (*VoteExitOutput, error) {
	if err := s.removePlayer(ctx, input.RoomCode, input.PlayerID); err != nil {
		return nil, err
	}
	return &VoteExitOutput{}, nil
}

// Disconnect cleans up a dropped connection. Host identity survives so the
// host can reclaim it by rejoining with the host key.
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	if err := s.removePlayer(ctx, input.RoomCode, input.PlayerID); err != nil {
		return nil, err
	}
	return &DisconnectOutput{}, nil
}

// restartRoom is the post-quorum callback: full reset, restart announcement,
// engine back on.
func (s *service) restartRoom(code string) {
	room, err := s.getRoom(context.Background(), code)
	if err != nil {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if !room.GameEnded {
		return
	}

	s.resetRoomLocked(room)
	s.broadcaster.ToRoom(room.Code, protocol.ServerMessage{Type: protocol.ServerNewGameStarting})

	// Winner was just cleared, so this cannot fail.
	_ = s.startLocked(room)
}

// removePlayer drops a player and their vote; an emptied room is closed.
func (s *service) removePlayer(ctx context.Context, code, playerID string) error {
	room, err := s.getRoom(ctx, code)
	if err != nil {
		return err
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if _, ok := room.Players[playerID]; !ok {
		return ErrPlayerNotInRoom
	}

	delete(room.Players, playerID)
	delete(room.PlayAgainVotes, playerID)
	for i, id := range room.Order {
		if id == playerID {
			room.Order = append(room.Order[:i], room.Order[i+1:]...)
			break
		}
	}

	if room.PlayerCount() == 0 {
		// The room stays registered so the host can reclaim it later, but
		// nothing should keep drawing into the void.
		if room.Running {
			room.Running = false
			s.disarmTimerLocked(room)
		}
		if room.ResetTimer != nil {
			room.ResetTimer.Stop()
			room.ResetTimer = nil
		}
		s.config.Logger.Debug().Str("room", room.Code).Msg("room emptied")
		return nil
	}

	s.broadcastStateLocked(room)
	return nil
}

// quorum is the vote threshold for the room's current player count.
func (s *service) quorum(room *models.Room) int {
	return int(math.Ceil(s.config.RestartQuorum * float64(room.PlayerCount())))
}
