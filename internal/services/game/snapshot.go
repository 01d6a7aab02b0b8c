package game

import (
	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

// buildStateLocked assembles the shared room snapshot. It carries roster
// badges only; no player's card or marks ever appear in it.
func (s *service) buildStateLocked(room *models.Room) protocol.RoomStateData {
	players := make([]protocol.PublicPlayer, 0, len(room.Order))
	for _, id := range room.Order {
		player := room.Players[id]
		lines := make([]string, 0, len(player.Lines))
		for lineID := range player.Lines {
			lines = append(lines, lineID)
		}
		players = append(players, protocol.PublicPlayer{
			ID:        player.ID,
			Name:      player.Name,
			IsHost:    room.HostID == player.ID,
			Lines:     lines,
			FullHouse: player.FullHouse,
			Voted:     player.PlayAgainVote,
		})
	}

	state := protocol.RoomStateData{
		RoomID:     room.Code,
		Variant:    string(room.Variant),
		Players:    players,
		Called:     append([]string(nil), room.Called...),
		Running:    room.Running,
		IntervalMs: int(room.Interval.Milliseconds()),
		AutoMark:   room.AutoMark,
		GameEnded:  room.GameEnded,
	}
	if room.Winner != nil {
		state.Winner = &protocol.WinnerData{
			PlayerID: room.Winner.PlayerID,
			Name:     room.Winner.Name,
			Kind:     string(room.Winner.Kind),
			LineID:   room.Winner.LineID,
		}
	}
	if room.GameEnded {
		state.VoteCount = len(room.PlayAgainVotes)
		state.VotesNeeded = s.quorum(room)
	}

	return state
}

// broadcastStateLocked pushes the snapshot to the whole room.
func (s *service) broadcastStateLocked(room *models.Room) {
	s.broadcaster.ToRoom(room.Code, protocol.ServerMessage{
		Type: protocol.ServerRoomState,
		Data: s.buildStateLocked(room),
	})
}
