package game

import (
	"github.com/AvinashSingh09/WebBingo/internal/cards"
	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

// evaluatePlayerLocked checks a player for newly completed lines and full
// coverage, announces them, and ends the round on a terminal win. Returns
// true when the round ended.
func (s *service) evaluatePlayerLocked(room *models.Room, player *models.Player) bool {
	if room.Winner != nil {
		return true
	}

	// Line wins apply to the numbers variant only; films cards treat every
	// row as partial by construction.
	if room.Variant == models.VariantNumbers {
		for _, line := range cards.LinesFor(room.Variant) {
			if player.Lines[line.ID] || !lineComplete(player, line) {
				continue
			}
			player.Lines[line.ID] = true
			s.broadcaster.ToRoom(room.Code, protocol.ServerMessage{
				Type: protocol.ServerLineWinner,
				Data: protocol.LineWinnerData{PlayerID: player.ID, Name: player.Name, LineID: line.ID},
			})
			s.declareWinnerLocked(room, player, models.WinKindLine, line.ID)
			return true
		}
	}

	if !player.FullHouse && fullHouse(player) {
		player.FullHouse = true
		s.broadcaster.ToRoom(room.Code, protocol.ServerMessage{
			Type: protocol.ServerFullHouse,
			Data: protocol.FullHouseData{PlayerID: player.ID, Name: player.Name},
		})
		if room.Variant == models.VariantFilms {
			s.declareWinnerLocked(room, player, models.WinKindFullHouse, "")
			return true
		}
	}

	return false
}

// declareWinnerLocked records the terminal result and halts the draw loop.
func (s *service) declareWinnerLocked(room *models.Room, player *models.Player, kind models.WinKind, lineID string) {
	room.Winner = &models.Winner{
		PlayerID: player.ID,
		Name:     player.Name,
		Kind:     kind,
		LineID:   lineID,
	}
	room.Running = false
	room.GameEnded = true
	s.disarmTimerLocked(room)

	s.config.Logger.Info().
		Str("room", room.Code).
		Str("player", player.ID).
		Str("kind", string(kind)).
		Msg("game won")

	s.broadcaster.ToRoom(room.Code, protocol.ServerMessage{
		Type: protocol.ServerGameWinner,
		Data: protocol.WinnerData{
			PlayerID: player.ID,
			Name:     player.Name,
			Kind:     string(kind),
			LineID:   lineID,
		},
	})
}

// lineComplete reports whether every cell of the line is marked. Free cells
// are seeded into the mark set at deal time, so a plain lookup suffices.
func lineComplete(player *models.Player, line cards.Line) bool {
	for _, idx := range line.Cells {
		if !player.Marks[idx] {
			return false
		}
	}
	return true
}

// fullHouse reports whether every item cell on the card is marked.
func fullHouse(player *models.Player) bool {
	for idx, cell := range player.Card.Cells {
		if cell.Kind == models.CellItem && !player.Marks[idx] {
			return false
		}
	}
	return true
}
