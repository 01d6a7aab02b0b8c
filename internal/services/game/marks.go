package game

import (
	"context"

	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

// MarkCell marks a cell on the caller's card. Item cells are accepted only
// after their value has been drawn; anything else is rejected untouched.
func (s *service) MarkCell(ctx context.Context, input *MarkCellInput) (*MarkCellOutput, error) {
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

	if input.Index < 0 || input.Index >= len(player.Card.Cells) {
		return nil, ErrInvalidMark
	}

	cell := player.Card.Cells[input.Index]
	switch cell.Kind {
	case models.CellFree:
		// Already marked at deal time.
		return &MarkCellOutput{}, nil
	case models.CellItem:
		if !itemCalled(room, cell.Value) {
			return nil, ErrInvalidMark
		}
	default:
		return nil, ErrInvalidMark
	}

	player.Marks[input.Index] = true
	s.evaluatePlayerLocked(room, player)
	s.broadcastStateLocked(room)

	return &MarkCellOutput{}, nil
}

// UnmarkCell clears a mark. Free cells cannot be unmarked and completed
// lines are never retracted.
func (s *service) UnmarkCell(ctx context.Context, input *UnmarkCellInput) (*UnmarkCellOutput, error) {
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

	if input.Index < 0 || input.Index >= len(player.Card.Cells) {
		return nil, ErrInvalidMark
	}
	if player.Card.Cells[input.Index].Kind == models.CellFree {
		return &UnmarkCellOutput{}, nil
	}

	delete(player.Marks, input.Index)
	s.broadcastStateLocked(room)

	return &UnmarkCellOutput{}, nil
}

// ClaimFullHouse evaluates the caller's card for full coverage on demand.
// A claim that does not hold is rejected without side effects.
func (s *service) ClaimFullHouse(ctx context.Context, input *ClaimFullHouseInput) (*ClaimFullHouseOutput, error) {
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

	if player.FullHouse {
		return &ClaimFullHouseOutput{}, nil
	}
	if !fullHouse(player) {
		return nil, ErrInvalidMark
	}

	player.FullHouse = true
	s.broadcaster.ToRoom(room.Code, protocol.ServerMessage{
		Type: protocol.ServerFullHouse,
		Data: protocol.FullHouseData{PlayerID: player.ID, Name: player.Name},
	})
	if room.Variant == models.VariantFilms && room.Winner == nil {
		s.declareWinnerLocked(room, player, models.WinKindFullHouse, "")
	}
	s.broadcastStateLocked(room)

	return &ClaimFullHouseOutput{}, nil
}

// itemCalled reports whether an item is in the drawn history.
func itemCalled(room *models.Room, item string) bool {
	for _, called := range room.Called {
		if called == item {
			return true
		}
	}
	return false
}
