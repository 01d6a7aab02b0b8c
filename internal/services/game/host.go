package game

import (
	"context"

	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

// StartGame begins or resumes the draw loop.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if err := requireHost(room, input.PlayerID); err != nil {
		return nil, err
	}
	if err := s.startLocked(room); err != nil {
		return nil, err
	}

	return &StartGameOutput{}, nil
}

// PauseGame halts the draw loop, keeping the drawn history.
func (s *service) PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error) {
	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if err := requireHost(room, input.PlayerID); err != nil {
		return nil, err
	}

	if room.Running {
		room.Running = false
		s.disarmTimerLocked(room)
		s.broadcastStateLocked(room)
	}

	return &PauseGameOutput{}, nil
}

// ResetGame starts a fresh round: new seed, cleared history and winner,
// regenerated cards, draw loop back on.
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if err := requireHost(room, input.PlayerID); err != nil {
		return nil, err
	}

	s.resetRoomLocked(room)

	// Winner was just cleared, so this cannot fail.
	_ = s.startLocked(room)

	return &ResetGameOutput{}, nil
}

// SetInterval clamps and applies a new draw period, re-arming if running.
func (s *service) SetInterval(ctx context.Context, input *SetIntervalInput) (*SetIntervalOutput, error) {
	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if err := requireHost(room, input.PlayerID); err != nil {
		return nil, err
	}

	interval := input.Interval
	if interval < s.config.MinInterval {
		interval = s.config.MinInterval
	}
	if interval > s.config.MaxInterval {
		interval = s.config.MaxInterval
	}
	room.Interval = interval

	if room.Running {
		s.disarmTimerLocked(room)
		s.armTimerLocked(room)
	}
	s.broadcastStateLocked(room)

	return &SetIntervalOutput{Applied: interval}, nil
}

// SetAutoMark toggles server-side marking of drawn items.
func (s *service) SetAutoMark(ctx context.Context, input *SetAutoMarkInput) (*SetAutoMarkOutput, error) {
	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if err := requireHost(room, input.PlayerID); err != nil {
		return nil, err
	}

	room.AutoMark = input.Enabled
	s.broadcastStateLocked(room)

	return &SetAutoMarkOutput{}, nil
}

// CallNext performs one manual draw. The loop timer, if armed, is pushed
// back a full interval so the next automatic draw is not bunched up.
func (s *service) CallNext(ctx context.Context, input *CallNextInput) (*CallNextOutput, error) {
	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if err := requireHost(room, input.PlayerID); err != nil {
		return nil, err
	}
	if room.Winner != nil {
		return nil, ErrGameLocked
	}

	before := len(room.Called)
	s.drawLocked(room)

	if room.Running {
		s.disarmTimerLocked(room)
		s.armTimerLocked(room)
	}
	s.broadcastStateLocked(room)

	out := &CallNextOutput{}
	if len(room.Called) > before {
		out.Item = room.Called[len(room.Called)-1]
	}

	return out, nil
}

// resetRoomLocked wipes the round: fresh seed, cleared history, winner,
// badges and votes, regenerated cards delivered point-to-point.
func (s *service) resetRoomLocked(room *models.Room) {
	room.Running = false
	s.disarmTimerLocked(room)
	if room.ResetTimer != nil {
		room.ResetTimer.Stop()
		room.ResetTimer = nil
	}

	room.Seed = s.config.Keys.Seed()
	room.Called = nil
	room.Winner = nil
	room.GameEnded = false
	room.PlayAgainVotes = make(map[string]bool)

	for _, id := range room.Order {
		player := room.Players[id]
		player.Card = s.config.Cards.Generate(room.Seed, player.ID)
		player.Marks = make(map[int]bool)
		for _, idx := range player.Card.FreeCells() {
			player.Marks[idx] = true
		}
		player.Lines = make(map[string]bool)
		player.FullHouse = false
		player.PlayAgainVote = false

		s.broadcaster.ToPlayer(player.ID, protocol.ServerMessage{
			Type: protocol.ServerNewCard,
			Data: protocol.NewCardData{
				Card:  protocol.FromCard(player.Card),
				Marks: markedCells(player),
			},
		})
	}
}
