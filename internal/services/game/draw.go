package game

import (
	"context"
	"math/rand"

	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

// startLocked begins or resumes the draw loop: one immediate draw, then the
// recurring timer. Rejected once a winner exists; no-op while running.
func (s *service) startLocked(room *models.Room) error {
	if room.Winner != nil {
		return ErrGameLocked
	}
	if room.Running {
		return nil
	}

	room.Running = true
	s.drawLocked(room)
	if room.Running {
		s.armTimerLocked(room)
	}
	s.broadcastStateLocked(room)

	return nil
}

// armTimerLocked schedules the next tick. The captured generation makes any
// previously scheduled callback inert.
func (s *service) armTimerLocked(room *models.Room) {
	room.TimerGen++
	gen := room.TimerGen
	code := room.Code
	room.Timer = s.config.Clock.AfterFunc(room.Interval, func() {
		s.tick(code, gen)
	})
}

// disarmTimerLocked cancels the pending tick and invalidates in-flight ones.
func (s *service) disarmTimerLocked(room *models.Room) {
	if room.Timer != nil {
		room.Timer.Stop()
		room.Timer = nil
	}
	room.TimerGen++
}

// tick is the timer callback. It re-checks the generation under the room
// lock; a stale tick does nothing.
func (s *service) tick(code string, gen uint64) {
	room, err := s.getRoom(context.Background(), code)
	if err != nil {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if gen != room.TimerGen || !room.Running {
		return
	}

	s.drawLocked(room)
	if room.Running {
		s.armTimerLocked(room)
	}
	s.broadcastStateLocked(room)
}

// drawLocked performs one draw: pick from the bag, record it, announce it,
// auto-mark, then evaluate players in join order. Exhaustion halts the loop.
func (s *service) drawLocked(room *models.Room) {
	bag := s.bagLocked(room)
	if len(bag) == 0 {
		room.Running = false
		s.disarmTimerLocked(room)
		s.broadcaster.ToRoom(room.Code, protocol.ServerMessage{Type: protocol.ServerNoMore})
		return
	}

	item := bag[rand.Intn(len(bag))]
	room.Called = append(room.Called, item)

	kind := protocol.ServerFilmCalled
	if room.Variant == models.VariantNumbers {
		kind = protocol.ServerNumberCalled
	}
	s.broadcaster.ToRoom(room.Code, protocol.ServerMessage{
		Type: kind,
		Data: protocol.ItemCalledData{Item: item, Remaining: len(bag) - 1},
	})

	if room.AutoMark {
		for _, id := range room.Order {
			player := room.Players[id]
			for idx, cell := range player.Card.Cells {
				if cell.Kind == models.CellItem && cell.Value == item {
					player.Marks[idx] = true
				}
			}
		}
	}

	for _, id := range room.Order {
		if s.evaluatePlayerLocked(room, room.Players[id]) {
			return
		}
	}
}

// bagLocked builds the remaining draw pool: the union of every player's card
// items minus the drawn history, in join order then cell order.
func (s *service) bagLocked(room *models.Room) []string {
	called := make(map[string]bool, len(room.Called))
	for _, item := range room.Called {
		called[item] = true
	}

	seen := make(map[string]bool)
	var bag []string
	for _, id := range room.Order {
		for _, item := range room.Players[id].Card.Items() {
			if called[item] || seen[item] {
				continue
			}
			seen[item] = true
			bag = append(bag, item)
		}
	}

	return bag
}
