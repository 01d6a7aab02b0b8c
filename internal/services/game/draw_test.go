package game

import (
	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

func (s *GameServiceTestSuite) TestStartGameDrawsImmediatelyAndArmsTimer() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 2)

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)

	room := s.room(created.RoomCode)
	s.True(room.Running)
	s.Len(room.Called, 1, "start performs one immediate draw")
	s.Require().Len(s.scheduled, 1)
	s.Equal(room.Interval, s.scheduled[0].delay)
	s.Equal(1, s.broadcaster.count(protocol.ServerFilmCalled))
}

func (s *GameServiceTestSuite) TestStartGameRejectsNonHost() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 1)

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "p1"})
	s.ErrorIs(err, ErrNotHost)
	s.False(s.room(created.RoomCode).Running)
}

func (s *GameServiceTestSuite) TestDrawsNeverRepeatAndStayInBag() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 2)

	room := s.room(created.RoomCode)
	bag := make(map[string]bool)
	room.Mu.Lock()
	for _, item := range s.svc.bagLocked(room) {
		bag[item] = true
	}
	room.Mu.Unlock()

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)
	for i := 0; i < 10; i++ {
		s.fireNextTick()
	}

	seen := make(map[string]bool)
	for _, item := range room.Called {
		s.False(seen[item], "item %q drawn twice", item)
		s.True(bag[item], "item %q drawn but never on any card", item)
		seen[item] = true
	}
}

func (s *GameServiceTestSuite) TestTickRespectsPause() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)

	_, err = s.svc.PauseGame(s.ctx, &PauseGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)

	room := s.room(created.RoomCode)
	drawn := len(room.Called)

	// The tick armed before the pause is stale now and must do nothing.
	s.fireNextTick()
	s.Equal(drawn, len(room.Called))
	s.False(room.Running)
}

func (s *GameServiceTestSuite) TestSinglePlayerFullGameEndsWithOneWinner() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)

	// One player, 15 films on the card, auto-mark on: the game must end by
	// full coverage, never by exhaustion.
	for i := 0; i < 20 && len(s.scheduled) > 0; i++ {
		s.fireNextTick()
	}

	room := s.room(created.RoomCode)
	s.Require().NotNil(room.Winner)
	s.Equal("host-conn", room.Winner.PlayerID)
	s.Equal(models.WinKindFullHouse, room.Winner.Kind)
	s.Len(room.Called, 15)
	s.False(room.Running)
	s.True(room.GameEnded)
	s.Equal(1, s.broadcaster.count(protocol.ServerGameWinner))
	s.Zero(s.broadcaster.count(protocol.ServerNoMore))
}

func (s *GameServiceTestSuite) TestWinnerHaltsDrawsAndLocksStart() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)
	for i := 0; i < 20 && len(s.scheduled) > 0; i++ {
		s.fireNextTick()
	}
	room := s.room(created.RoomCode)
	s.Require().NotNil(room.Winner)
	drawn := len(room.Called)

	_, err = s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.ErrorIs(err, ErrGameLocked)
	s.Equal(drawn, len(room.Called))
	s.False(room.Running)
}

func (s *GameServiceTestSuite) TestNumbersLineWinIsTerminal() {
	s.newService(models.VariantNumbers)
	created := s.createRoomWithHost("host-conn")

	room := s.room(created.RoomCode)
	player := room.Players["host-conn"]

	// Complete the middle row by hand: call and mark its items.
	room.Mu.Lock()
	for idx := 10; idx < 15; idx++ {
		cell := player.Card.Cells[idx]
		if cell.Kind == models.CellItem {
			room.Called = append(room.Called, cell.Value)
		}
	}
	room.Mu.Unlock()

	for idx := 10; idx < 15; idx++ {
		if player.Card.Cells[idx].Kind != models.CellItem {
			continue
		}
		_, err := s.svc.MarkCell(s.ctx, &MarkCellInput{RoomCode: created.RoomCode, PlayerID: "host-conn", Index: idx})
		s.Require().NoError(err)
	}

	s.Require().NotNil(room.Winner)
	s.Equal(models.WinKindLine, room.Winner.Kind)
	s.Equal("row-2", room.Winner.LineID)
	s.True(room.GameEnded)
	s.Equal(1, s.broadcaster.count(protocol.ServerLineWinner))
	s.Equal(1, s.broadcaster.count(protocol.ServerGameWinner))
}

func (s *GameServiceTestSuite) TestCallNextManualDraw() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	out, err := s.svc.CallNext(s.ctx, &CallNextInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)
	s.NotEmpty(out.Item)

	room := s.room(created.RoomCode)
	s.Len(room.Called, 1)
	s.Equal(out.Item, room.Called[0])
	s.False(room.Running, "a manual draw does not start the loop")
}

func (s *GameServiceTestSuite) TestCallNextRejectedAfterWin() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)
	for i := 0; i < 20 && len(s.scheduled) > 0; i++ {
		s.fireNextTick()
	}
	s.Require().NotNil(s.room(created.RoomCode).Winner)

	_, err = s.svc.CallNext(s.ctx, &CallNextInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.ErrorIs(err, ErrGameLocked)
}
