package game

import (
	"time"

	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

func (s *GameServiceTestSuite) TestSetIntervalClampsToBounds() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	out, err := s.svc.SetInterval(s.ctx, &SetIntervalInput{
		RoomCode: created.RoomCode,
		PlayerID: "host-conn",
		Interval: 50 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.Equal(300*time.Millisecond, out.Applied)

	out, err = s.svc.SetInterval(s.ctx, &SetIntervalInput{
		RoomCode: created.RoomCode,
		PlayerID: "host-conn",
		Interval: time.Minute,
	})
	s.Require().NoError(err)
	s.Equal(6000*time.Millisecond, out.Applied)
	s.Equal(6000*time.Millisecond, s.room(created.RoomCode).Interval)
}

func (s *GameServiceTestSuite) TestSetIntervalReArmsWhileRunning() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)
	s.Require().Len(s.scheduled, 1)

	_, err = s.svc.SetInterval(s.ctx, &SetIntervalInput{
		RoomCode: created.RoomCode,
		PlayerID: "host-conn",
		Interval: time.Second,
	})
	s.Require().NoError(err)

	// A fresh callback was armed at the new period; the old one is stale.
	s.Require().Len(s.scheduled, 2)
	s.Equal(time.Second, s.scheduled[1].delay)

	room := s.room(created.RoomCode)
	s.fireNextTick()
	s.Len(room.Called, 1, "stale tick after re-arm must not draw")
	s.fireNextTick()
	s.Len(room.Called, 2)
}

func (s *GameServiceTestSuite) TestSetAutoMarkOffLeavesCardsUntouched() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	_, err := s.svc.SetAutoMark(s.ctx, &SetAutoMarkInput{
		RoomCode: created.RoomCode,
		PlayerID: "host-conn",
		Enabled:  false,
	})
	s.Require().NoError(err)

	_, err = s.svc.CallNext(s.ctx, &CallNextInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)

	room := s.room(created.RoomCode)
	s.Empty(room.Players["host-conn"].Marks)
}

func (s *GameServiceTestSuite) TestHostOnlyOperationsRejectNonHost() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 1)

	code := created.RoomCode
	_, err := s.svc.PauseGame(s.ctx, &PauseGameInput{RoomCode: code, PlayerID: "p1"})
	s.ErrorIs(err, ErrNotHost)
	_, err = s.svc.ResetGame(s.ctx, &ResetGameInput{RoomCode: code, PlayerID: "p1"})
	s.ErrorIs(err, ErrNotHost)
	_, err = s.svc.SetInterval(s.ctx, &SetIntervalInput{RoomCode: code, PlayerID: "p1", Interval: time.Second})
	s.ErrorIs(err, ErrNotHost)
	_, err = s.svc.SetAutoMark(s.ctx, &SetAutoMarkInput{RoomCode: code, PlayerID: "p1", Enabled: false})
	s.ErrorIs(err, ErrNotHost)
	_, err = s.svc.CallNext(s.ctx, &CallNextInput{RoomCode: code, PlayerID: "p1"})
	s.ErrorIs(err, ErrNotHost)

	_, err = s.svc.PauseGame(s.ctx, &PauseGameInput{RoomCode: code, PlayerID: "ghost"})
	s.ErrorIs(err, ErrPlayerNotInRoom)
}

func (s *GameServiceTestSuite) TestResetRegeneratesCardsAndPreservesMembership() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 2)

	room := s.room(created.RoomCode)
	before := make(map[string]models.Card)
	for id, player := range room.Players {
		before[id] = player.Card
	}
	oldSeed := room.Seed

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)

	_, err = s.svc.ResetGame(s.ctx, &ResetGameInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)

	s.NotEqual(oldSeed, room.Seed)
	s.Nil(room.Winner)
	s.False(room.GameEnded)
	s.True(room.Running, "reset brings the loop back up")
	s.Len(room.Called, 1, "fresh round opens with one draw")
	s.Equal(3, room.PlayerCount())

	for id, player := range room.Players {
		s.NotEqual(before[id].Cells, player.Card.Cells, "player %s card must change with the seed", id)
		s.Empty(player.Lines)
		s.False(player.FullHouse)
	}

	// Every player got their fresh card point-to-point.
	s.Equal(3, s.broadcaster.count(protocol.ServerNewCard))
}
