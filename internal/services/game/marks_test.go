package game

import (
	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

// firstItemCell returns the position and value of the first item cell.
func firstItemCell(s *GameServiceTestSuite, player *models.Player) (int, string) {
	for idx, cell := range player.Card.Cells {
		if cell.Kind == models.CellItem {
			return idx, cell.Value
		}
	}
	s.FailNow("card has no item cells")
	return 0, ""
}

func (s *GameServiceTestSuite) TestMarkCellAcceptsDrawnItem() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	room := s.room(created.RoomCode)
	player := room.Players["host-conn"]
	idx, item := firstItemCell(s, player)

	room.Mu.Lock()
	room.Called = append(room.Called, item)
	room.Mu.Unlock()

	_, err := s.svc.MarkCell(s.ctx, &MarkCellInput{RoomCode: created.RoomCode, PlayerID: "host-conn", Index: idx})
	s.Require().NoError(err)
	s.True(player.Marks[idx])
}

func (s *GameServiceTestSuite) TestMarkCellRejectsUndrawnItemUntouched() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	room := s.room(created.RoomCode)
	player := room.Players["host-conn"]
	idx, _ := firstItemCell(s, player)

	_, err := s.svc.MarkCell(s.ctx, &MarkCellInput{RoomCode: created.RoomCode, PlayerID: "host-conn", Index: idx})
	s.ErrorIs(err, ErrInvalidMark)
	s.Empty(player.Marks, "rejected mark must leave state untouched")
	s.Empty(player.Lines)
	s.False(player.FullHouse)
}

func (s *GameServiceTestSuite) TestMarkCellRejectsPaddingAndOutOfRange() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	room := s.room(created.RoomCode)
	player := room.Players["host-conn"]

	padding := -1
	for idx, cell := range player.Card.Cells {
		if cell.Kind == models.CellEmpty {
			padding = idx
			break
		}
	}
	s.Require().GreaterOrEqual(padding, 0)

	_, err := s.svc.MarkCell(s.ctx, &MarkCellInput{RoomCode: created.RoomCode, PlayerID: "host-conn", Index: padding})
	s.ErrorIs(err, ErrInvalidMark)

	_, err = s.svc.MarkCell(s.ctx, &MarkCellInput{RoomCode: created.RoomCode, PlayerID: "host-conn", Index: 99})
	s.ErrorIs(err, ErrInvalidMark)
	_, err = s.svc.MarkCell(s.ctx, &MarkCellInput{RoomCode: created.RoomCode, PlayerID: "host-conn", Index: -1})
	s.ErrorIs(err, ErrInvalidMark)
}

func (s *GameServiceTestSuite) TestUnmarkCellClearsButKeepsFreeCell() {
	s.newService(models.VariantNumbers)
	created := s.createRoomWithHost("host-conn")

	room := s.room(created.RoomCode)
	player := room.Players["host-conn"]
	s.Require().True(player.Marks[12], "free center is pre-marked")

	idx, item := firstItemCell(s, player)
	room.Mu.Lock()
	room.Called = append(room.Called, item)
	room.Mu.Unlock()

	_, err := s.svc.MarkCell(s.ctx, &MarkCellInput{RoomCode: created.RoomCode, PlayerID: "host-conn", Index: idx})
	s.Require().NoError(err)

	_, err = s.svc.UnmarkCell(s.ctx, &UnmarkCellInput{RoomCode: created.RoomCode, PlayerID: "host-conn", Index: idx})
	s.Require().NoError(err)
	s.False(player.Marks[idx])

	_, err = s.svc.UnmarkCell(s.ctx, &UnmarkCellInput{RoomCode: created.RoomCode, PlayerID: "host-conn", Index: 12})
	s.Require().NoError(err)
	s.True(player.Marks[12], "free cell stays marked")
}

func (s *GameServiceTestSuite) TestClaimFullHouseRejectsIncompleteCard() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	_, err := s.svc.ClaimFullHouse(s.ctx, &ClaimFullHouseInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.ErrorIs(err, ErrInvalidMark)
	s.Zero(s.broadcaster.count(protocol.ServerFullHouse))
}

func (s *GameServiceTestSuite) TestClaimFullHouseWinsFilmsGame() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	room := s.room(created.RoomCode)
	player := room.Players["host-conn"]

	// Mark the whole card by hand without letting the evaluator run.
	room.Mu.Lock()
	for idx, cell := range player.Card.Cells {
		if cell.Kind == models.CellItem {
			room.Called = append(room.Called, cell.Value)
			player.Marks[idx] = true
		}
	}
	room.Mu.Unlock()

	_, err := s.svc.ClaimFullHouse(s.ctx, &ClaimFullHouseInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)

	s.Require().NotNil(room.Winner)
	s.Equal(models.WinKindFullHouse, room.Winner.Kind)
	s.Equal(1, s.broadcaster.count(protocol.ServerFullHouse))
	s.Equal(1, s.broadcaster.count(protocol.ServerGameWinner))
}
