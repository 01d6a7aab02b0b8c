package game

import (
	"fmt"
	"time"

	"github.com/AvinashSingh09/WebBingo/internal/models"
	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

// endRound forces the room into the post-game state voting requires.
func (s *GameServiceTestSuite) endRound(code string) {
	room := s.room(code)
	room.Mu.Lock()
	room.GameEnded = true
	room.Winner = &models.Winner{PlayerID: "host-conn", Name: "Host", Kind: models.WinKindFullHouse}
	room.Running = false
	room.Mu.Unlock()
}

func (s *GameServiceTestSuite) TestVotePlayAgainRequiresEndedGame() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	_, err := s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.ErrorIs(err, ErrGameNotEnded)
}

func (s *GameServiceTestSuite) TestVoteQuorumFivePlayersNeedsThree() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 4)
	s.endRound(created.RoomCode)

	out, err := s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: created.RoomCode, PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(1, out.Votes)
	s.Equal(3, out.Needed)
	s.Empty(s.scheduled, "no restart before quorum")

	out, err = s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: created.RoomCode, PlayerID: "p2"})
	s.Require().NoError(err)
	s.Equal(2, out.Votes)
	s.Empty(s.scheduled)

	out, err = s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: created.RoomCode, PlayerID: "p3"})
	s.Require().NoError(err)
	s.Equal(3, out.Votes)
	s.Require().Len(s.scheduled, 1, "quorum schedules the restart")
	s.Equal(2*time.Second, s.scheduled[0].delay)
}

func (s *GameServiceTestSuite) TestVoteQuorumThreePlayersNeedsTwo() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 2)
	s.endRound(created.RoomCode)

	out, err := s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: created.RoomCode, PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(2, out.Needed)
	s.Empty(s.scheduled)

	_, err = s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: created.RoomCode, PlayerID: "p2"})
	s.Require().NoError(err)
	s.Len(s.scheduled, 1)
}

func (s *GameServiceTestSuite) TestRepeatVoteIsNoOp() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 4)
	s.endRound(created.RoomCode)

	for i := 0; i < 3; i++ {
		out, err := s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: created.RoomCode, PlayerID: "p1"})
		s.Require().NoError(err)
		s.Equal(1, out.Votes, "repeated votes from one player count once")
	}
	s.Empty(s.scheduled)
}

func (s *GameServiceTestSuite) TestQuorumRestartsGameAfterDelay() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 2)
	s.endRound(created.RoomCode)

	room := s.room(created.RoomCode)
	oldSeed := room.Seed

	for _, id := range []string{"p1", "p2"} {
		_, err := s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: created.RoomCode, PlayerID: id})
		s.Require().NoError(err)
	}
	s.Require().Len(s.scheduled, 1)

	s.fireNextTick()

	s.NotEqual(oldSeed, room.Seed)
	s.Nil(room.Winner)
	s.False(room.GameEnded)
	s.True(room.Running, "restart brings the draw loop back up")
	s.Len(room.Called, 1, "restart performs the opening draw")
	s.Empty(room.PlayAgainVotes)
	s.Equal(1, s.broadcaster.count(protocol.ServerNewGameStarting))
	s.Equal(3, s.broadcaster.count(protocol.ServerNewCard))
}

func (s *GameServiceTestSuite) TestVoteExitRemovesPlayerAndVote() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 4)
	s.endRound(created.RoomCode)

	_, err := s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: created.RoomCode, PlayerID: "p1"})
	s.Require().NoError(err)

	_, err = s.svc.VoteExit(s.ctx, &VoteExitInput{RoomCode: created.RoomCode, PlayerID: "p1"})
	s.Require().NoError(err)

	room := s.room(created.RoomCode)
	s.Equal(4, room.PlayerCount())
	s.NotContains(room.Players, "p1")
	s.NotContains(room.PlayAgainVotes, "p1")
	s.NotContains(room.Order, "p1")
}

func (s *GameServiceTestSuite) TestDisconnectKeepsHostIdentity() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")
	s.joinPlayers(created.RoomCode, 1)

	_, err := s.svc.Disconnect(s.ctx, &DisconnectInput{RoomCode: created.RoomCode, PlayerID: "host-conn"})
	s.Require().NoError(err)

	room := s.room(created.RoomCode)
	s.Equal("host-conn", room.HostID, "host identity survives disconnect for reclaim")
	s.NotContains(room.Players, "host-conn")
}

func (s *GameServiceTestSuite) TestDisconnectUnknownPlayer() {
	s.newService(models.VariantFilms)
	created := s.createRoomWithHost("host-conn")

	_, err := s.svc.Disconnect(s.ctx, &DisconnectInput{RoomCode: created.RoomCode, PlayerID: "ghost"})
	s.ErrorIs(err, ErrPlayerNotInRoom)
}

func (s *GameServiceTestSuite) TestVotesAcrossTwoRoomsStayIsolated() {
	s.newService(models.VariantFilms)
	first := s.createRoomWithHost("host-a")

	second, err := s.svc.CreateRoom(s.ctx, &CreateRoomInput{PlayerID: "host-b", Name: "B"})
	s.Require().NoError(err)
	for i := 1; i <= 2; i++ {
		id := fmt.Sprintf("q%d", i)
		_, err := s.svc.JoinRoom(s.ctx, &JoinRoomInput{RoomCode: second.RoomCode, PlayerID: id, Name: id})
		s.Require().NoError(err)
	}
	s.endRound(second.RoomCode)

	_, err = s.svc.VotePlayAgain(s.ctx, &VotePlayAgainInput{RoomCode: second.RoomCode, PlayerID: "q1"})
	s.Require().NoError(err)

	s.Empty(s.room(first.RoomCode).PlayAgainVotes)
	s.Len(s.room(second.RoomCode).PlayAgainVotes, 1)
}
