package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/AvinashSingh09/WebBingo/internal/cards"
	"github.com/AvinashSingh09/WebBingo/internal/common/clock"
	"github.com/AvinashSingh09/WebBingo/internal/common/keygen"
	"github.com/AvinashSingh09/WebBingo/internal/models"
	roomRepo "github.com/AvinashSingh09/WebBingo/internal/repositories/room"
)

// Config holds the game service dependencies and tunables.
type Config struct {
	// MaxPlayersPerRoom caps room membership; defaults to 200
	MaxPlayersPerRoom int

	// DefaultInterval is the draw period for new rooms; defaults to 2.5s
	DefaultInterval time.Duration

	// MinInterval and MaxInterval bound SetInterval; default 300ms / 6s
	MinInterval time.Duration
	MaxInterval time.Duration

	// RestartDelay is the pause between quorum and restart; defaults to 2s
	RestartDelay time.Duration

	// RestartQuorum is the fraction of players whose votes trigger a
	// restart; defaults to 0.6, applied as ceil(quorum * players)
	RestartQuorum float64

	// RoomRepo is the live room registry
	RoomRepo roomRepo.Repository

	// Cards generates deterministic player cards
	Cards *cards.Generator

	// Keys produces room codes, host keys and seeds
	Keys keygen.Generator

	// Clock drives draw scheduling
	Clock clock.Clock

	// Broadcaster delivers events to clients
	Broadcaster Broadcaster

	// Logger for service events
	Logger zerolog.Logger
}

// CreateRoomInput contains parameters for opening a room
type CreateRoomInput struct {
	// PlayerID is the creator's connection identity; it becomes the host
	PlayerID string

	// Name is the host's display name
	Name string
}

// CreateRoomOutput contains the result of opening a room
type CreateRoomOutput struct {
	// RoomCode is the new room's code
	RoomCode string

	// Seed is the room's card generation seed
	Seed uint32

	// HostKey is the host reclaim secret, delivered to the creator only
	HostKey string

	// Card is the host's own card
	Card models.Card

	// Marks are the host's pre-marked positions (free cells)
	Marks []int
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	// RoomCode of the room to join
	RoomCode string

	// PlayerID is the caller's connection identity
	PlayerID string

	// Name is the display name; defaults to "Player"
	Name string

	// HostKey, when matching the room's secret, grants host authority
	HostKey string
}

// JoinRoomOutput contains the joiner's private view of the room
type JoinRoomOutput struct {
	RoomCode string
	PlayerID string
	Seed     uint32
	IsHost   bool

	// Card is the joiner's own card
	Card models.Card

	// Called is the drawn history so far
	Called []string

	// Marks are the joiner's marked positions (free cells pre-marked)
	Marks []int
}

// StartGameInput contains parameters for starting the draw loop
type StartGameInput struct {
	RoomCode string
	PlayerID string
}

// StartGameOutput contains the result of starting the draw loop
type StartGameOutput struct{}

// PauseGameInput contains parameters for pausing the draw loop
type PauseGameInput struct {
	RoomCode string
	PlayerID string
}

// PauseGameOutput contains the result of pausing the draw loop
type PauseGameOutput struct{}

// ResetGameInput contains parameters for abandoning the current round
type ResetGameInput struct {
	RoomCode string
	PlayerID string
}

// ResetGameOutput contains the result of a reset
type ResetGameOutput struct{}

// SetIntervalInput contains parameters for changing the draw period
type SetIntervalInput struct {
	RoomCode string
	PlayerID string

	// Interval is the requested draw period before clamping
	Interval time.Duration
}

// SetIntervalOutput contains the applied draw period
type SetIntervalOutput struct {
	// Applied is the interval after clamping
	Applied time.Duration
}

// SetAutoMarkInput contains parameters for toggling auto-marking
type SetAutoMarkInput struct {
	RoomCode string
	PlayerID string
	Enabled  bool
}

// SetAutoMarkOutput contains the result of toggling auto-marking
type SetAutoMarkOutput struct{}

// CallNextInput contains parameters for one manual draw
type CallNextInput struct {
	RoomCode string
	PlayerID string
}

// CallNextOutput contains the result of a manual draw
type CallNextOutput struct {
	// Item drawn; empty if the bag was exhausted
	Item string
}

// MarkCellInput contains parameters for marking a cell
type MarkCellInput struct {
	RoomCode string
	PlayerID string

	// Index is the cell position on the caller's card
	Index int
}

// MarkCellOutput contains the result of marking a cell
type MarkCellOutput struct{}

// UnmarkCellInput contains parameters for clearing a mark
type UnmarkCellInput struct {
	RoomCode string
	PlayerID string
	Index    int
}

// UnmarkCellOutput contains the result of clearing a mark
type UnmarkCellOutput struct{}

// ClaimFullHouseInput contains parameters for an explicit full house claim
type ClaimFullHouseInput struct {
	RoomCode string
	PlayerID string
}

// ClaimFullHouseOutput contains the result of a full house claim
type ClaimFullHouseOutput struct{}

// VotePlayAgainInput contains parameters for a restart vote
type VotePlayAgainInput struct {
	RoomCode string
	PlayerID string
}

// VotePlayAgainOutput contains restart vote progress
type VotePlayAgainOutput struct {
	// Votes cast so far
	Votes int

	// Needed is the quorum for the current player count
	Needed int
}

// VoteExitInput contains parameters for leaving a room
type VoteExitInput struct {
	RoomCode string
	PlayerID string
}

// VoteExitOutput contains the result of leaving a room
type VoteExitOutput struct{}

// DisconnectInput contains parameters for cleaning up a dropped connection
type DisconnectInput struct {
	RoomCode string
	PlayerID string
}

// DisconnectOutput contains the result of a disconnect cleanup
type DisconnectOutput struct{}
