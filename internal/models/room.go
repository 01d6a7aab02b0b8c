package models

import (
	"sync"
	"time"

	"github.com/AvinashSingh09/WebBingo/internal/common/clock"
)

// WinKind describes how a game was won.
type WinKind string

const (
	// WinKindLine indicates a completed row or column
	WinKindLine WinKind = "line"

	// WinKindFullHouse indicates full coverage of the card
	WinKindFullHouse WinKind = "fullhouse"
)

// Winner is the terminal record of a finished round.
type Winner struct {
	// PlayerID is the winning connection identity
	PlayerID string

	// Name is the winner's display name
	Name string

	// Kind is how the game was won
	Kind WinKind

	// LineID is the completed line identifier for WinKindLine, empty otherwise
	LineID string
}

// Room is one independent game session. All mutable state is guarded by Mu;
// every operation on a room, including timer callbacks, must hold it.
type Room struct {
	// Code is the short human-typable room identity
	Code string

	// Seed drives deterministic card generation for all players
	Seed uint32

	// HostID is the connection currently holding host authority. It is
	// never cleared on disconnect; the host reclaims it via HostKey.
	HostID string

	// HostKey is the possession-based host reclaim secret
	HostKey string

	// Variant is the card layout and win rule set
	Variant Variant

	// Called is the append-only drawn history, never containing duplicates
	Called []string

	// Running is true while the draw loop is active
	Running bool

	// Interval is the draw period, clamped by the service
	Interval time.Duration

	// AutoMark controls server-side marking of drawn items
	AutoMark bool

	// Winner is nil until a round ends; terminal until reset
	Winner *Winner

	// GameEnded gates the restart voting controller
	GameEnded bool

	// Players maps connection identity to player state
	Players map[string]*Player

	// Order preserves player insertion order for win evaluation
	Order []string

	// PlayAgainVotes is the set of distinct restart voters
	PlayAgainVotes map[string]bool

	// CreatedAt is when the room was opened
	CreatedAt time.Time

	// Mu guards all mutable room state
	Mu sync.Mutex

	// Timer is the armed draw timer, nil when disarmed
	Timer clock.Timer

	// TimerGen invalidates stale timer callbacks; a tick whose generation
	// does not match is inert
	TimerGen uint64

	// ResetTimer is the pending post-vote restart, nil when none
	ResetTimer clock.Timer
}

// PlayerCount returns the current number of players in the room.
func (r *Room) PlayerCount() int {
	return len(r.Players)
}
