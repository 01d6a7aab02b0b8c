package game

import (
	"context"

	"github.com/AvinashSingh09/WebBingo/internal/protocol"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/AvinashSingh09/WebBingo/internal/services/game Service,Broadcaster

// Service owns all room and game state transitions. Every operation is keyed
// by the caller's connection identity; host-only operations verify authority
// internally.
type Service interface {
	// CreateRoom opens a new room with the creator as host and deals the
	// host's card. The returned secret reclaims host authority on rejoin.
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a connection to a room and deals its deterministic card.
	// Presenting the room's host key transfers host authority to the caller.
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// StartGame begins or resumes the draw loop. No-op while running; rejected
	// once a winner exists.
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// PauseGame halts the draw loop without clearing history.
	PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error)

	// ResetGame starts a fresh round: new seed, cleared history and winner,
	// regenerated cards, and the draw loop running again.
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// SetInterval changes the draw period, clamped to the configured bounds.
	SetInterval(ctx context.Context, input *SetIntervalInput) (*SetIntervalOutput, error)

	// SetAutoMark toggles server-side marking of drawn items.
	SetAutoMark(ctx context.Context, input *SetAutoMarkInput) (*SetAutoMarkOutput, error)

	// CallNext performs one manual draw while no winner exists.
	CallNext(ctx context.Context, input *CallNextInput) (*CallNextOutput, error)

	// MarkCell marks a cell on the caller's own card. Only drawn items and
	// free cells are accepted; anything else is rejected without side effects.
	MarkCell(ctx context.Context, input *MarkCellInput) (*MarkCellOutput, error)

	// UnmarkCell clears a mark on the caller's own card. Free cells stay
	// marked; already-announced lines are not retracted.
	UnmarkCell(ctx context.Context, input *UnmarkCellInput) (*UnmarkCellOutput, error)

	// ClaimFullHouse evaluates the caller's card for full coverage on demand.
	ClaimFullHouse(ctx context.Context, input *ClaimFullHouseInput) (*ClaimFullHouseOutput, error)

	// VotePlayAgain casts a restart vote. Only valid after a round has ended;
	// reaching quorum schedules a full restart.
	VotePlayAgain(ctx context.Context, input *VotePlayAgainInput) (*VotePlayAgainOutput, error)

	// VoteExit removes the caller from the room.
	VoteExit(ctx context.Context, input *VoteExitInput) (*VoteExitOutput, error)

	// Disconnect removes a dropped connection from its room. Host identity is
	// retained so the host can reclaim it on rejoin.
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)
}

// Broadcaster delivers server messages to connected clients. The websocket
// hub implements it; tests substitute a recorder.
type Broadcaster interface {
	// ToRoom sends a message to every connection in a room.
	ToRoom(roomCode string, msg protocol.ServerMessage)

	// ToPlayer sends a message to a single connection.
	ToPlayer(playerID string, msg protocol.ServerMessage)
}
