package game

import "errors"

var (
	// ErrRoomNotFound indicates no room is registered under the code
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomFull indicates the room is at maximum capacity
	ErrRoomFull = errors.New("room is full")

	// ErrPlayerNotInRoom indicates the caller is not a member of the room
	ErrPlayerNotInRoom = errors.New("player not in room")

	// ErrNotHost indicates a host-only operation from a non-host connection
	ErrNotHost = errors.New("caller is not the host")

	// ErrGameLocked indicates the round already has a winner
	ErrGameLocked = errors.New("game already has a winner")

	// ErrInvalidMark indicates a mark on an undrawn item or unusable cell
	ErrInvalidMark = errors.New("invalid mark")

	// ErrGameNotEnded indicates a restart vote before the round ended
	ErrGameNotEnded = errors.New("game has not ended")
)
