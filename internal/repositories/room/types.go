package room

import (
	"errors"

	"github.com/AvinashSingh09/WebBingo/internal/models"
)

var (
	// ErrRoomNotFound indicates no room is registered under the code
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomExists indicates a room code collision
	ErrRoomExists = errors.New("room already exists")
)

// CreateRoomInput contains parameters for registering a room
type CreateRoomInput struct {
	// Room to register; its Code is the registry key
	Room *models.Room
}

// GetRoomInput contains parameters for looking up a room
type GetRoomInput struct {
	// Code is the room code
	Code string
}

// DeleteRoomInput contains parameters for removing a room
type DeleteRoomInput struct {
	// Code is the room code
	Code string
}
