package room

import (
	"context"

	"github.com/AvinashSingh09/WebBingo/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/AvinashSingh09/WebBingo/internal/repositories/room Repository

// Repository is the registry of live rooms, keyed by room code.
type Repository interface {
	// CreateRoom registers a room under its code. Returns ErrRoomExists if
	// the code is already taken, which callers use for collision retry.
	CreateRoom(ctx context.Context, input *CreateRoomInput) error

	// GetRoom returns the live room for a code, or ErrRoomNotFound.
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// DeleteRoom removes a room from the registry.
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// CountRooms returns the number of registered rooms.
	CountRooms(ctx context.Context) (int, error)
}
