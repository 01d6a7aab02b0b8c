package room

import (
	"context"
	"errors"
	"sync"

	"github.com/AvinashSingh09/WebBingo/internal/models"
)

// memoryRepo is the in-process registry. Rooms live only for the lifetime of
// the process; the lock guards the map, never the rooms themselves (each room
// carries its own mutex).
type memoryRepo struct {
	mu    sync.RWMutex
	rooms map[string]*models.Room
}

// NewMemory creates a new in-memory room repository.
func NewMemory() (*memoryRepo, error) {
	return &memoryRepo{
		rooms: make(map[string]*models.Room),
	}, nil
}

// CreateRoom registers a room under its code.
func (r *memoryRepo) CreateRoom(_ context.Context, input *CreateRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("room cannot be nil")
	}
	if input.Room.Code == "" {
		return errors.New("room code cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[input.Room.Code]; exists {
		return ErrRoomExists
	}
	r.rooms[input.Room.Code] = input.Room

	return nil
}

// GetRoom returns the live room for a code.
func (r *memoryRepo) GetRoom(_ context.Context, input *GetRoomInput) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[input.Code]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

// DeleteRoom removes a room from the registry.
func (r *memoryRepo) DeleteRoom(_ context.Context, input *DeleteRoomInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[input.Code]; !ok {
		return ErrRoomNotFound
	}
	delete(r.rooms, input.Code)

	return nil
}

// CountRooms returns the number of registered rooms.
func (r *memoryRepo) CountRooms(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rooms), nil
}
