package game

import (
	"context"
	"errors"
	"time"

	"github.com/AvinashSingh09/WebBingo/internal/models"
	roomRepo "github.com/AvinashSingh09/WebBingo/internal/repositories/room"
)

const (
	defaultMaxPlayers   = 200
	defaultInterval     = 2500 * time.Millisecond
	defaultMinInterval  = 300 * time.Millisecond
	defaultMaxInterval  = 6000 * time.Millisecond
	defaultRestartDelay = 2 * time.Second
	defaultQuorum       = 0.6

	// createRoomAttempts bounds the code collision retry loop
	createRoomAttempts = 10

	defaultPlayerName = "Player"
)

// service implements the Service interface
type service struct {
	config      *Config
	roomRepo    roomRepo.Repository
	broadcaster Broadcaster
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RoomRepo == nil {
		return nil, errors.New("room repository cannot be nil")
	}
	if cfg.Cards == nil {
		return nil, errors.New("card generator cannot be nil")
	}
	if cfg.Keys == nil {
		return nil, errors.New("key generator cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.Broadcaster == nil {
		return nil, errors.New("broadcaster cannot be nil")
	}

	if cfg.MaxPlayersPerRoom <= 0 {
		cfg.MaxPlayersPerRoom = defaultMaxPlayers
	}
	if cfg.DefaultInterval <= 0 {
		cfg.DefaultInterval = defaultInterval
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = defaultMinInterval
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = defaultMaxInterval
	}
	if cfg.RestartDelay <= 0 {
		cfg.RestartDelay = defaultRestartDelay
	}
	if cfg.RestartQuorum <= 0 || cfg.RestartQuorum > 1 {
		cfg.RestartQuorum = defaultQuorum
	}

	return &service{
		config:      cfg,
		roomRepo:    cfg.RoomRepo,
		broadcaster: cfg.Broadcaster,
	}, nil
}

// CreateRoom opens a new room in lobby state with the creator as host. Code
// collisions are retried against the registry.
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	room := &models.Room{
		Seed:           s.config.Keys.Seed(),
		HostID:         input.PlayerID,
		HostKey:        s.config.Keys.HostKey(),
		Variant:        s.config.Cards.Variant(),
		Interval:       s.config.DefaultInterval,
		AutoMark:       true,
		Players:        make(map[string]*models.Player),
		PlayAgainVotes: make(map[string]bool),
		CreatedAt:      s.config.Clock.Now(),
	}

	name := input.Name
	if name == "" {
		name = defaultPlayerName
	}
	host := s.newPlayerLocked(room, input.PlayerID, name)
	room.Players[input.PlayerID] = host
	room.Order = append(room.Order, input.PlayerID)

	var err error
	for attempt := 0; attempt < createRoomAttempts; attempt++ {
		room.Code = s.config.Keys.RoomCode()
		err = s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{Room: room})
		if err == nil {
			break
		}
		if !errors.Is(err, roomRepo.ErrRoomExists) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	s.config.Logger.Info().
		Str("room", room.Code).
		Str("variant", string(room.Variant)).
		Msg("room created")

	return &CreateRoomOutput{
		RoomCode: room.Code,
		Seed:     room.Seed,
		HostKey:  room.HostKey,
		Card:     host.Card,
		Marks:    markedCells(host),
	}, nil
}

// JoinRoom adds a connection to a room and deals its card.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if _, rejoining := room.Players[input.PlayerID]; !rejoining && room.PlayerCount() >= s.config.MaxPlayersPerRoom {
		return nil, ErrRoomFull
	}

	if input.HostKey != "" && input.HostKey == room.HostKey {
		room.HostID = input.PlayerID
	}
	if room.HostID == "" {
		// A room that somehow lost its host adopts the next joiner.
		room.HostID = input.PlayerID
	}

	player, ok := room.Players[input.PlayerID]
	if !ok {
		name := input.Name
		if name == "" {
			name = defaultPlayerName
		}
		player = s.newPlayerLocked(room, input.PlayerID, name)
		room.Players[input.PlayerID] = player
		room.Order = append(room.Order, input.PlayerID)
	}

	s.config.Logger.Debug().
		Str("room", room.Code).
		Str("player", player.ID).
		Bool("host", room.HostID == player.ID).
		Msg("player joined")

	s.broadcastStateLocked(room)

	return &JoinRoomOutput{
		RoomCode: room.Code,
		PlayerID: player.ID,
		Seed:     room.Seed,
		IsHost:   room.HostID == player.ID,
		Card:     player.Card,
		Called:   append([]string(nil), room.Called...),
		Marks:    markedCells(player),
	}, nil
}

// newPlayerLocked deals a card from the room seed and seeds free cells as
// marked.
func (s *service) newPlayerLocked(room *models.Room, playerID, name string) *models.Player {
	card := s.config.Cards.Generate(room.Seed, playerID)

	marks := make(map[int]bool)
	for _, idx := range card.FreeCells() {
		marks[idx] = true
	}

	return &models.Player{
		ID:    playerID,
		Name:  name,
		Card:  card,
		Marks: marks,
		Lines: make(map[string]bool),
	}
}

// getRoom resolves a code against the registry.
func (s *service) getRoom(ctx context.Context, code string) (*models.Room, error) {
	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{Code: code})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// requirePlayer resolves the caller within a locked room.
func requirePlayer(room *models.Room, playerID string) (*models.Player, error) {
	player, ok := room.Players[playerID]
	if !ok {
		return nil, ErrPlayerNotInRoom
	}
	return player, nil
}

// requireHost verifies host authority within a locked room.
func requireHost(room *models.Room, playerID string) error {
	if _, ok := room.Players[playerID]; !ok {
		return ErrPlayerNotInRoom
	}
	if room.HostID != playerID {
		return ErrNotHost
	}
	return nil
}

// markedCells flattens a player's mark set for output.
func markedCells(player *models.Player) []int {
	out := make([]int, 0, len(player.Marks))
	for idx, on := range player.Marks {
		if on {
			out = append(out, idx)
		}
	}
	return out
}
