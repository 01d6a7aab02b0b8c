package models

// Player is one connection's state within a room.
type Player struct {
	// ID is the connection identity, unique per active connection
	ID string

	// Name is the display name chosen at join time
	Name string

	// Card is regenerated from (room seed, player ID) on every reset
	Card Card

	// Marks holds marked cell positions; free cells are seeded as marked
	Marks map[int]bool

	// Lines holds completed line identifiers, announced once each
	Lines map[string]bool

	// FullHouse is set once every item cell on the card is marked
	FullHouse bool

	// PlayAgainVote records this player's restart vote
	PlayAgainVote bool
}
