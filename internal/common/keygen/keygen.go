package keygen

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_keygen.go github.com/AvinashSingh09/WebBingo/internal/common/keygen Generator

// roomCodeAlphabet omits visually ambiguous characters (0/O, 1/I).
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomCodeLength is the fixed length of a room code.
const RoomCodeLength = 5

// Generator produces room identities and secrets.
type Generator interface {
	// RoomCode returns a short human-typable code. Uniqueness against the
	// live registry is the caller's concern.
	RoomCode() string

	// HostKey returns an opaque host reclaim secret.
	HostKey() string

	// Seed returns a fresh 32-bit card generation seed.
	Seed() uint32
}

// DefaultGenerator implements Generator using math/rand and uuid.
type DefaultGenerator struct{}

// New creates a new key generator.
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// RoomCode returns a fresh 5-character code.
func (g *DefaultGenerator) RoomCode() string {
	var b strings.Builder
	b.Grow(RoomCodeLength)
	for i := 0; i < RoomCodeLength; i++ {
		b.WriteByte(roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))])
	}
	return b.String()
}

// HostKey returns a fresh opaque secret.
func (g *DefaultGenerator) HostKey() string {
	return uuid.New().String()
}

// Seed returns a fresh 32-bit seed.
func (g *DefaultGenerator) Seed() uint32 {
	return rand.Uint32()
}
