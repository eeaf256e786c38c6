package utils

import "github.com/google/uuid"

// UUIDGenerator mints time-ordered (version 7) identifiers for records
// created on the client.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new v7 UUID, falling back to a random v4 one if the
// clock source fails.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
