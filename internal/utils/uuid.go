package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for trace IDs and websocket
// connections. It falls back to a random v4 UUID when v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
