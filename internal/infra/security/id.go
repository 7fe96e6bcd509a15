package security

import uuid "github.com/google/uuid"

// UUIDGenerator implements port.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator constructs a UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh opaque identifier.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
