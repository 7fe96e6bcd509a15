package security

import (
	"testing"

	uuid "github.com/google/uuid"
)

func TestUUIDGeneratorProducesUniqueIdentifiers(t *testing.T) {
	ids := NewUUIDGenerator()

	first := ids.Generate()
	second := ids.Generate()

	if first == second {
		t.Fatal("consecutive identifiers collided")
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("generated id %q is not a UUID: %v", first, err)
	}
}
