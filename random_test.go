package neocortex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRandomSourceProducesValues(t *testing.T) {
	source := newDefaultRandomSource()
	seen := make(map[int32]bool)
	for i := 0; i < 50; i++ {
		seen[source.Int32()] = true
	}
	// Collisions are allowed by contract, but 50 draws from
	// a 32-bit source collapsing to a single value would indicate a
	// broken generator.
	assert.Greater(t, len(seen), 1)
}
