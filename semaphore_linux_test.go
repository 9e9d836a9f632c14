//go:build linux

package neocortex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeForDefaultsToOwnerOnly(t *testing.T) {
	assert.Equal(t, modeFor(nil), modeFor(&SemaphoreSettings{Permission: PermOwnerOnly}))
}

func TestModeForCustom(t *testing.T) {
	got := modeFor(&SemaphoreSettings{Permission: PermCustom, Mode: 0o600})
	assert.EqualValues(t, 0o600, got)
}

func TestSemaphoreNameDerivation(t *testing.T) {
	assert.Equal(t, "/neocortex_sem_1234", semaphoreName(Key(1234)))
	assert.Equal(t, "/neocortex_sem_-1", semaphoreName(Key(-1)))
}
