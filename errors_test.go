package neocortex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemErrorClean(t *testing.T) {
	cause := errors.New("boom")
	err := newCleanError("error during segment creation", cause)

	require.NotNil(t, err)
	assert.Equal(t, KindClean, err.Kind())
	assert.True(t, err.IsClean())
	assert.False(t, err.IsDirty())
	assert.Contains(t, err.Error(), "error during segment creation")
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err.Unwrap(), cause)
}

func TestSystemErrorDirty(t *testing.T) {
	cause := errors.New("boom")
	err := newDirtyError("error during lock creation", cause)

	assert.Equal(t, KindDirty, err.Kind())
	assert.True(t, err.IsDirty())
	assert.False(t, err.IsClean())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "clean", KindClean.String())
	assert.Equal(t, "dirty", KindDirty.String())
}
