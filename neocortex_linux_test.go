//go:build linux

package neocortex

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func testKey(t *testing.T) Key {
	t.Helper()
	return Key(rand.Int31())
}

// create-read: the simplest round trip.
func TestCreateRead(t *testing.T) {
	h, err := NewHandleBuilder(42.0).RandomKey().WithDefaultLock()
	require.NoError(t, err)
	defer h.Close()

	v, err := h.Read()
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	assert.True(t, h.IsOwner())
}

// create-attach-read: a second handle observes the first's write, and
// closing the non-owner leaves the owner readable.
func TestCreateAttachRead(t *testing.T) {
	h, err := NewHandleBuilder(42.0).RandomKey().WithDefaultLock()
	require.NoError(t, err)
	defer h.Close()

	h2, err := AttachHandle[float64](h.Key(), DefaultLockFactory)
	require.NoError(t, err)
	assert.False(t, h2.IsOwner())

	v1, err := h.Read()
	require.NoError(t, err)
	v2, err := h2.Read()
	require.NoError(t, err)
	assert.Equal(t, v1, v2)

	require.NoError(t, h2.Close())
	// The non-owner's close must not have torn down the segment; the
	// owner handle stays readable.
	v1again, err := h.Read()
	require.NoError(t, err)
	assert.Equal(t, v1, v1again)
}

// 20 goroutines attach and read concurrently after a synchronized start.
func TestMultiThreadAttach(t *testing.T) {
	key := testKey(t)
	h, err := NewHandleBuilder(int32(42)).Key(key).WithDefaultLock()
	require.NoError(t, err)
	defer h.Close()

	const nGoroutines = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(nGoroutines)

	var group errgroup.Group
	for i := 0; i < nGoroutines; i++ {
		group.Go(func() error {
			wg.Done()
			<-start
			attached, err := AttachHandle[int32](key, DefaultLockFactory)
			if err != nil {
				return err
			}
			defer attached.Close()
			v, err := attached.Read()
			if err != nil {
				return err
			}
			if v != 42 {
				t.Errorf("expected 42, got %d", v)
			}
			return nil
		})
	}

	wg.Wait()
	close(start)
	require.NoError(t, group.Wait())
}

// An explicit-key collision without force_ownership fails Clean, and
// the first handle is unaffected.
func TestExplicitCollisionWithoutForce(t *testing.T) {
	key := testKey(t)
	h1, err := NewHandleBuilder("A").Key(key).WithDefaultLock()
	require.NoError(t, err)
	defer h1.Close()

	h2, err := NewHandleBuilder("B").Key(key).WithDefaultLock()
	require.Error(t, err)
	assert.Nil(t, h2)

	var sysErr *SystemError
	require.ErrorAs(t, err, &sysErr)
	assert.True(t, sysErr.IsClean())

	v, err := h1.Read()
	require.NoError(t, err)
	assert.Equal(t, "A", v)
}

// An explicit-key collision with force_ownership transfers ownership to
// the second handle without rewriting the payload.
func TestExplicitCollisionWithForce(t *testing.T) {
	key := testKey(t)
	h1, err := NewHandleBuilder("A").Key(key).WithDefaultLock()
	require.NoError(t, err)

	h2, err := NewHandleBuilder("B").Key(key).ForceOwnership().WithDefaultLock()
	require.NoError(t, err)
	require.NotNil(t, h2)
	assert.True(t, h2.IsOwner())

	// The collision path does not rewrite the payload: the attached
	// handle inherits whatever the original handle last stored.
	v, err := h2.Read()
	require.NoError(t, err)
	assert.Equal(t, "A", v)

	require.NoError(t, h2.Write("C"))
	v, err = h2.Read()
	require.NoError(t, err)
	assert.Equal(t, "C", v)

	// h1 is no longer the owner; its own Close must not remove the
	// segment h2 now owns.
	require.NoError(t, h1.Close())
	require.NoError(t, h2.Close())
}

// A write from another goroutine is observed by the creator after a
// synchronization point.
func TestWriteWins(t *testing.T) {
	h, err := NewHandleBuilder(int32(1)).RandomKey().WithDefaultLock()
	require.NoError(t, err)
	defer h.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		attached, err := AttachHandle[int32](h.Key(), DefaultLockFactory)
		if err != nil {
			t.Error(err)
			return
		}
		defer attached.Close()
		if err := attached.Write(2); err != nil {
			t.Error(err)
		}
	}()
	<-done

	v, err := h.Read()
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}
