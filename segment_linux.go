//go:build linux

package neocortex

import (
	"fmt"
	"unsafe"

	"github.com/hashicorp/go-multierror"
)

// Read acquires the lock, copies the payload out of shared memory, and
// releases the lock. The returned value is a by-value duplicate; the slot
// itself is left untouched.
func (h *Handle[T]) Read() (T, error) {
	var zero T
	if err := h.lock.ReadLock(); err != nil {
		return zero, err
	}
	defer h.lock.Release()
	return *addrOf[T](h.addr), nil
}

// Write acquires the lock, overwrites the payload in shared memory by
// bit-copy, and releases the lock. No destructor runs for the previous
// occupant.
func (h *Handle[T]) Write(v T) error {
	if err := h.lock.WriteLock(); err != nil {
		return err
	}
	defer h.lock.Release()
	*addrOf[T](h.addr) = v
	return nil
}

// Close releases this handle. A non-owner handle does nothing observable
// to the kernel beyond releasing its own lock reference and unmapping the
// segment; an owner handle additionally removes the segment. Close never returns an error that
// reflects a cleanup failure - those are logged - but it does return a
// non-nil error if called more than once.
func (h *Handle[T]) Close() error {
	if h.closed {
		return newCleanError("handle already closed", nil)
	}
	h.closed = true

	var result *multierror.Error
	if err := h.lock.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := shmDetach(h.addr); err != nil {
		defaultLogger.Errorf("error during shmdt for key %d: %v", h.key, err)
	}
	if h.isOwner {
		if err := shmRemove(h.id); err != nil {
			defaultLogger.Errorf("error during shmctl(IPC_RMID) for key %d: %v", h.key, err)
		} else {
			defaultLogger.Tracef("removed segment id %d for key %d", h.id, h.key)
		}
	}
	return result.ErrorOrNil()
}

// createHandle resolves the effective key, creates the segment, handles
// collisions (force-ownership transfer, random retry, or plain
// propagation), maps it, writes the payload, and constructs the lock.
func createHandle[T any](key *Key, payload T, forceOwnership bool, factory LockFactory, settings LockSettings, random RandomSource, maxAttempts int) (*Handle[T], error) {
	var size uintptr
	{
		var zero T
		size = unsafe.Sizeof(zero)
	}

	if key != nil {
		return createWithExplicitKey[T](*key, payload, forceOwnership, size, factory, settings)
	}
	if maxAttempts <= 0 {
		maxAttempts = maxRandomKeyAttempts
	}
	return createWithRandomKey[T](payload, size, factory, settings, random, maxAttempts)
}

func createWithExplicitKey[T any](key Key, payload T, forceOwnership bool, size uintptr, factory LockFactory, settings LockSettings) (*Handle[T], error) {
	id, err := shmCreate(key, size)
	if err == nil {
		return finishCreate[T](key, id, size, payload, factory, settings)
	}
	if !errAlreadyExists(err) {
		return nil, newCleanError("error during segment creation", err)
	}
	if !forceOwnership {
		return nil, newCleanError("error during segment creation: key already in use", err)
	}

	defaultLogger.Tracef("key %d collided, force_ownership set: attaching and transferring ownership", key)
	h, attachErr := attachHandle[T](key, factory)
	if attachErr != nil {
		return nil, attachErr
	}
	h.isOwner = true
	h.lock.ForceOwnership()
	return h, nil
}

func createWithRandomKey[T any](payload T, size uintptr, factory LockFactory, settings LockSettings, random RandomSource, maxAttempts int) (*Handle[T], error) {
	if random == nil {
		random = newDefaultRandomSource()
	}
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		key := Key(random.Int32())
		id, err := shmCreate(key, size)
		if err == nil {
			return finishCreate[T](key, id, size, payload, factory, settings)
		}
		if !errAlreadyExists(err) {
			return nil, newCleanError("error during segment creation", err)
		}
		lastErr = err
		defaultLogger.Tracef("random key %d collided on attempt %d/%d", key, attempt+1, maxAttempts)
	}
	return nil, newCleanError(fmt.Sprintf("error during segment creation: exhausted %d random key attempts", maxAttempts), lastErr)
}

func finishCreate[T any](key Key, id int, size uintptr, payload T, factory LockFactory, settings LockSettings) (*Handle[T], error) {
	addr, err := shmAttach(id)
	if err != nil {
		if rmErr := shmRemove(id); rmErr != nil {
			defaultLogger.Errorf("error during shmctl(IPC_RMID) cleanup for key %d: %v", key, rmErr)
		}
		return nil, newCleanError("error during segment attach", err)
	}
	defaultLogger.Tracef("allocated %d bytes with id %d for key %d", size, id, key)

	*addrOf[T](addr) = payload

	lock, err := factory.Create(key, settings)
	if err != nil {
		// The segment is already mapped; surfaced as Dirty rather than
		// attempting segment removal here, since that would require telling
		// apart "owner of a half-initialized segment" from other ownership states.
		return nil, newDirtyError("error during lock creation", err)
	}

	return &Handle[T]{
		key:     key,
		id:      id,
		size:    size,
		isOwner: true,
		lock:    lock,
		addr:    addr,
	}, nil
}

// AttachHandle attaches to an already-allocated segment and its lock by
// key. The returned handle is never an owner; no payload is written, so
// reads observe whatever the creating handle last stored.
func AttachHandle[T any](key Key, factory LockFactory) (*Handle[T], error) {
	return attachHandle[T](key, factory)
}

func attachHandle[T any](key Key, factory LockFactory) (*Handle[T], error) {
	lock, err := factory.Attach(key)
	if err != nil {
		return nil, err
	}

	id, err := shmLookup(key)
	if err != nil {
		return nil, newCleanError("error during segment lookup", err)
	}

	addr, err := shmAttach(id)
	if err != nil {
		return nil, newCleanError("error during segment attach", err)
	}
	defaultLogger.Tracef("attached to segment id %d for key %d", id, key)

	var zero T
	return &Handle[T]{
		key:     key,
		id:      id,
		size:    unsafe.Sizeof(zero),
		isOwner: false,
		lock:    lock,
		addr:    addr,
	}, nil
}
