package neocortex

import "fmt"

// Key names a shared memory segment and, by derivation (see
// semaphoreName), its lock's kernel name.
type Key int32

// maxRandomKeyAttempts is the default retry budget for a RandomKeyedHandleBuilder
// draw-and-create loop. This is a policy constant, not a derived
// number.
const maxRandomKeyAttempts = 20

// Handle bundles a mapped shared memory segment with the lock that
// serializes access to it. The zero value is not usable; obtain a Handle
// from a HandleBuilder or from AttachHandle. The fields here are platform
// independent; the methods and constructors that actually touch the kernel
// (Read, Write, Close, createHandle, AttachHandle, ...) live in
// segment_linux.go, since there is no such thing as a System V shared
// memory segment outside of Linux.
type Handle[T any] struct {
	key     Key
	id      int
	size    uintptr
	isOwner bool
	lock    Locker
	addr    uintptr
	closed  bool
}

// String reports the handle's key, kernel id, payload size, and ownership,
// mirroring the Display-style summary the original hive implementation
// printed for a segment.
func (h *Handle[T]) String() string {
	return fmt.Sprintf("key: %d, id: %d, size: %d, is_owner: %t", h.key, h.id, h.size, h.isOwner)
}

// Key returns the segment's key.
func (h *Handle[T]) Key() Key {
	return h.key
}

// IsOwner reports whether this handle is responsible for removing the
// underlying segment and lock from the kernel on Close.
func (h *Handle[T]) IsOwner() bool {
	return h.isOwner
}
