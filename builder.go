package neocortex

// The phase types here are platform independent. Their terminal methods,
// WithLock and WithDefaultLock, actually allocate a segment, so they live
// in builder_linux.go alongside the rest of the segment-creation code.

// HandleBuilder is a Handle under construction, in the Initial phase: only
// the payload has been decided. Key or RandomKey must be called before a
// Handle can be produced - the set of methods available at each phase is
// itself the compile-time witness that a key-selection policy was chosen.
type HandleBuilder[T any] struct {
	payload T
}

// NewHandleBuilder starts a builder carrying payload as the value that
// will be written into the new segment.
func NewHandleBuilder[T any](payload T) HandleBuilder[T] {
	return HandleBuilder[T]{payload: payload}
}

// Key commits to an explicit, caller-chosen key. Only a builder reached
// this way exposes ForceOwnership.
func (b HandleBuilder[T]) Key(key Key) KeyedHandleBuilder[T] {
	return KeyedHandleBuilder[T]{payload: b.payload, key: key}
}

// RandomKey commits to minting a key from a RandomSource at construction
// time. ForceOwnership is not offered from this phase: there is no
// existing segment a random key could plausibly mean to reclaim.
func (b HandleBuilder[T]) RandomKey() RandomKeyedHandleBuilder[T] {
	return RandomKeyedHandleBuilder[T]{payload: b.payload, random: newDefaultRandomSource(), maxAttempts: maxRandomKeyAttempts}
}

// KeyedHandleBuilder is a Handle under construction with an explicit key
// chosen. It is terminal via WithLock/WithDefaultLock, and additionally
// supports ForceOwnership.
type KeyedHandleBuilder[T any] struct {
	payload        T
	key            Key
	forceOwnership bool
}

// ForceOwnership sets the flag that turns a creation collision on this
// key into an ownership transfer: if a segment already exists under Key,
// this builder attaches to it instead of failing, and the resulting
// handle becomes its owner. The caller is asserting, unchecked, that the
// existing segment holds a T-compatible payload; the existing contents
// are not overwritten.
func (b KeyedHandleBuilder[T]) ForceOwnership() KeyedHandleBuilder[T] {
	b.forceOwnership = true
	return b
}

// RandomKeyedHandleBuilder is a Handle under construction with a key that
// will be drawn from a RandomSource at construction time. It is terminal
// via WithLock/WithDefaultLock; ForceOwnership is not reachable from here.
type RandomKeyedHandleBuilder[T any] struct {
	payload     T
	random      RandomSource
	maxAttempts int
}

// WithRandomSource overrides the RandomSource used to draw keys. Mostly
// useful for tests that want deterministic or adversarial key sequences.
func (b RandomKeyedHandleBuilder[T]) WithRandomSource(source RandomSource) RandomKeyedHandleBuilder[T] {
	b.random = source
	return b
}

// WithMaxAttempts overrides the random-key retry budget. The package
// default, used unless this is called, is 20.
func (b RandomKeyedHandleBuilder[T]) WithMaxAttempts(n int) RandomKeyedHandleBuilder[T] {
	b.maxAttempts = n
	return b
}

