//go:build linux

package neocortex

// WithLock constructs the Handle using factory and settings.
func (b KeyedHandleBuilder[T]) WithLock(factory LockFactory, settings LockSettings) (*Handle[T], error) {
	key := b.key
	return createHandle[T](&key, b.payload, b.forceOwnership, factory, settings, nil, 0)
}

// WithDefaultLock constructs the Handle using DefaultLockFactory and no
// explicit settings.
func (b KeyedHandleBuilder[T]) WithDefaultLock() (*Handle[T], error) {
	key := b.key
	return createHandle[T](&key, b.payload, b.forceOwnership, DefaultLockFactory, nil, nil, 0)
}

// WithLock constructs the Handle using factory and settings.
func (b RandomKeyedHandleBuilder[T]) WithLock(factory LockFactory, settings LockSettings) (*Handle[T], error) {
	return createHandle[T](nil, b.payload, false, factory, settings, b.random, b.maxAttempts)
}

// WithDefaultLock constructs the Handle using DefaultLockFactory and no
// explicit settings.
func (b RandomKeyedHandleBuilder[T]) WithDefaultLock() (*Handle[T], error) {
	return createHandle[T](nil, b.payload, false, DefaultLockFactory, nil, b.random, b.maxAttempts)
}
