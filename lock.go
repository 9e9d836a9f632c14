package neocortex

// Locker is the contract a segment handle needs from its synchronization
// primitive. All operations are keyed, at construction time, by the
// segment's key; the contract itself does not distinguish readers from
// writers - ReadLock and WriteLock carry the same exclusive-access
// guarantee in every implementation shipped here. The split exists so a
// future implementation can upgrade to a true readers-writer primitive
// without changing a single call site on Handle.
type Locker interface {
	// ReadLock blocks until the lock grants exclusive access.
	ReadLock() error
	// WriteLock blocks until the lock grants exclusive access. In every
	// implementation in this package it is identical to ReadLock.
	WriteLock() error
	// Release releases the access granted by the most recently
	// successful ReadLock or WriteLock call. Calling Release without a
	// matching lock call is undefined behavior.
	Release() error
	// ForceOwnership transfers kernel-removal responsibility for the
	// named primitive onto this instance. Legal only immediately after
	// Attach, during a force-ownership handle transfer; calling it at
	// any other time is not supported by the contract.
	ForceOwnership()
	// IsOwner reports whether this instance removes the kernel
	// primitive on Close.
	IsOwner() bool
	// Close releases this instance's reference to the kernel primitive,
	// removing it if IsOwner is true. Close never fails observably;
	// underlying OS failures are logged.
	Close() error
}

// LockSettings is a marker interface for per-implementation lock creation
// options (e.g. SemaphoreSettings). It carries no methods of its own
// because settings are implementation-specific; a LockFactory type-asserts
// the settings value it expects.
type LockSettings interface {
	lockSettings()
}

// LockFactory constructs Locker instances for a given key. It stands in
// for the "associated constructor functions" a trait would carry in a
// language with them: Go interfaces cannot express a static constructor,
// so the two constructors live on a separate, small factory interface
// instead of on Locker itself.
type LockFactory interface {
	// Create produces a lock that is the unique owner of its kernel
	// name. It fails if the name already exists or the OS refuses.
	// settings may be nil, in which case the factory applies its own
	// default.
	Create(key Key, settings LockSettings) (Locker, error)
	// Attach produces a lock referencing an existing kernel primitive,
	// with IsOwner false.
	Attach(key Key) (Locker, error)
}
