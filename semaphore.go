package neocortex

// Permission selects the mode bits a created named semaphore gets. The
// members mirror the shape of the original hive implementation's
// SemaphorePermission enum.
type Permission int

const (
	// PermOwnerOnly grants owner rwx only. This is the default when no
	// SemaphoreSettings are supplied.
	PermOwnerOnly Permission = iota
	// PermOwnerAndGroup grants owner rwx, group rwx.
	PermOwnerAndGroup
	// PermReadWriteForOthers grants owner rwx, group rwx, other rw.
	PermReadWriteForOthers
	// PermReadOnlyForOthers grants owner rwx, group rwx, other r.
	PermReadOnlyForOthers
	// PermFullAccessForEveryone grants owner rwx, group rwx, other rwx.
	PermFullAccessForEveryone
	// PermCustom uses the mode bits in SemaphoreSettings.Mode verbatim.
	PermCustom
)

// SemaphoreSettings configures SemaphoreLockFactory.Create. The zero value
// is PermOwnerOnly, matching the package default.
type SemaphoreSettings struct {
	// Permission selects one of the enumerated modes, or PermCustom to
	// use Mode directly.
	Permission Permission
	// Mode is the raw mode bits used when Permission is PermCustom;
	// ignored otherwise.
	Mode uint32
}

func (SemaphoreSettings) lockSettings() {}

// semaphoreNamePrefix is the fixed textual prefix the kernel name of a
// segment's semaphore is derived from. POSIX semaphore names must begin
// with exactly one leading slash and contain no others.
const semaphoreNamePrefix = "/neocortex_sem_"

// SemaphoreLockFactory is the reference LockFactory: a POSIX named
// counting semaphore with an initial count of 1 (mutual exclusion).
type SemaphoreLockFactory struct{}

// DefaultLockFactory is the LockFactory used when a builder's WithDefaultLock
// terminal method is called.
var DefaultLockFactory LockFactory = SemaphoreLockFactory{}
