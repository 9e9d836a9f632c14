package neocortex

import (
	"github.com/pkg/errors"
)

// Kind distinguishes a failure that left no kernel object behind from one
// that might have.
type Kind int

const (
	// KindClean means the operation failed but every kernel object it
	// touched was released; the caller may retry or give up freely.
	KindClean Kind = iota
	// KindDirty means the operation failed after a kernel resource (a
	// segment or a named semaphore) was already allocated and could not
	// be cleaned up. Out-of-band cleanup may be necessary.
	KindDirty
)

func (k Kind) String() string {
	switch k {
	case KindClean:
		return "clean"
	case KindDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// SystemError is the single tagged failure type this package returns from
// creation, attachment, read, and write. Cleanup failures during Close
// never surface as a SystemError; they are logged instead (see log.go).
type SystemError struct {
	kind    Kind
	message string
	cause   error
}

// wrapCause wraps cause with message, falling back to a bare errors.New
// when cause is nil (errors.Wrap itself returns nil for a nil cause, which
// would otherwise leave SystemError.cause nil).
func wrapCause(message string, cause error) error {
	if cause == nil {
		return errors.New(message)
	}
	return errors.Wrap(cause, message)
}

// newCleanError wraps cause (typically a syscall.Errno captured at the
// point of failure) as a Clean failure: no kernel object was leaked.
func newCleanError(message string, cause error) *SystemError {
	return &SystemError{kind: KindClean, message: message, cause: wrapCause(message, cause)}
}

// newDirtyError wraps cause as a Dirty failure: a kernel object may remain
// allocated and require manual removal.
func newDirtyError(message string, cause error) *SystemError {
	return &SystemError{kind: KindDirty, message: message, cause: wrapCause(message, cause)}
}

// Error implements the error interface.
func (e *SystemError) Error() string {
	return e.cause.Error()
}

// Unwrap exposes the captured OS error to errors.Is/errors.As.
func (e *SystemError) Unwrap() error {
	return errors.Cause(e.cause)
}

// Kind reports whether the failure left kernel objects allocated.
func (e *SystemError) Kind() Kind {
	return e.kind
}

// IsClean reports whether no kernel resources were leaked by this failure.
func (e *SystemError) IsClean() bool {
	return e.kind == KindClean
}

// IsDirty reports whether this failure may have leaked a kernel resource.
func (e *SystemError) IsDirty() bool {
	return e.kind == KindDirty
}
