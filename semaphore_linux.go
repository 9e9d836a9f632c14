//go:build linux

package neocortex

// POSIX named semaphores have no Linux syscall number - unlike the System
// V shared memory primitives in shm_linux.go, sem_open/sem_wait/sem_post/
// sem_close/sem_unlink only exist in glibc, so golang.org/x/sys/unix
// cannot reach them. This is the one place the module binds directly to a
// libc header, mirroring the original Rust implementation's own
// libc::sem_open binding (_examples/original_source/src/semaphore.rs).

/*
#include <fcntl.h>
#include <semaphore.h>
#include <sys/stat.h>
#include <stdlib.h>

// cgo cannot call variadic C functions directly, and sem_open is declared
// sem_t *sem_open(const char *, int, ...) - so both call shapes get a
// fixed-arity wrapper here rather than a direct C.sem_open call.
static sem_t* neocortex_sem_open_create(const char* name, int oflag, mode_t mode, unsigned int value) {
	return sem_open(name, oflag, mode, value);
}

static sem_t* neocortex_sem_open_attach(const char* name) {
	return sem_open(name, 0);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

func modeFor(settings *SemaphoreSettings) C.mode_t {
	if settings == nil {
		return C.S_IRWXU
	}
	switch settings.Permission {
	case PermOwnerAndGroup:
		return C.S_IRWXU | C.S_IRWXG
	case PermReadWriteForOthers:
		return C.S_IRWXU | C.S_IRWXG | C.S_IROTH | C.S_IWOTH
	case PermReadOnlyForOthers:
		return C.S_IRWXU | C.S_IRWXG | C.S_IROTH
	case PermFullAccessForEveryone:
		return C.S_IRWXU | C.S_IRWXG | C.S_IROTH | C.S_IWOTH | C.S_IXOTH
	case PermCustom:
		return C.mode_t(settings.Mode)
	default:
		return C.S_IRWXU
	}
}

func semaphoreName(key Key) string {
	return fmt.Sprintf("%s%d", semaphoreNamePrefix, int32(key))
}

// semaphoreLock is the SemaphoreLockFactory's Locker implementation.
type semaphoreLock struct {
	sem     *C.sem_t
	name    string
	isOwner bool
}

// Create implements LockFactory.
func (SemaphoreLockFactory) Create(key Key, settings LockSettings) (Locker, error) {
	var semSettings *SemaphoreSettings
	if settings != nil {
		s, ok := settings.(SemaphoreSettings)
		if !ok {
			return nil, newCleanError("error during semaphore create: unsupported settings type", nil)
		}
		semSettings = &s
	}

	name := semaphoreName(key)
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	sem, errno := C.neocortex_sem_open_create(cName, C.O_CREAT|C.O_EXCL, modeFor(semSettings), C.uint(1))
	if sem == C.SEM_FAILED {
		defaultLogger.Tracef("sem_open create failed for %s", name)
		return nil, newCleanError("error during semaphore create", errno)
	}
	defaultLogger.Tracef("created named semaphore %s", name)
	return &semaphoreLock{sem: sem, name: name, isOwner: true}, nil
}

// Attach implements LockFactory.
func (SemaphoreLockFactory) Attach(key Key) (Locker, error) {
	name := semaphoreName(key)
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	sem, errno := C.neocortex_sem_open_attach(cName)
	if sem == C.SEM_FAILED {
		defaultLogger.Tracef("sem_open attach failed for %s", name)
		return nil, newCleanError("error during semaphore attach", errno)
	}
	defaultLogger.Tracef("attached to named semaphore %s", name)
	return &semaphoreLock{sem: sem, name: name, isOwner: false}, nil
}

func (l *semaphoreLock) ReadLock() error {
	if ret, errno := C.sem_wait(l.sem); ret != 0 {
		return newCleanError("error during semaphore wait", errno)
	}
	return nil
}

func (l *semaphoreLock) WriteLock() error {
	return l.ReadLock()
}

func (l *semaphoreLock) Release() error {
	if ret, errno := C.sem_post(l.sem); ret != 0 {
		return newCleanError("error during semaphore post", errno)
	}
	return nil
}

func (l *semaphoreLock) ForceOwnership() {
	l.isOwner = true
}

func (l *semaphoreLock) IsOwner() bool {
	return l.isOwner
}

func (l *semaphoreLock) Close() error {
	if ret, errno := C.sem_close(l.sem); ret != 0 {
		defaultLogger.Errorf("error during sem_close for %s: %v", l.name, errno)
	}
	if !l.isOwner {
		return nil
	}
	cName := C.CString(l.name)
	defer C.free(unsafe.Pointer(cName))
	if ret, errno := C.sem_unlink(cName); ret != 0 {
		defaultLogger.Errorf("error during sem_unlink for %s: %v", l.name, errno)
	}
	return nil
}
