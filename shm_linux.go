//go:build linux

package neocortex

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// segmentMode is the fixed mode a created segment gets: world
// readable/writable, matching the original hive implementation.
const segmentMode = 0o666

// shmCreate requests exclusive creation of a segment of size bytes for
// key. It returns the kernel segment id, or the raw errno on failure so
// callers can distinguish "already exists" from other failures.
func shmCreate(key Key, size uintptr) (int, error) {
	id, err := unix.SysvShmGet(int(key), int(size), unix.IPC_CREAT|unix.IPC_EXCL|segmentMode)
	return id, err
}

// shmLookup looks up the kernel id of an already-existing segment by key,
// without creating one.
func shmLookup(key Key) (int, error) {
	return unix.SysvShmGet(int(key), 0, segmentMode)
}

// shmAttach maps segment id into this process's address space.
func shmAttach(id int) (uintptr, error) {
	data, err := unix.SysvShmAttach(id, 0, 0)
	if err != nil {
		return 0, err
	}
	return uintptr(unsafe.Pointer(&data[0])), nil
}

// shmDetach unmaps a previously-attached address.
func shmDetach(addr uintptr) error {
	return unix.SysvShmDetach(unsafe.Slice((*byte)(unsafe.Pointer(addr)), 1))
}

// shmRemove marks segment id for destruction; the kernel removes it once
// the last process detaches.
func shmRemove(id int) error {
	_, err := unix.SysvShmCtl(id, unix.IPC_RMID, nil)
	return err
}

// errAlreadyExists reports whether err is the errno shmget returns when a
// segment already exists under the requested key.
func errAlreadyExists(err error) bool {
	return err == unix.EEXIST
}

func addrOf[T any](addr uintptr) *T {
	return (*T)(unsafe.Pointer(addr))
}
