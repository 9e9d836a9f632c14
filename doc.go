// Copyright 2020 Nathan Taylor (nbtaylor@gmail.com)
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package neocortex gives multiple processes on one host a typed,
// synchronized handle onto a single System V shared memory segment.
//
// Two kernel objects back every handle: a shared memory segment sized to a
// fixed-layout payload type T, and a named semaphore that serializes access
// to it. The package treats these as one resource with one lifecycle: a
// Handle[T] is either the owner of both objects (and will remove them from
// the kernel when closed) or a non-owning attachment (and will only unmap
// the segment and drop its lock reference when closed).
//
// # Building a handle
//
// A Handle is never constructed directly; it comes from a HandleBuilder,
// which stages configuration through the type system so that a caller
// cannot reach the construction step without first deciding how the
// segment's key is chosen:
//
//	NewHandleBuilder(42.0).
//	    RandomKey().
//	    WithDefaultLock()
//
//	NewHandleBuilder(42.0).
//	    Key(1234).
//	    ForceOwnership().
//	    WithDefaultLock()
//
// Key(k) and RandomKey() each return a *different* Go type
// (KeyedHandleBuilder and RandomKeyedHandleBuilder, respectively); only
// KeyedHandleBuilder exposes ForceOwnership, since reclaiming ownership of a
// colliding segment only makes sense when the caller named the key
// themselves. Both terminal types expose WithLock and WithDefaultLock. This
// is the "three-type chain" a language without phantom type parameters
// falls back to: the phase is witnessed by which methods are in scope, not
// by any field on the struct.
//
// # Ownership
//
// Whichever handle successfully creates the segment in the kernel owns it.
// A handle that attaches to an already-existing segment does not. The one
// exception is ForceOwnership: if the caller supplied an explicit key, the
// segment already exists, and ForceOwnership was set, the builder instead
// attaches to the existing segment and transfers ownership onto the new
// handle - the caller is asserting, unchecked, that the existing segment
// holds a compatible T.
//
// # Concurrency
//
// Read and Write each acquire the handle's lock, touch the mapped memory by
// bit-copy, and release. Two handles that attach to the same key - whether
// in the same process or different ones - observe a single global order of
// reads and writes, because the default lock is a mutually-exclusive named
// semaphore. T must be safe to copy by raw bytes across process boundaries:
// no internal pointers, no heap references. This package has no way to
// enforce that beyond documenting it.
package neocortex
