package ultralight

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"
)

// SharedBytes is a reference-counted byte block that can back borrowed
// buffers. The release function runs once the last reference is dropped.
type SharedBytes struct {
	data    []byte
	refs    atomic.Int64
	release func()
}

// NewSharedBytes wraps data with a single reference held by the caller.
// onRelease may be nil.
func NewSharedBytes(data []byte, onRelease func()) *SharedBytes {
	s := &SharedBytes{data: data, release: onRelease}
	s.refs.Store(1)
	return s
}

// Bytes returns the shared block. It must not be modified while a buffer
// borrows it.
func (s *SharedBytes) Bytes() []byte { return s.data }

// Refs returns the current number of references.
func (s *SharedBytes) Refs() int64 { return s.refs.Load() }

// Retain adds a reference.
func (s *SharedBytes) Retain() *SharedBytes {
	s.refs.Add(1)
	return s
}

// Release drops a reference.
func (s *SharedBytes) Release() {
	switch n := s.refs.Add(-1); {
	case n == 0:
		if s.release != nil {
			s.release()
		}
	case n < 0:
		panic("ultralight: SharedBytes released too many times")
	}
}

// Buffer is a native byte buffer, either a private copy or a borrowed view of
// a SharedBytes block.
type Buffer struct {
	h ULBuffer
}

// NewOwnedBuffer copies data into a buffer the engine owns.
func NewOwnedBuffer(data []byte) *Buffer {
	mustLoad()
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(unsafe.SliceData(data))
	}
	return &Buffer{h: ulCreateBufferFromCopy(p, uintptr(len(data)))}
}

type borrowedEntry struct {
	shared *SharedBytes
	pinner runtime.Pinner
}

// Borrowed blocks are keyed by the user data handed to the engine.
var borrowed = struct {
	sync.Mutex
	entries map[uintptr]*borrowedEntry
	next    uintptr
}{entries: make(map[uintptr]*borrowedEntry), next: 1}

// NewBorrowedBuffer creates a buffer over s without copying. The buffer
// holds a reference to s until the engine reports it no longer needs the
// memory, which may be after Destroy returns.
func NewBorrowedBuffer(s *SharedBytes) *Buffer {
	mustLoad()
	entry := &borrowedEntry{shared: s.Retain()}
	data := s.Bytes()
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(unsafe.SliceData(data))
		entry.pinner.Pin(p)
	}

	borrowed.Lock()
	key := borrowed.next
	borrowed.next++
	borrowed.entries[key] = entry
	borrowed.Unlock()

	return &Buffer{h: ulCreateBuffer(p, uintptr(len(data)), key, bufferDestroyCallback)}
}

// destroyBorrowedBuffer runs when the engine releases a borrowed block.
func destroyBorrowedBuffer(userData, _ uintptr) uintptr {
	borrowed.Lock()
	entry, ok := borrowed.entries[userData]
	delete(borrowed.entries, userData)
	borrowed.Unlock()

	if !ok {
		Logger().Warn("destroy callback for unknown buffer", zap.Uint64("key", uint64(userData)))
		return 0
	}
	entry.pinner.Unpin()
	entry.shared.Release()
	return 0
}

// BufferFromRaw takes ownership of a native buffer handle.
func BufferFromRaw(h ULBuffer) *Buffer {
	return &Buffer{h: h}
}

func (b *Buffer) Raw() ULBuffer { return b.h }

// IntoRaw releases ownership of the handle, for example to return it from a
// FileSystem. b is empty afterwards.
func (b *Buffer) IntoRaw() ULBuffer {
	h := b.h
	b.h = 0
	return h
}

// OwnsData reports whether the buffer holds a private copy of its bytes.
func (b *Buffer) OwnsData() bool {
	if b.h == 0 {
		return false
	}
	return ulBufferOwnsData(b.h)
}

// Bytes returns the contents without copying. The slice is valid until
// Destroy.
func (b *Buffer) Bytes() []byte {
	if b.h == 0 {
		return nil
	}
	p := ulBufferGetData(b.h)
	n := ulBufferGetSize(b.h)
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), int(n))
}

func (b *Buffer) Len() int {
	if b.h == 0 {
		return 0
	}
	return int(ulBufferGetSize(b.h))
}

// Destroy releases the buffer.
func (b *Buffer) Destroy() {
	if b.h == 0 {
		return
	}
	ulDestroyBuffer(b.h)
	b.h = 0
}
