package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// sharedBuffer is the storage behind one or more Buffer handles.
type sharedBuffer[T Numeric] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newSharedBuffer wraps data with refCount = 1.
// The count is set before the buffer is reachable from any handle.
func newSharedBuffer[T Numeric](data []T) *sharedBuffer[T] {
	sb := &sharedBuffer[T]{data: data}
	sb.refCount.Store(1)
	return sb
}

func (sb *sharedBuffer[T]) acquire() {
	sb.refCount.Add(1)
}

// release decrements the reference count and frees data when it reaches 0.
// Reports whether this call freed the storage.
func (sb *sharedBuffer[T]) release() bool {
	n := sb.refCount.Add(-1)
	if n < 0 {
		panic(fmt.Errorf("release of freed storage: %w", ErrInvalidBuffer))
	}
	if n > 0 {
		return false
	}
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.data = nil
	return true
}

// Buffer is a reference-counted handle over a fixed-length run of elements.
//
// Every handle returned by NewBuffer, Adopt or Copy counts as one owner and
// must be released exactly once. Storage is freed when the last owner
// releases it; the handle is invalid afterwards.
//
// The zero Buffer is an invalid handle.
type Buffer[T Numeric] struct {
	shared *sharedBuffer[T]
}

// Adopt wraps caller-allocated data. The returned handle is the only owner
// (RefCount() == 1) and the caller must not retain data for other use.
func Adopt[T Numeric](data []T) *Buffer[T] {
	if data == nil {
		data = []T{}
	}
	return &Buffer[T]{shared: newSharedBuffer(data)}
}

// NewBuffer allocates n elements, each set to fill.
// Panics if n is negative.
func NewBuffer[T Numeric](n int, fill T) *Buffer[T] {
	if n < 0 {
		panic(fmt.Sprintf("buffer: negative length %d", n))
	}
	data := make([]T, n)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}
	return Adopt(data)
}

// Copy returns a new handle sharing this buffer's storage and increments the
// shared count. No elements are copied. Copying an invalid handle returns an
// invalid handle.
func (b *Buffer[T]) Copy() *Buffer[T] {
	if !b.IsValid() {
		return &Buffer[T]{}
	}
	b.shared.acquire()
	return &Buffer[T]{shared: b.shared}
}

// Assign rebinds b to other's storage: other's count is incremented and b's
// previous storage is released (freed if b was its last owner). Assigning a
// handle to itself, or to another handle of the same storage, leaves the
// count unchanged. Assigning an invalid handle leaves b invalid.
func (b *Buffer[T]) Assign(other *Buffer[T]) {
	var next *sharedBuffer[T]
	if other.IsValid() {
		next = other.shared
		next.acquire()
	}
	prev := b.shared
	b.shared = next
	if prev != nil {
		prev.release()
	}
}

// Release drops this handle's ownership and invalidates the handle.
// Reports whether the storage was freed by this call. Releasing an invalid
// handle is a no-op that returns false.
func (b *Buffer[T]) Release() bool {
	if b == nil || b.shared == nil {
		return false
	}
	sb := b.shared
	b.shared = nil
	return sb.release()
}

// IsValid reports whether the handle refers to live storage.
func (b *Buffer[T]) IsValid() bool {
	return b != nil && b.shared != nil
}

// RefCount returns the number of live handles sharing the storage,
// or 0 for an invalid handle.
func (b *Buffer[T]) RefCount() int {
	if !b.IsValid() {
		return 0
	}
	return int(b.shared.refCount.Load())
}

// IsUnique returns true if this handle is the only owner of its storage.
func (b *Buffer[T]) IsUnique() bool {
	return b.RefCount() == 1
}

// Len returns the number of elements, or 0 for an invalid handle.
func (b *Buffer[T]) Len() int {
	if !b.IsValid() {
		return 0
	}
	return len(b.shared.data)
}

// At returns element i. Panics on an invalid handle or out-of-range i.
func (b *Buffer[T]) At(i int) T {
	return b.mustData()[i]
}

// SetAt writes element i. Panics on an invalid handle or out-of-range i.
func (b *Buffer[T]) SetAt(i int, v T) {
	b.mustData()[i] = v
}

// Slice returns the storage as a slice (zero-copy).
// Panics on an invalid handle.
//
// WARNING: the slice must not be used after the last handle is released.
func (b *Buffer[T]) Slice() []T {
	return b.mustData()
}

// SameStorage reports whether b and other share storage.
func (b *Buffer[T]) SameStorage(other *Buffer[T]) bool {
	return b.IsValid() && other.IsValid() && b.shared == other.shared
}

func (b *Buffer[T]) mustData() []T {
	if !b.IsValid() {
		panic(fmt.Errorf("buffer access: %w", ErrInvalidBuffer))
	}
	return b.shared.data
}
