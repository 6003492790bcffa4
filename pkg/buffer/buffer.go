// Package buffer provides the growable, append-only storage underlying
// token buffers and typed column buffers.
//
// A Buffer is write-once: elements are appended through Write and never
// mutated or removed afterwards. The write cursor ("offset") always equals
// the number of elements written, not the allocated capacity.
package buffer

// DefaultCapacity is the initial allocation hint for new buffers.
const DefaultCapacity = 1024

// Writable carries exactly one element or a batch of elements for a single
// Write call. It is the only write mode the buffer accepts.
type Writable[T any] struct {
	single T
	batch  []T
	bulk   bool
}

// Single wraps one element for writing.
func Single[T any](v T) Writable[T] {
	return Writable[T]{single: v}
}

// Batch wraps a slice of elements for writing; all elements are appended
// in order in one call.
func Batch[T any](vs []T) Writable[T] {
	return Writable[T]{batch: vs, bulk: true}
}

// Buffer is a growable append-only sequence of T.
type Buffer[T any] struct {
	elems  []T
	offset int
}

// New creates an empty buffer with the default capacity hint.
func New[T any]() *Buffer[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity creates an empty buffer preallocated for n elements.
func NewWithCapacity[T any](n int) *Buffer[T] {
	if n < 0 {
		n = 0
	}
	return &Buffer[T]{elems: make([]T, 0, n)}
}

// Write appends the writable's element(s) and advances the cursor by the
// number of elements written.
func (b *Buffer[T]) Write(w Writable[T]) {
	if w.bulk {
		b.elems = append(b.elems, w.batch...)
		b.offset += len(w.batch)
		return
	}
	b.elems = append(b.elems, w.single)
	b.offset++
}

// View returns a read-only window of up to n elements starting at start,
// clamped to the written portion of the buffer. Callers must not modify
// the returned slice.
func (b *Buffer[T]) View(start, n int) []T {
	if start < 0 || n <= 0 || start >= len(b.elems) {
		return nil
	}
	end := start + n
	if end > len(b.elems) {
		end = len(b.elems)
	}
	return b.elems[start:end]
}

// Offset reports the total number of elements written.
func (b *Buffer[T]) Offset() int {
	return b.offset
}

// Len reports the number of elements written. It always equals Offset.
func (b *Buffer[T]) Len() int {
	return len(b.elems)
}

// IsEmpty reports whether nothing has been written.
func (b *Buffer[T]) IsEmpty() bool {
	return len(b.elems) == 0
}
