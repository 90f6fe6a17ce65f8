// Package buf provides a growable, contiguous, type-generic buffer.
//
// The intern table's record list and the scanner's string literal
// accumulator are built on Buffer.
package buf

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// ErrOutOfRange is returned when an index falls outside [0, Len()).
var ErrOutOfRange = errors.New("buffer index out of range")

// Buffer is an append-only sequence with explicit length and capacity.
// The zero value is an empty buffer ready to use.
//
// Growing the buffer relocates its storage: a slice obtained from Slice
// must be fetched again after any Push.
type Buffer[T any] struct {
	n     int // number of elements in use
	elems []T // len(elems) is the capacity
}

// Push appends v, growing the storage when it is full.
func (b *Buffer[T]) Push(v T) {
	if b.n+1 > len(b.elems) {
		b.grow(b.n + 1)
	}
	b.elems[b.n] = v
	b.n++
}

// Append pushes each of vs in order.
func (b *Buffer[T]) Append(vs ...T) {
	if b.n+len(vs) > len(b.elems) {
		b.grow(b.n + len(vs))
	}
	copy(b.elems[b.n:], vs)
	b.n += len(vs)
}

// grow reallocates so that at least need elements fit.
// New capacity is max(1, 2*cap, need).
func (b *Buffer[T]) grow(need int) {
	newCap := max(1, 2*len(b.elems), need)
	elems := make([]T, newCap)
	copy(elems, b.elems[:b.n])
	b.elems = elems
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int { return b.n }

// Cap returns the number of elements that fit without reallocating.
func (b *Buffer[T]) Cap() int { return len(b.elems) }

// At returns the element at index i.
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= b.n {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, b.n)
	}
	return b.elems[i], nil
}

// Set replaces the element at index i.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.n {
		return errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, b.n)
	}
	b.elems[i] = v
	return nil
}

// Slice returns the elements in use. The result shares storage with the
// buffer and is invalidated by the next Push, Append, Reset or Free.
func (b *Buffer[T]) Slice() []T {
	return b.elems[:b.n:b.n]
}

// All iterates over the elements with their indices.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(i, b.elems[i]) {
				return
			}
		}
	}
}

// Reset empties the buffer but keeps its storage for reuse.
func (b *Buffer[T]) Reset() {
	clear(b.elems[:b.n])
	b.n = 0
}

// Free releases the storage. Len and Cap are zero afterwards.
func (b *Buffer[T]) Free() {
	b.elems = nil
	b.n = 0
}
