// SPDX-License-Identifier: MIT

package dynarray

import (
	"fmt"
	"unsafe"
)

// Buffer is a growable sequence of T with explicit capacity management.
//
// Invariants:
//   - 0 <= length <= capacity.
//   - capacity == 0 iff storage == nil.
//   - len(storage) == capacity; only storage[:length] holds live values.
//
// The zero value is an empty Buffer with default options; New and
// NewWithCapacity take Options.
type Buffer[T any] struct {
	storage  []T
	length   int
	capacity int
	opts     Options
	stats    Stats
}

// Stats counts the storage work a Buffer has performed since construction.
type Stats struct {
	// Allocations counts every block obtained, including the first one.
	Allocations int
	// Reallocations counts growths that had to move live elements.
	Reallocations int
	// Releases counts blocks handed back by Release.
	Releases int
	// ElementsCopied is the total number of elements moved by growth.
	ElementsCopied int
}

// GrowthEvent describes one capacity change and is delivered to the hook
// registered with WithGrowthHook.
type GrowthEvent struct {
	Policy Policy
	OldCap int
	NewCap int
	Length int    // live elements at the time of growth
	Moved  int    // elements copied into the new block
	Bytes  uint64 // size of the new block
}

// New returns an empty Buffer: length 0, capacity 0, no storage.
//
// Complexity:
//   - Time O(1), Space O(1). No allocation of element storage.
func New[T any](opts ...Option) *Buffer[T] {
	return &Buffer[T]{opts: gatherOptions(opts...)}
}

// NewWithCapacity returns an empty Buffer whose capacity is exactly n.
// No element storage is allocated when n == 0.
//
// Errors:
//   - Panics with an error wrapping ErrCapacityOverflow when n < 0 or when
//     n elements of T exceed the addressable size.
func NewWithCapacity[T any](n int, opts ...Option) *Buffer[T] {
	if n < 0 {
		panic(fmt.Errorf("dynarray: NewWithCapacity(%d): %w", n, ErrCapacityOverflow))
	}
	if err := checkBytes[T](n); err != nil {
		panic(fmt.Errorf("dynarray: NewWithCapacity: %w", err))
	}

	b := New[T](opts...)
	if n > 0 {
		b.storage = make([]T, n)
		b.capacity = n
		b.stats.Allocations++
	}

	return b
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.length }

// Cap returns the number of reserved slots.
func (b *Buffer[T]) Cap() int { return b.capacity }

// Stats returns a snapshot of the storage counters.
func (b *Buffer[T]) Stats() Stats { return b.stats }

// Push appends v, growing the storage with policy p when the buffer is full.
//
// Implementation:
//   - Stage 1: if length == capacity, compute the next capacity with p.
//   - Stage 2: allocate the new block, copy [0,length), drop the old block.
//   - Stage 3: write v at index length and advance length.
//
// Errors:
//   - Panics with an error wrapping ErrCapacityOverflow when the next
//     capacity cannot be represented, or ErrUnknownPolicy for an invalid p.
//
// Complexity:
//   - O(1) without growth; O(length) when growth happens.
//     Amortized O(1) for Golden and Doubling.
func (b *Buffer[T]) Push(v T, p Policy) {
	if b.length == b.capacity {
		b.grow(p)
	}
	b.storage[b.length] = v
	b.length++
}

// Append pushes v with the policy configured by WithPolicy (Doubling by default).
func (b *Buffer[T]) Append(v T) { b.Push(v, b.options().policy) }

// PushFixed pushes v using the Fixed policy.
func (b *Buffer[T]) PushFixed(v T) { b.Push(v, Fixed) }

// PushGolden pushes v using the Golden policy.
func (b *Buffer[T]) PushGolden(v T) { b.Push(v, Golden) }

// PushDoubling pushes v using the Doubling policy.
func (b *Buffer[T]) PushDoubling(v T) { b.Push(v, Doubling) }

// Get returns the element at index i.
// Returns ErrOutOfRange when i is outside [0, Len); reserved slots are never read.
func (b *Buffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= b.length {
		var zero T
		return zero, fmt.Errorf("Buffer.Get(%d) len=%d: %w", i, b.length, ErrOutOfRange)
	}

	return b.storage[i], nil
}

// Set overwrites the element at index i.
// Returns ErrOutOfRange when i is outside [0, Len).
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.length {
		return fmt.Errorf("Buffer.Set(%d) len=%d: %w", i, b.length, ErrOutOfRange)
	}
	b.storage[i] = v

	return nil
}

// Values returns a copy of the live elements in index order.
func (b *Buffer[T]) Values() []T {
	out := make([]T, b.length)
	copy(out, b.storage[:b.length])

	return out
}

// Range calls f for each live element in index order until f returns false.
func (b *Buffer[T]) Range(f func(i int, v T) bool) {
	for i := 0; i < b.length; i++ {
		if !f(i, b.storage[i]) {
			return
		}
	}
}

// Release drops the storage block and returns the buffer to the empty state.
// Calling Release on an empty buffer, or twice, does nothing.
func (b *Buffer[T]) Release() {
	if b.capacity == 0 {
		return
	}
	b.storage = nil
	b.capacity = 0
	b.length = 0
	b.stats.Releases++
}

// options returns the Buffer's options, filling in the defaults for a
// zero-value Buffer. A gathered Options never has a zero denominator.
func (b *Buffer[T]) options() *Options {
	if b.opts.growthDen == 0 {
		b.opts = gatherOptions()
	}

	return &b.opts
}

// grow replaces the storage block with one sized by policy p.
func (b *Buffer[T]) grow(p Policy) {
	next, err := nextCapacity(p, b.capacity, b.options())
	if err != nil {
		panic(fmt.Errorf("dynarray: Push: %w", err))
	}
	if err = checkBytes[T](next); err != nil {
		panic(fmt.Errorf("dynarray: Push: %w", err))
	}

	fresh := make([]T, next)
	moved := copy(fresh, b.storage[:b.length])
	old := b.capacity

	b.storage = fresh
	b.capacity = next
	b.stats.Allocations++
	if old > 0 {
		b.stats.Reallocations++
		b.stats.ElementsCopied += moved
	}

	if b.opts.hook != nil {
		var zero T
		b.opts.hook(GrowthEvent{
			Policy: p,
			OldCap: old,
			NewCap: next,
			Length: b.length,
			Moved:  moved,
			Bytes:  uint64(next) * uint64(unsafe.Sizeof(zero)),
		})
	}
}
