package swimmer

import "bytes"

// Recyclable should be implemented by any struct that can be stored in a
// pool and reused. Recycle must return the value to its freshly-constructed
// shape, keeping grown backing storage where meaningful.
type Recyclable interface {
	Recycle()
}

// Recycler is the capability a type needs to live in a Pool: how to
// construct a fresh value and how to reset a used one.
//
// Recycle receives the value on its way back into the pool and returns the
// value to store. Slice-headed types reset without indirection by returning
// s[:0]; pointer and map types mutate in place and return the argument.
//
// A Recycle implementation must leave no observable trace of prior use.
// The pool cannot verify this: a Recycle that forgets a field hands stale
// data to a later Get. That is a silent correctness bug in the Recycler,
// not an error the pool can detect or report.
type Recycler[T any] struct {
	// New constructs a fresh, logically empty value. It is used for the
	// initial fill and for cache misses unless the pool was built with a
	// supplier.
	New func() T
	// Recycle clears mutated state and returns the value to store.
	Recycle func(T) T
}

// ForRecyclable pools values of any type implementing Recyclable, using
// construct to create fresh ones.
func ForRecyclable[T Recyclable](construct func() T) Recycler[T] {
	return Recycler[T]{
		New: construct,
		Recycle: func(v T) T {
			v.Recycle()
			return v
		},
	}
}

// ForSlice pools dynamic arrays. Recycling zeroes the elements, dropping
// any references they hold, and trims to length zero while keeping the
// grown capacity.
func ForSlice[E any]() Recycler[[]E] {
	return Recycler[[]E]{
		New: func() []E { return nil },
		Recycle: func(s []E) []E {
			var zero E
			for i := range s {
				s[i] = zero
			}
			return s[:0]
		},
	}
}

// ForBuffer pools byte/string buffers. Recycling empties the buffer but
// keeps its backing array, so reuse avoids reallocating it.
func ForBuffer() Recycler[*bytes.Buffer] {
	return Recycler[*bytes.Buffer]{
		New: func() *bytes.Buffer { return &bytes.Buffer{} },
		Recycle: func(b *bytes.Buffer) *bytes.Buffer {
			b.Reset()
			return b
		},
	}
}

// ForMap pools hash maps. Recycling deletes every key, keeping the
// allocated buckets.
func ForMap[K comparable, V any]() Recycler[map[K]V] {
	return Recycler[map[K]V]{
		New: func() map[K]V { return make(map[K]V) },
		Recycle: func(m map[K]V) map[K]V {
			clear(m)
			return m
		},
	}
}

// ForSet pools hash sets.
func ForSet[K comparable]() Recycler[map[K]struct{}] {
	return Recycler[map[K]struct{}]{
		New: func() map[K]struct{} { return make(map[K]struct{}) },
		Recycle: func(s map[K]struct{}) map[K]struct{} {
			clear(s)
			return s
		},
	}
}

// Integer matches the fixed-width integer types poolable out of the box.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ForInteger pools fixed-width integers: construct yields zero, recycling
// resets to zero.
func ForInteger[N Integer]() Recycler[N] {
	return Recycler[N]{
		New:     func() N { return 0 },
		Recycle: func(N) N { return 0 },
	}
}
