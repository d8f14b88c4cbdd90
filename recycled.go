package swimmer

import "fmt"

// Recycled is an exclusive handle over one pooled value, obtained from
// Pool.Get or Pool.Attach. The caller reads and writes the value through
// Value and Ptr until Release hands it back to the pool, or Detach strips
// pool ownership for good.
//
// The inner value can be taken out of the handle exactly once. Release on
// an already-consumed handle is a no-op, so a deferred Release composes
// with an earlier explicit one and a value can never be pushed into
// storage twice through the same handle.
//
// A handle must not outlive the pool that issued it and is not safe for
// concurrent use by multiple goroutines.
type Recycled[T any] struct {
	value T
	live  bool
	pool  *Pool[T]
}

// Value returns the inner value. For pointer-typed pools this is the
// natural accessor: mutations through the pointer are seen by the pool on
// release. It panics if the handle was already released or detached.
func (r *Recycled[T]) Value() T {
	if !r.live {
		panic("swimmer: Value on a consumed handle")
	}
	return r.value
}

// Ptr returns a pointer to the handle's value slot. Value-typed pools
// (slices, maps, integers) mutate through it; in particular a reseated
// slice header written through Ptr is what the pool recycles on release.
// It panics if the handle was already released or detached.
func (r *Recycled[T]) Ptr() *T {
	if !r.live {
		panic("swimmer: Ptr on a consumed handle")
	}
	return &r.value
}

// Release recycles the value and pushes it onto the calling goroutine's
// partition, which may differ from the partition it was acquired from.
// Releasing a consumed handle is a no-op.
func (r *Recycled[T]) Release() {
	if !r.live {
		return
	}
	r.pool.returnValue(r.take())
}

// Detach consumes the handle and returns the raw value, permanently
// removing it from pool management: it will never be recycled or stored by
// the pool again. Detach panics on a consumed handle, since the value it
// would return is no longer owned.
func (r *Recycled[T]) Detach() T {
	if !r.live {
		panic("swimmer: Detach on a consumed handle")
	}
	return r.take()
}

func (r *Recycled[T]) take() T {
	value := r.value
	var zero T
	r.value = zero
	r.live = false
	return value
}

// String formats the inner value. Consumed handles report themselves as
// such rather than exposing the vacated slot.
func (r *Recycled[T]) String() string {
	if !r.live {
		return "swimmer.Recycled(consumed)"
	}
	return fmt.Sprint(r.value)
}

// GoString formats the inner value for the %#v verb.
func (r *Recycled[T]) GoString() string {
	if !r.live {
		return "swimmer.Recycled(consumed)"
	}
	return fmt.Sprintf("%#v", r.value)
}
