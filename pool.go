package swimmer

import (
	"go.uber.org/zap"

	"github.com/caelunshun/swimmer/internal/storage"
)

// settings is the frozen builder configuration a pool was created with.
type settings[T any] struct {
	startingSize int
	supplier     Supplier[T]
	recycler     Recycler[T]
}

// Pool is a thread-safe object pool: a store of reusable values of one
// type, shared across goroutines to avoid reallocating and re-initializing
// same-shaped objects on hot paths.
//
// Spare values live in per-goroutine partitions. Get pops from the calling
// goroutine's partition and Release pushes to the releasing goroutine's
// partition, so neither operation reaches across partitions. When values
// are acquired on one goroutine and released on another the partitions can
// become imbalanced: a goroutine constructs fresh values while spares sit
// elsewhere. That is an accepted tradeoff, not a bug.
//
// Partitions are hash slots, not exclusive property: values released by a
// goroutine that has since exited stay in its slot and are handed out to
// the next goroutine that hashes there. Nothing is stranded permanently.
//
// The pool never bounds its size: every release grows storage. Callers
// that must cap memory under burst load should detach values instead of
// releasing them.
type Pool[T any] struct {
	settings  settings[T]
	store     *storage.Store[T]
	logger    *zap.Logger
	logFields []zap.Field
}

// New creates a pool with default settings. It is equivalent to
// NewBuilder(r).Build().
func New[T any](r Recycler[T]) *Pool[T] {
	return NewBuilder(r).Build()
}

// WithSize creates a pool pre-filled with size values. It is equivalent to
// NewBuilder(r).WithStartingSize(size).Build().
func WithSize[T any](r Recycler[T], size int) *Pool[T] {
	return NewBuilder(r).WithStartingSize(size).Build()
}

// Get retrieves a value from the calling goroutine's partition, or
// constructs a fresh one if the partition is empty. It never blocks; a
// panicking supplier or New function propagates to the caller.
//
// The value is wrapped in a Recycled handle that recycles it back into the
// pool on Release.
func (p *Pool[T]) Get() *Recycled[T] {
	return &Recycled[T]{
		value: p.getRawValue(),
		live:  true,
		pool:  p,
	}
}

// Size reports the number of spare values across every partition. Under
// concurrent mutation it is a best-effort snapshot suitable for tests and
// diagnostics, not a linearizable count.
func (p *Pool[T]) Size() int {
	return p.store.Len()
}

// Attach wraps an externally constructed value in a Recycled handle, as if
// it had been acquired from the pool. Storage is untouched, so Size is
// unchanged until the handle is released.
func (p *Pool[T]) Attach(value T) *Recycled[T] {
	return &Recycled[T]{
		value: value,
		live:  true,
		pool:  p,
	}
}

// Detached acquires a value with pool ownership stripped: the value is
// returned raw and will never be recycled or stored by this pool again.
func (p *Pool[T]) Detached() T {
	return p.getRawValue()
}

// Do acquires a value, invokes fn with its handle and releases it when fn
// returns. The release happens even if fn panics, making Do the scoped
// alternative to remembering a deferred Release. fn may Detach the handle;
// the trailing release is then a no-op.
func (p *Pool[T]) Do(fn func(value *Recycled[T])) {
	r := p.Get()
	defer r.Release()
	fn(r)
}

func (p *Pool[T]) create() T {
	if p.settings.supplier != nil {
		return p.settings.supplier()
	}
	return p.settings.recycler.New()
}

// returnValue is invoked only by a releasing handle: recycle the value,
// then push it onto the releasing goroutine's partition.
func (p *Pool[T]) returnValue(value T) {
	p.store.Push(p.settings.recycler.Recycle(value))
}

func (p *Pool[T]) getRawValue() T {
	if v, ok := p.store.Pop(); ok {
		return v
	}
	return p.create()
}

func (p *Pool[T]) logBuilt(seeded int) {
	p.logger.Debug("initialized pool",
		append([]zap.Field{
			zap.Int("starting_size", p.settings.startingSize),
			zap.Int("seeded", seeded),
			zap.Bool("supplier", p.settings.supplier != nil),
		}, p.logFields...)...)
}
