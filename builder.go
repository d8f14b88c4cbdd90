package swimmer

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/caelunshun/swimmer/internal/storage"
)

// Supplier constructs fresh values in place of the recycler's New function.
// It is consulted for every fresh construction, both the initial fill and
// cache misses, and never for recycling.
type Supplier[T any] func() T

// Builder configures a Pool. Chain zero or more With calls and finish with
// Build or BuildWith; the settings are frozen into the pool at that point.
type Builder[T any] struct {
	recycler     Recycler[T]
	startingSize int
	supplier     Supplier[T]
	logger       *zap.Logger
}

// NewBuilder creates a builder around the given recycler, with a starting
// size of zero and no supplier.
func NewBuilder[T any](r Recycler[T]) *Builder[T] {
	return &Builder[T]{recycler: r}
}

// WithStartingSize sets how many values the pool constructs up front.
// Building front-loads that construction cost; the values land in the
// building goroutine's partition.
func (b *Builder[T]) WithStartingSize(n int) *Builder[T] {
	b.startingSize = n
	return b
}

// WithSupplier uses s instead of the recycler's New function whenever the
// pool constructs a fresh value. Useful for pre-sizing: a supplier can hand
// back containers that already grew their backing storage.
func (b *Builder[T]) WithSupplier(s Supplier[T]) *Builder[T] {
	b.supplier = s
	return b
}

// WithLogger attaches a logger for construction-time events. The default is
// a no-op logger; nothing is ever logged on the Get/Release path.
func (b *Builder[T]) WithLogger(logger *zap.Logger) *Builder[T] {
	b.logger = logger
	return b
}

// Build creates the pool and fills it with startingSize freshly constructed
// values.
func (b *Builder[T]) Build() *Pool[T] {
	p := b.newPool()
	for i := 0; i < b.startingSize; i++ {
		p.store.Push(p.create())
	}
	p.logBuilt(0)
	return p
}

// BuildWith creates the pool seeded with items, then tops it up with
// freshly constructed values until the configured starting size is reached.
// Seeds are pushed in order onto the building goroutine's partition, so a
// Get on that goroutine pops the top-ups first, then the seeds from last to
// first.
func (b *Builder[T]) BuildWith(items []T) *Pool[T] {
	p := b.newPool()
	for _, item := range items {
		p.store.Push(item)
	}
	for i := len(items); i < b.startingSize; i++ {
		p.store.Push(p.create())
	}
	p.logBuilt(len(items))
	return p
}

func (b *Builder[T]) newPool() *Pool[T] {
	if b.recycler.Recycle == nil {
		panic("swimmer: builder requires a recycler with a non-nil Recycle")
	}
	if b.recycler.New == nil && b.supplier == nil {
		panic("swimmer: builder requires a recycler with a non-nil New, or a supplier")
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pool[T]{
		settings: settings[T]{
			startingSize: b.startingSize,
			supplier:     b.supplier,
			recycler:     b.recycler,
		},
		store:  storage.New[T](),
		logger: logger,
		logFields: []zap.Field{
			zap.String("pool_id", uuid.NewString()),
		},
	}
}
