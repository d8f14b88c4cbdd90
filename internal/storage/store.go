// Package storage implements the partitioned free-lists backing a pool.
package storage

import (
	"runtime"
	"sync"

	"github.com/caelunshun/swimmer/internal/gid"
)

// shard is a single partition: a LIFO stack with its own lock. The trailing
// padding keeps neighbouring shards on separate cache lines.
type shard[T any] struct {
	mu    sync.Mutex
	items []T
	_     [96]byte
}

// Store is a set of LIFO free-lists partitioned by goroutine identity.
//
// A goroutine always pushes to and pops from the same partition, so values
// a goroutine releases come back to it in last-in-first-out order. Pop never
// consults another goroutine's partition: a goroutine can find its partition
// empty while spares sit in another one, which is the accepted cost of
// keeping release free of cross-partition traffic.
//
// Several goroutines may hash to the same partition; the per-partition mutex
// exists for exactly that case and is uncontended while the number of live
// goroutines stays at or below the partition count.
type Store[T any] struct {
	shards []shard[T]
	mask   uint64
}

// New creates a store with one partition per logical CPU, rounded up to the
// next power of two.
func New[T any]() *Store[T] {
	n := nextPowerOfTwo(runtime.GOMAXPROCS(0))
	return &Store[T]{
		shards: make([]shard[T], n),
		mask:   uint64(n - 1),
	}
}

func (s *Store[T]) own() *shard[T] {
	return &s.shards[gid.ID()&s.mask]
}

// Push places v on the calling goroutine's partition.
func (s *Store[T]) Push(v T) {
	sh := s.own()
	sh.mu.Lock()
	sh.items = append(sh.items, v)
	sh.mu.Unlock()
}

// Pop removes and returns the most recently pushed value of the calling
// goroutine's partition. ok is false when that partition is empty.
func (s *Store[T]) Pop() (v T, ok bool) {
	sh := s.own()
	sh.mu.Lock()
	if n := len(sh.items); n > 0 {
		var zero T
		v = sh.items[n-1]
		sh.items[n-1] = zero
		sh.items = sh.items[:n-1]
		ok = true
	}
	sh.mu.Unlock()
	return v, ok
}

// Len reports the total number of stored values across every partition.
// Partitions are locked one at a time, so under concurrent mutation the
// result is a best-effort snapshot, not a linearizable count.
func (s *Store[T]) Len() int {
	total := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		total += len(sh.items)
		sh.mu.Unlock()
	}
	return total
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
