// Package swimmer implements a thread-safe object pool.
//
// An object pool reuses values instead of reallocating them. A value
// requested with Get is taken out of the pool; when its handle is released,
// the value is recycled (mutated state cleared, grown capacity kept) and
// returned to the pool, where a later Get may hand it out again. Pooling
// pays off for latency-sensitive code that repeatedly allocates and
// discards same-shaped objects such as buffers and scratch collections.
//
// A pool is configured with a Builder and a Recycler, the capability that
// tells the pool how to construct and reset values of the pooled type:
//
//	pool := swimmer.NewBuilder(swimmer.ForBuffer()).
//		WithStartingSize(10).
//		Build()
//
//	buf := pool.Get()
//	buf.Value().WriteString("scratch work")
//	buf.Release() // emptied and stored for reuse
//
// Ready-made recyclers cover the common containers (ForSlice, ForBuffer,
// ForMap, ForSet, ForDeque, ForSinglyLinkedList, ForDoublyLinkedList,
// ForTreeMap, ForTreeSet, ForBinaryHeap) and fixed-width integers
// (ForInteger). Structs that implement Recyclable pool via ForRecyclable;
// anything else needs a hand-written Recycler, and its Recycle function is
// obliged to clear every trace of prior use; the pool cannot check.
//
// # Suppliers
//
// A supplier replaces the recycler's New function for construction only,
// never for recycling. Use one to pre-size fresh values:
//
//	pool := swimmer.NewBuilder(swimmer.ForSlice[byte]()).
//		WithSupplier(func() []byte { return make([]byte, 0, 1024) }).
//		Build()
//
// # Concurrency
//
// A Pool may be shared freely across goroutines. Spare values are kept in
// per-goroutine partitions, so Get and Release stay off any shared lock;
// within one goroutine values are reused in LIFO order. No operation
// blocks, and none returns an error: the only failure mode is a
// constructor or supplier panic, which propagates to the caller untouched.
//
// Subpackages under ext add recyclers for container families with extra
// dependencies; importing a subpackage is what opts the dependency in.
package swimmer
