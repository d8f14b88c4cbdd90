package swimmer

import (
	"cmp"

	"github.com/emirpasic/gods/v2/lists/doublylinkedlist"
	"github.com/emirpasic/gods/v2/lists/singlylinkedlist"
	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/emirpasic/gods/v2/sets/treeset"
	"github.com/emirpasic/gods/v2/trees/binaryheap"
	"github.com/gammazero/deque"
)

// ForDeque pools double-ended queues. Recycling empties the deque but keeps
// its ring buffer.
func ForDeque[E any]() Recycler[*deque.Deque[E]] {
	return Recycler[*deque.Deque[E]]{
		New: func() *deque.Deque[E] { return new(deque.Deque[E]) },
		Recycle: func(d *deque.Deque[E]) *deque.Deque[E] {
			d.Clear()
			return d
		},
	}
}

// ForSinglyLinkedList pools singly linked lists.
func ForSinglyLinkedList[E comparable]() Recycler[*singlylinkedlist.List[E]] {
	return Recycler[*singlylinkedlist.List[E]]{
		New: func() *singlylinkedlist.List[E] { return singlylinkedlist.New[E]() },
		Recycle: func(l *singlylinkedlist.List[E]) *singlylinkedlist.List[E] {
			l.Clear()
			return l
		},
	}
}

// ForDoublyLinkedList pools doubly linked lists.
func ForDoublyLinkedList[E comparable]() Recycler[*doublylinkedlist.List[E]] {
	return Recycler[*doublylinkedlist.List[E]]{
		New: func() *doublylinkedlist.List[E] { return doublylinkedlist.New[E]() },
		Recycle: func(l *doublylinkedlist.List[E]) *doublylinkedlist.List[E] {
			l.Clear()
			return l
		},
	}
}

// ForTreeMap pools ordered maps keyed by any ordered type.
func ForTreeMap[K cmp.Ordered, V any]() Recycler[*treemap.Map[K, V]] {
	return Recycler[*treemap.Map[K, V]]{
		New: func() *treemap.Map[K, V] { return treemap.New[K, V]() },
		Recycle: func(m *treemap.Map[K, V]) *treemap.Map[K, V] {
			m.Clear()
			return m
		},
	}
}

// ForTreeSet pools ordered sets.
func ForTreeSet[E cmp.Ordered]() Recycler[*treeset.Set[E]] {
	return Recycler[*treeset.Set[E]]{
		New: func() *treeset.Set[E] { return treeset.New[E]() },
		Recycle: func(s *treeset.Set[E]) *treeset.Set[E] {
			s.Clear()
			return s
		},
	}
}

// ForBinaryHeap pools priority queues ordered by the element's natural
// order.
func ForBinaryHeap[E cmp.Ordered]() Recycler[*binaryheap.Heap[E]] {
	return Recycler[*binaryheap.Heap[E]]{
		New: func() *binaryheap.Heap[E] { return binaryheap.New[E]() },
		Recycle: func(h *binaryheap.Heap[E]) *binaryheap.Heap[E] {
			h.Clear()
			return h
		},
	}
}
