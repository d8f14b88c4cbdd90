// Package fastmap provides recyclers for the xsync concurrent hash-table
// family. Importing the package is what opts the xsync dependency in; the
// core module never links it on its own.
package fastmap

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/caelunshun/swimmer"
)

// Map pools concurrent hash maps. Recycling deletes every entry but keeps
// the allocated table.
func Map[K comparable, V any]() swimmer.Recycler[*xsync.MapOf[K, V]] {
	return swimmer.Recycler[*xsync.MapOf[K, V]]{
		New: func() *xsync.MapOf[K, V] { return xsync.NewMapOf[K, V]() },
		Recycle: func(m *xsync.MapOf[K, V]) *xsync.MapOf[K, V] {
			m.Clear()
			return m
		},
	}
}

// Counter pools striped counters. Recycling resets the count to zero.
func Counter() swimmer.Recycler[*xsync.Counter] {
	return swimmer.Recycler[*xsync.Counter]{
		New: func() *xsync.Counter { return xsync.NewCounter() },
		Recycle: func(c *xsync.Counter) *xsync.Counter {
			c.Reset()
			return c
		},
	}
}
