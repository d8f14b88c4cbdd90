// Package bytebuf provides a recycler for the bytebufferpool buffer family.
// Importing the package is what opts the bytebufferpool dependency in; the
// core module never links it on its own.
package bytebuf

import (
	"github.com/valyala/bytebufferpool"

	"github.com/caelunshun/swimmer"
)

// Buffer pools ByteBuffers. Recycling empties the buffer but keeps the
// grown byte slice.
func Buffer() swimmer.Recycler[*bytebufferpool.ByteBuffer] {
	return swimmer.Recycler[*bytebufferpool.ByteBuffer]{
		New: func() *bytebufferpool.ByteBuffer { return &bytebufferpool.ByteBuffer{} },
		Recycle: func(b *bytebufferpool.ByteBuffer) *bytebufferpool.ByteBuffer {
			b.Reset()
			return b
		},
	}
}
