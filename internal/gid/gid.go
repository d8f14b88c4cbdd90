// Package gid resolves the identity of the calling goroutine.
//
// The Go runtime intentionally hides goroutine ids, so the id is parsed out
// of the "goroutine N [...]" header that runtime.Stack writes for the
// current goroutine. The call traverses only the header, not the whole
// stack, making the cost a small fixed overhead per lookup.
package gid

import (
	"bytes"
	"runtime"
	"strconv"
)

var header = []byte("goroutine ")

// ID returns the runtime id of the calling goroutine. The id is stable for
// the lifetime of the goroutine and never reused while it is alive.
func ID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	frame := bytes.TrimPrefix(buf[:n], header)
	if i := bytes.IndexByte(frame, ' '); i >= 0 {
		frame = frame[:i]
	}
	id, err := strconv.ParseUint(string(frame), 10, 64)
	if err != nil {
		panic("gid: malformed goroutine header: " + string(buf[:n]))
	}
	return id
}
