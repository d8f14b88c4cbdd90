package swimmer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recycled_DoubleReleaseIsNoOp(t *testing.T) {
	pool := WithSize(ForBuffer(), 1)

	value := pool.Get()
	value.Release()
	value.Release()

	// A second Release must not push the slot twice.
	assert.Equal(t, 1, pool.Size())
}

func Test_Recycled_ReleaseAfterDeferredRelease(t *testing.T) {
	pool := WithSize(ForBuffer(), 1)

	func() {
		value := pool.Get()
		defer value.Release()
		value.Release() // early explicit release; the deferred one is a no-op
	}()

	assert.Equal(t, 1, pool.Size())
}

func Test_Recycled_ValueAfterReleasePanics(t *testing.T) {
	pool := New(ForBuffer())

	value := pool.Get()
	value.Release()

	assert.Panics(t, func() {
		_ = value.Value()
	})
}

func Test_Recycled_Detach(t *testing.T) {
	pool := WithSize(ForBuffer(), 1)

	value := pool.Get()
	value.Value().WriteString("mine now")
	raw := value.Detach()

	// Detachment keeps the mutated state: no recycling happened.
	assert.Equal(t, "mine now", raw.String())
	assert.Zero(t, pool.Size())

	// The consumed handle stays consumed.
	value.Release()
	assert.Zero(t, pool.Size())
}

func Test_Recycled_DetachAfterReleasePanics(t *testing.T) {
	pool := New(ForBuffer())

	value := pool.Get()
	value.Release()

	assert.Panics(t, func() {
		value.Detach()
	})
}

func Test_Recycled_DetachTwicePanics(t *testing.T) {
	pool := New(ForBuffer())

	value := pool.Get()
	_ = value.Detach()

	assert.Panics(t, func() {
		value.Detach()
	})
}

func Test_Recycled_StringPassthrough(t *testing.T) {
	pool := New(ForInteger[int]())

	value := pool.Attach(42)
	assert.Equal(t, "42", value.String())
	assert.Equal(t, "42", fmt.Sprintf("%v", value))

	value.Release()
	assert.Equal(t, "swimmer.Recycled(consumed)", value.String())
}

func Test_Recycled_GoStringPassthrough(t *testing.T) {
	pool := New(ForSlice[int]())

	value := pool.Attach([]int{1, 2})
	require.Equal(t, "[]int{1, 2}", fmt.Sprintf("%#v", value))
	value.Release()
}
