package swimmer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_Builder_DefaultStartingSize(t *testing.T) {
	pool := NewBuilder(ForBuffer()).Build()

	assert.Zero(t, pool.Size())
}

func Test_Builder_StartingSize(t *testing.T) {
	pool := NewBuilder(ForBuffer()).WithStartingSize(100).Build()

	assert.Equal(t, 100, pool.Size())

	value := pool.Get()
	assert.Equal(t, 99, pool.Size())
	assert.Equal(t, "", value.Value().String())

	value.Release()
	assert.Equal(t, 100, pool.Size())
}

func Test_Builder_SupplierConstructsFreshValues(t *testing.T) {
	pool := NewBuilder(ForBuffer()).
		WithStartingSize(4).
		WithSupplier(func() *bytes.Buffer {
			return bytes.NewBufferString("test")
		}).
		Build()

	value := pool.Get()
	require.Equal(t, "test", value.Value().String())

	value.Value().WriteString("bla")
	assert.Equal(t, "testbla", value.Value().String())
	value.Release()
}

func Test_Builder_SupplierNotUsedForRecycling(t *testing.T) {
	pool := NewBuilder(ForBuffer()).
		WithSupplier(func() *bytes.Buffer {
			b := &bytes.Buffer{}
			b.Grow(128)
			return b
		}).
		Build()

	value := pool.Get()
	require.Zero(t, value.Value().Len())
	require.GreaterOrEqual(t, value.Value().Cap(), 128)

	value.Value().WriteString("mutated")
	value.Release()

	// The same value comes back recycled, not re-supplied: logically empty
	// with its pre-grown capacity intact.
	again := pool.Get()
	assert.Zero(t, again.Value().Len())
	assert.GreaterOrEqual(t, again.Value().Cap(), 128)
	again.Release()
}

func Test_Builder_BuildWith(t *testing.T) {
	seeds := []*bytes.Buffer{
		bytes.NewBufferString("value_1"),
		bytes.NewBufferString("value_2"),
		bytes.NewBufferString("value_3"),
	}

	pool := NewBuilder(ForBuffer()).BuildWith(seeds)
	require.Equal(t, 3, pool.Size())

	// Seeds come back off the top of the stack.
	value := pool.Get()
	assert.Equal(t, "value_3", value.Value().String())
}

func Test_Builder_BuildWithTopUp(t *testing.T) {
	seeds := []*bytes.Buffer{
		bytes.NewBufferString("value_1"),
		bytes.NewBufferString("value_2"),
		bytes.NewBufferString("value_3"),
	}

	pool := NewBuilder(ForBuffer()).WithStartingSize(5).BuildWith(seeds)
	require.Equal(t, 5, pool.Size())

	// The two top-ups were constructed fresh and sit above the seeds.
	value5 := pool.Get()
	assert.Equal(t, "", value5.Value().String())

	value4 := pool.Get()
	assert.Equal(t, "", value4.Value().String())

	value3 := pool.Get()
	assert.Equal(t, "value_3", value3.Value().String())
}

func Test_Builder_BuildWithLargerThanStartingSize(t *testing.T) {
	seeds := []*bytes.Buffer{
		bytes.NewBufferString("a"),
		bytes.NewBufferString("b"),
		bytes.NewBufferString("c"),
	}

	pool := NewBuilder(ForBuffer()).WithStartingSize(2).BuildWith(seeds)

	assert.Equal(t, 3, pool.Size())
}

func Test_Builder_PanicsWithoutRecycle(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder(Recycler[int]{New: func() int { return 0 }}).Build()
	})
}

func Test_Builder_PanicsWithoutConstructor(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder(Recycler[int]{Recycle: func(int) int { return 0 }}).Build()
	})
}

func Test_Builder_SupplierSatisfiesConstruction(t *testing.T) {
	// No New function, but a supplier: construction is covered.
	pool := NewBuilder(Recycler[int]{Recycle: func(int) int { return 0 }}).
		WithSupplier(func() int { return 7 }).
		WithStartingSize(1).
		Build()

	assert.Equal(t, 1, pool.Size())
	assert.Equal(t, 7, pool.Get().Value())
}

func Test_Builder_WithLogger(t *testing.T) {
	// Building with a real logger must not disturb pool behavior.
	pool := NewBuilder(ForBuffer()).
		WithStartingSize(2).
		WithLogger(zap.NewNop()).
		Build()

	assert.Equal(t, 2, pool.Size())
}
