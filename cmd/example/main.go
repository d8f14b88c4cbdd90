package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/andrew-d/csmrand"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/caelunshun/swimmer"
)

// Global pools shared by the examples.
var (
	bufferPool = swimmer.NewBuilder(swimmer.ForBuffer()).
			WithStartingSize(8).
			WithSupplier(func() *bytes.Buffer {
			b := &bytes.Buffer{}
			b.Grow(256)
			return b
		}).
		Build()

	scratchPool = swimmer.New(swimmer.ForSlice[int]())
)

func main() {
	log.Println("Running swimmer examples...")

	log.Println("\n=== Running Basic Example ===")
	exampleBasic()

	log.Println("\n=== Running Attach/Detach Example ===")
	exampleAttachDetach()

	log.Println("\n=== Running Scoped Example ===")
	exampleScoped()

	log.Println("\n=== Running Concurrent Example ===")
	exampleConcurrent()

	log.Println("\nAll examples completed!")
}

func exampleBasic() {
	fmt.Printf("pool starts with %d spare buffers\n", bufferPool.Size())

	buf := bufferPool.Get()
	buf.Value().WriteString("hello, pooled world")
	fmt.Printf("wrote %q, %d spares left\n", buf.Value().String(), bufferPool.Size())

	buf.Release()
	fmt.Printf("released, back to %d spares\n", bufferPool.Size())

	// The recycled buffer comes back empty but keeps its capacity.
	again := bufferPool.Get()
	fmt.Printf("reacquired buffer: len=%d cap=%d\n", again.Value().Len(), again.Value().Cap())
	again.Release()
}

func exampleAttachDetach() {
	external := bytes.NewBufferString("constructed elsewhere")
	handle := bufferPool.Attach(external)
	fmt.Printf("attached %q, size still %d\n", handle.Value().String(), bufferPool.Size())
	handle.Release()
	fmt.Printf("after release, size %d\n", bufferPool.Size())

	raw := bufferPool.Detached()
	fmt.Printf("detached a buffer for good, size %d\n", bufferPool.Size())
	raw.WriteString("never recycled")
}

func exampleScoped() {
	scratchPool.Do(func(value *swimmer.Recycled[[]int]) {
		for i := 0; i < 10; i++ {
			*value.Ptr() = append(value.Value(), csmrand.Intn(100))
		}
		fmt.Printf("scratch slice holds %d random values\n", len(value.Value()))
	})
	fmt.Printf("scratch returned, %d spare\n", scratchPool.Size())
}

func exampleConcurrent() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	pool := swimmer.NewBuilder(swimmer.ForBuffer()).
		WithStartingSize(4).
		WithLogger(logger).
		Build()

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		worker := i
		g.Go(func() error {
			for j := 0; j < csmrand.Intn(500)+500; j++ {
				buf := pool.Get()
				fmt.Fprintf(buf.Value(), "worker %d iteration %d", worker, j)
				buf.Release()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("workers failed: %v", err)
	}

	logger.Info("concurrent workload complete", zap.Int("spares", pool.Size()))
}
