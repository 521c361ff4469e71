// Package parallel splits index ranges across CPU cores.
//
// Callers must write to disjoint indices only; no reduction happens here, so
// results are identical to the sequential loop.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultThreshold is the item count at or below which work stays on the
// calling goroutine.
const DefaultThreshold = 4096

// Parallelize divides [0, items) into one contiguous chunk per CPU core and
// runs fn on each chunk concurrently. It returns when every chunk is done.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	numWorkers := min(runtime.NumCPU(), items)
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := min(start+chunkSize, items)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) inline when items <= threshold,
// and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// For calls fn(i) for every i in [0, items), fanning out above threshold.
func For(items int, threshold int, fn func(i int)) {
	ParallelizeWithThreshold(items, threshold, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}
