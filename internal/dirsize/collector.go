package dirsize

import (
	"math"
	"math/bits"
	"sync"
)

// addSaturating returns a+b, or math.MaxUint64 if the sum would wrap.
func addSaturating(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}

	return sum
}

// sum reduces contributions with addSaturating.
func sum(sizes []uint64) uint64 {
	var total uint64
	for _, s := range sizes {
		total = addSaturating(total, s)
	}

	return total
}

// fileBytes converts a reported file size to an accumulator value.
func fileBytes(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}

// collector aggregates sizes from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	fileCount  int64
	totalBytes uint64
	errorCount int64
}

// addError increments the error counter. This operation is protected by a mutex
// since fastwalk calls the callback from multiple goroutines concurrently.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// add records a regular file of the given size.
func (c *collector) add(size uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileCount++
	c.totalBytes = addSaturating(c.totalBytes, size)
}

// finalize returns the totals gathered so far.
func (c *collector) finalize() (total uint64, files, errs int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.totalBytes, c.fileCount, c.errorCount
}
