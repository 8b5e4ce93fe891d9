package cachescope

import "time"

// Traverse performs steps pointer-chasing reads through the cycle embedded
// in cells. Each step reads the cell at the current offset, XOR-s the value
// with mask to recover the next offset, advances there, and folds the
// recovered offset into the checksum. The loads form a serial dependency
// chain: no step's address is available before the previous load completes.
//
// Kept opaque to the inliner so the compiler cannot prove the reads dead;
// the checksum escapes through the pointer for the same reason.
//
//go:noinline
func Traverse(steps int, cells []int32, mask int32, checksum *int32) {
	sum := *checksum
	cur := int32(0)
	for i := 0; i < steps; i++ {
		cur = cells[cur] ^ mask
		sum += cur
	}
	*checksum = sum
}

// MeasureTraversal times exactly one Traverse call of the given step count
// and returns the elapsed wall-clock duration.
func MeasureTraversal(steps int, cells []int32, mask int32, checksum *int32) time.Duration {
	start := time.Now()
	Traverse(steps, cells, mask, checksum)
	return time.Since(start)
}
