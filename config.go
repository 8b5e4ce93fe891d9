package cachescope

import "github.com/ncw/directio"

// Successor encoding and traversal rounds.
const (
	// DefaultMask is XORed into every stored successor offset so the cell
	// values never resemble plain addresses and next-address predictors get
	// nothing to train on. The constant itself is arbitrary; it only has to
	// stay fixed between cycle construction and traversal.
	DefaultMask int32 = 1454213

	// TimedRounds is the number of full cycles walked by the measured
	// traversal of a cell; WarmupRounds is walked untimed immediately before
	// it to populate caches and TLB entries. Both are whole-cycle multiples
	// so every active position is touched the same number of times.
	WarmupRounds = 32
	TimedRounds  = 16
)

// Sweep cell admission.
const (
	// MinActivePositions is the smallest cycle worth timing. At or below
	// this count the loop overhead dominates the memory access being
	// measured, so the sweep skips the cell entirely.
	MinActivePositions = 4
)

// Region geometry.
const (
	// CellBytes is the size of one region slot. Byte figures in the latency
	// table and the detection summary scale element counts by this.
	CellBytes = 4

	// DefaultAlign is the base-address alignment for fresh regions. Regions
	// start on a page boundary so no sweep cell straddles a page head.
	DefaultAlign = directio.AlignSize
)

// Detection thresholds. Both are fixed empirical constants: a latency step
// larger than these factors is attributed to crossing a hardware boundary,
// anything smaller is noise.
const (
	// CapacityJumpThreshold is the relative step along the working-set axis
	// that marks a cache capacity boundary.
	CapacityJumpThreshold = 1.2

	// LineJumpThreshold is the relative step along the stride axis that
	// marks a cache line boundary.
	LineJumpThreshold = 1.1
)

// Aggregation.
const (
	// TrimKeepFraction is the share of samples retained per cell after
	// sorting ascending. The rest is the slow tail: scheduling noise and
	// interrupts inflate latency but never deflate it, so only the top is
	// trimmed.
	TrimKeepFraction = 0.8
)
