// Copyright ©2025 The Cachescope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cachescope measures the memory hierarchy of the host CPU.
//
// The probe times random-order pointer-chasing traversals over working sets
// of varying sizes and strides. Each (size, stride) cell of the sweep gets a
// fresh page-aligned region holding a randomized single-cycle successor
// chain, so hardware prefetchers have no address pattern to lock onto and
// every access pays the true latency of its cache level. Repeating the sweep
// many times and trimming the slow outliers yields a stable latency table;
// the boundaries of the cache hierarchy show up as abrupt jumps along the
// size axis (cache capacity) and the stride axis (cache line length).
//
// The measurement engine lives in this package: cycle construction
// (BuildCycle), traversal and timing (Traverse, MeasureTraversal), the sweep
// over the parameter matrix (Sweep), trial aggregation (TrimmedMean), and
// boundary detection on the aggregated table (Table.CapacityBoundary,
// Table.LineBoundary). Which sizes and strides to probe, and how the result
// is rendered, is policy that belongs to the caller; cmd/cachescope carries
// the default policy.
//
// Detected values can be checked against what the CPU itself reports
// (DetectCPU reads the CPUID cache geometry), but reported values never feed
// detection: the point of the exercise is to measure.
package cachescope
