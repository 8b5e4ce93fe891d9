package cachescope

import (
	"math/rand"
	"time"
)

// RunConfig carries the full-run policy: grid axes, pass count, and
// optional knobs. Zero Mask, Align, and Seed select DefaultMask,
// DefaultAlign, and a wall-clock seed.
type RunConfig struct {
	Strides  []int
	Lengths  []int
	Passes   int
	Mask     int32
	Align    int
	Seed     int64
	Progress func(pass, total int) // called after each completed pass
}

// Result bundles everything a caller needs to report a finished run.
type Result struct {
	Table       *Table
	CPU         CPUInfo
	CapacityIdx int
	CapacityOK  bool
	LineIdx     int
	LineOK      bool
	Record      *RunRecord
}

// Run executes the configured number of sweep passes, aggregates the
// samples into a latency table, scans it for the capacity and line
// boundaries, and assembles the persistent run record. Passes run
// strictly one after another on the calling goroutine; parallel passes
// would thrash the very cache state under measurement.
func Run(cfg *RunConfig) (*Result, error) {
	if cfg == nil {
		return nil, NewInvalidArgError("Run", "config must not be nil")
	}
	if len(cfg.Strides) == 0 || len(cfg.Lengths) == 0 {
		return nil, NewInvalidArgError("Run", "stride and length lists must not be empty")
	}
	if cfg.Passes < 1 {
		return nil, NewInvalidArgError("Run", "pass count must be at least 1")
	}

	mask := cfg.Mask
	if mask == 0 {
		mask = DefaultMask
	}
	align := cfg.Align
	if align == 0 {
		align = DefaultAlign
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	collector := NewCollector(cfg.Strides, cfg.Lengths)
	sweepCfg := &SweepConfig{
		Strides: cfg.Strides,
		Lengths: cfg.Lengths,
		Mask:    mask,
		Align:   align,
		Rand:    rand.New(rand.NewSource(seed)),
	}

	for pass := 0; pass < cfg.Passes; pass++ {
		if err := Sweep(sweepCfg, collector.Add); err != nil {
			return nil, err
		}
		if cfg.Progress != nil {
			cfg.Progress(pass+1, cfg.Passes)
		}
	}

	table := collector.Table()
	capIdx, capOK := table.CapacityBoundary()
	lineIdx, lineOK := 0, false
	if capOK {
		lineIdx, lineOK = table.LineBoundary(capIdx)
	}

	res := &Result{
		Table:       table,
		CPU:         DetectCPU(),
		CapacityIdx: capIdx,
		CapacityOK:  capOK,
		LineIdx:     lineIdx,
		LineOK:      lineOK,
	}
	res.Record = buildRecord(cfg.Passes, mask, seed, collector, table, res)
	return res, nil
}

// buildRecord assembles the serializable record for a finished run.
func buildRecord(passes int, mask int32, seed int64, c *Collector, t *Table, res *Result) *RunRecord {
	rec := &RunRecord{
		Timestamp:     time.Now(),
		CPU:           res.CPU,
		Passes:        passes,
		Mask:          mask,
		Seed:          seed,
		StrideBytes:   scaleToBytes(t.Strides),
		LengthBytes:   scaleToBytes(t.Lengths),
		LatencyNs:     sanitizeGrid(t.Cells),
		CapacityFound: res.CapacityOK,
		LineFound:     res.LineOK,
	}
	if res.CapacityOK {
		rec.CapacityKB = t.Lengths[res.CapacityIdx] * CellBytes / 1024
	}
	if res.LineOK {
		rec.LineBytes = t.Strides[res.LineIdx] * CellBytes
	}

	// The first measured cell doubles as the noise baseline.
baseline:
	for i := range t.Lengths {
		for j := range t.Strides {
			samples := c.Samples(i, j)
			if len(samples) == 0 {
				continue
			}
			if s, err := summarizeSamples(samples); err == nil {
				rec.Baseline = &s
				rec.BaselineLengthBytes = t.Lengths[i] * CellBytes
				rec.BaselineStrideBytes = t.Strides[j] * CellBytes
			}
			break baseline
		}
	}

	return rec
}

// scaleToBytes converts an element-count axis to bytes.
func scaleToBytes(elems []int) []int {
	out := make([]int, len(elems))
	for i, e := range elems {
		out[i] = e * CellBytes
	}
	return out
}
