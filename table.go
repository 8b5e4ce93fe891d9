package cachescope

// Table is the aggregated latency grid for one run. Rows are indexed by
// working-set length, columns by stride. Cell values are trimmed-mean
// nanoseconds per active position, NaN where the cell was skipped or
// starved of samples. Once built the table is read-only; printing and
// analysis never mutate it.
type Table struct {
	Strides []int       // element strides, column axis
	Lengths []int       // working-set lengths in elements, row axis
	Cells   [][]float64 // Cells[lengthIdx][strideIdx]
}

// Collector accumulates per-trial latency samples across repeated sweep
// passes and reduces them into a Table. Its Add method has the SampleFunc
// shape, so a Collector plugs straight into Sweep.
type Collector struct {
	strides []int
	lengths []int
	samples [][][]float64
}

// NewCollector returns a collector for the given grid axes. The axis
// slices are copied so later mutation by the caller cannot skew the grid.
func NewCollector(strides, lengths []int) *Collector {
	c := &Collector{
		strides: append([]int(nil), strides...),
		lengths: append([]int(nil), lengths...),
		samples: make([][][]float64, len(lengths)),
	}
	for i := range c.samples {
		c.samples[i] = make([][]float64, len(strides))
	}
	return c
}

// Add records one latency sample for a grid cell.
func (c *Collector) Add(lengthIdx, strideIdx int, nsPerPos float64) {
	c.samples[lengthIdx][strideIdx] = append(c.samples[lengthIdx][strideIdx], nsPerPos)
}

// Samples returns the raw samples recorded so far for one cell.
func (c *Collector) Samples(lengthIdx, strideIdx int) []float64 {
	return c.samples[lengthIdx][strideIdx]
}

// Table reduces the collected samples into the aggregated latency table.
// Sample order within a cell is irrelevant; only the multiset of values
// feeds the trimmed mean.
func (c *Collector) Table() *Table {
	cells := make([][]float64, len(c.lengths))
	for i := range cells {
		cells[i] = make([]float64, len(c.strides))
		for j := range cells[i] {
			cells[i][j] = TrimmedMean(c.samples[i][j])
		}
	}
	return &Table{
		Strides: c.strides,
		Lengths: c.lengths,
		Cells:   cells,
	}
}
