package cachescope

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// PrintTable renders the latency grid for human analysis: one row per
// stride (labelled in bytes), one column per working-set size (labelled
// in KB), cells in nanoseconds per active position.
func PrintTable(w io.Writer, t *Table) {
	fmt.Fprintln(w, "Results: stride \\ memory length")

	header := make([]string, 0, len(t.Lengths)+1)
	header = append(header, "stride")
	for _, l := range t.Lengths {
		header = append(header, fmt.Sprintf("%dKB", l*CellBytes/1024))
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)

	for j, s := range t.Strides {
		row := make([]string, 0, len(t.Lengths)+1)
		row = append(row, strconv.Itoa(s*CellBytes))
		for i := range t.Lengths {
			row = append(row, formatCell(t.Cells[i][j]))
		}
		tw.Append(row)
	}
	tw.Render()
}

// formatCell renders one latency value; skipped cells show their NaN
// sentinel rather than hiding.
func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// PrintSummary reports the detected hardware parameters beneath the
// table, including what the analyzer could not find.
func PrintSummary(w io.Writer, res *Result) {
	if res.CapacityOK {
		color.New(color.FgGreen).Fprintf(w, "Cache length: %dKB\n",
			res.Table.Lengths[res.CapacityIdx]*CellBytes/1024)
	} else {
		color.New(color.FgYellow).Fprintln(w, "Cache length not found")
	}

	if res.LineOK {
		color.New(color.FgGreen).Fprintf(w, "Cache line length: %d\n",
			res.Table.Strides[res.LineIdx]*CellBytes)
	} else {
		color.New(color.FgYellow).Fprintln(w, "Cache line length not found")
	}

	fmt.Fprintln(w, "Cache associativity calculation not implemented")
}

// PrintCPU reports the CPU's self-described identity and cache geometry
// so measured numbers can be read against what the part claims.
func PrintCPU(w io.Writer, info CPUInfo) {
	brand := info.BrandName
	if brand == "" {
		brand = "unknown"
	}
	fmt.Fprintf(w, "CPU: %s (%d cores, %d threads)\n",
		brand, info.PhysicalCores, info.LogicalCores)
	fmt.Fprintf(w, "Reported line size: %d bytes\n", info.CacheLine)
	fmt.Fprintf(w, "Reported caches: L1D %s, L2 %s, L3 %s\n",
		reportedSize(info.L1D), reportedSize(info.L2), reportedSize(info.L3))
	fmt.Fprintln(w, info.FeatureSummary())
}

// reportedSize renders a CPUID cache size, which can be absent.
func reportedSize(bytes int) string {
	if bytes <= 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(bytes))
}
