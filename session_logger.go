package cachescope

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/montanaflynn/stats"
)

// DefaultRecordDir is where run records land unless the caller says
// otherwise.
const DefaultRecordDir = "cachescope_logs"

// skippedCell marks grid cells with no aggregate in the JSON record,
// since JSON has no encoding for NaN.
const skippedCell = -1

// SampleStats summarizes the spread of one cell's repeated samples,
// in nanoseconds per active position.
type SampleStats struct {
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P99 float64 `json:"p99"`
}

// RunRecord captures one completed measurement run for offline
// comparison between hosts or kernel configurations.
type RunRecord struct {
	Timestamp   time.Time   `json:"timestamp"`
	CPU         CPUInfo     `json:"cpu"`
	Passes      int         `json:"passes"`
	Mask        int32       `json:"mask"`
	Seed        int64       `json:"seed"`
	StrideBytes []int       `json:"stride_bytes"`
	LengthBytes []int       `json:"length_bytes"`
	LatencyNs   [][]float64 `json:"latency_ns"` // -1 marks skipped cells

	// Baseline is the sample spread of the first measured grid cell,
	// a rough gauge of scheduler noise during the run.
	Baseline            *SampleStats `json:"baseline,omitempty"`
	BaselineLengthBytes int          `json:"baseline_length_bytes,omitempty"`
	BaselineStrideBytes int          `json:"baseline_stride_bytes,omitempty"`

	CapacityFound bool `json:"capacity_found"`
	CapacityKB    int  `json:"capacity_kb,omitempty"`
	LineFound     bool `json:"line_found"`
	LineBytes     int  `json:"line_bytes,omitempty"`
}

// summarizeSamples reduces a cell's raw samples to their spread.
func summarizeSamples(samples []float64) (SampleStats, error) {
	var s SampleStats
	var err error
	if s.Avg, err = stats.Mean(samples); err != nil {
		return SampleStats{}, err
	}
	if s.Min, err = stats.Min(samples); err != nil {
		return SampleStats{}, err
	}
	if s.Max, err = stats.Max(samples); err != nil {
		return SampleStats{}, err
	}
	if s.P50, err = stats.Percentile(samples, 50); err != nil {
		return SampleStats{}, err
	}
	if s.P90, err = stats.Percentile(samples, 90); err != nil {
		return SampleStats{}, err
	}
	if s.P99, err = stats.Percentile(samples, 99); err != nil {
		return SampleStats{}, err
	}
	return s, nil
}

// sanitizeGrid copies the latency grid with NaN cells replaced by the
// skipped-cell marker.
func sanitizeGrid(cells [][]float64) [][]float64 {
	out := make([][]float64, len(cells))
	for i, row := range cells {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				out[i][j] = skippedCell
			} else {
				out[i][j] = v
			}
		}
	}
	return out
}

// SaveRunRecord writes rec as indented JSON to a timestamped file under
// dir, creating the directory if needed. An empty dir selects
// DefaultRecordDir. Returns the path written.
func SaveRunRecord(dir string, rec *RunRecord) (string, error) {
	if rec == nil {
		return "", NewInvalidArgError("SaveRunRecord", "record must not be nil")
	}
	if dir == "" {
		dir = DefaultRecordDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", NewIOError("SaveRunRecord", "failed to create record directory", err)
	}

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	path := filepath.Join(dir,
		fmt.Sprintf("cachescope_%s.json", rec.Timestamp.Format("20060102_150405")))

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", NewIOError("SaveRunRecord", "failed to marshal run record", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", NewIOError("SaveRunRecord", "failed to write run record", err)
	}
	return path, nil
}

// LoadRunRecord reads a run record previously written by SaveRunRecord.
func LoadRunRecord(path string) (*RunRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewIOError("LoadRunRecord", "failed to read run record", err)
	}
	var rec RunRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, NewIOError("LoadRunRecord", "failed to parse run record", err)
	}
	return &rec, nil
}

// LatestRunRecord returns the path of the most recent record in dir.
// An empty dir selects DefaultRecordDir.
func LatestRunRecord(dir string) (string, error) {
	if dir == "" {
		dir = DefaultRecordDir
	}
	files, err := filepath.Glob(filepath.Join(dir, "cachescope_*.json"))
	if err != nil {
		return "", NewIOError("LatestRunRecord", "failed to list record directory", err)
	}
	if len(files) == 0 {
		return "", NewIOError("LatestRunRecord", "no run records found", nil)
	}

	var latest string
	var latestTime time.Time
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latest = file
			latestTime = info.ModTime()
		}
	}
	return latest, nil
}
