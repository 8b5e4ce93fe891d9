// Copyright ©2025 The Cachescope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command comparerun compares two saved cachescope run records, cell by
// cell, and reports latency regressions and detection differences.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/LynnColeArt/cachescope"
)

type cellComparison struct {
	StrideBytes int
	LengthBytes int
	Baseline    float64
	Current     float64
	Speedup     float64 // baseline / current
	Status      string  // "PASS", "SLOWER", "FASTER"
}

func main() {
	var (
		baselineFile = flag.String("baseline", "", "Baseline run record")
		currentFile  = flag.String("current", "", "Current run record (default: newest saved record)")
		perfRegress  = flag.Float64("perf-regress", 1.1, "Regression threshold (1.1 = 10% slower)")
	)
	flag.Parse()

	if *baselineFile == "" {
		log.Fatal("a -baseline run record is required")
	}
	if *currentFile == "" {
		latest, err := cachescope.LatestRunRecord("")
		if err != nil {
			log.Fatalf("No current record given and none found: %v", err)
		}
		*currentFile = latest
	}

	baseline, err := cachescope.LoadRunRecord(*baselineFile)
	if err != nil {
		log.Fatalf("Failed to load baseline: %v", err)
	}
	current, err := cachescope.LoadRunRecord(*currentFile)
	if err != nil {
		log.Fatalf("Failed to load current record: %v", err)
	}

	if !sameAxes(baseline, current) {
		log.Fatal("records cover different sweeps; nothing to compare")
	}

	comparisons := compareCells(baseline, current, *perfRegress)
	printComparison(baseline, current, *baselineFile, *currentFile, comparisons)
}

func sameAxes(a, b *cachescope.RunRecord) bool {
	if len(a.StrideBytes) != len(b.StrideBytes) || len(a.LengthBytes) != len(b.LengthBytes) {
		return false
	}
	for i := range a.StrideBytes {
		if a.StrideBytes[i] != b.StrideBytes[i] {
			return false
		}
	}
	for i := range a.LengthBytes {
		if a.LengthBytes[i] != b.LengthBytes[i] {
			return false
		}
	}
	return true
}

func compareCells(baseline, current *cachescope.RunRecord, perfRegress float64) []cellComparison {
	var comparisons []cellComparison

	for i := range baseline.LatencyNs {
		for j := range baseline.LatencyNs[i] {
			base := baseline.LatencyNs[i][j]
			curr := current.LatencyNs[i][j]
			if base <= 0 || curr <= 0 {
				// Skipped in at least one record.
				continue
			}

			comp := cellComparison{
				StrideBytes: baseline.StrideBytes[j],
				LengthBytes: baseline.LengthBytes[i],
				Baseline:    base,
				Current:     curr,
				Speedup:     base / curr,
				Status:      "PASS",
			}
			if comp.Speedup < 1.0/perfRegress {
				comp.Status = "SLOWER"
			} else if comp.Speedup > 1.2 {
				comp.Status = "FASTER"
			}
			comparisons = append(comparisons, comp)
		}
	}
	return comparisons
}

func printComparison(baseline, current *cachescope.RunRecord, basePath, currPath string, comparisons []cellComparison) {
	fmt.Println("=== cachescope run comparison ===")
	fmt.Printf("Baseline: %s (%s, %s)\n", basePath,
		baseline.Timestamp.Format("2006-01-02 15:04:05"), baseline.CPU.BrandName)
	fmt.Printf("Current:  %s (%s, %s)\n", currPath,
		current.Timestamp.Format("2006-01-02 15:04:05"), current.CPU.BrandName)
	fmt.Println()

	statusCount := make(map[string]int)
	for _, comp := range comparisons {
		statusCount[comp.Status]++
	}
	fmt.Printf("Cells compared: %d\n", len(comparisons))
	fmt.Printf("  PASS:   %d\n", statusCount["PASS"])
	fmt.Printf("  SLOWER: %d\n", statusCount["SLOWER"])
	fmt.Printf("  FASTER: %d\n", statusCount["FASTER"])
	fmt.Println()

	fmt.Println("DETECTED PARAMETERS:")
	fmt.Printf("  cache length: %s -> %s\n",
		capacityString(baseline), capacityString(current))
	fmt.Printf("  line length:  %s -> %s\n",
		lineString(baseline), lineString(current))
	fmt.Println()

	if statusCount["SLOWER"] > 0 || statusCount["FASTER"] > 0 {
		fmt.Println("LATENCY CHANGES:")
		for _, comp := range comparisons {
			if comp.Status == "PASS" {
				continue
			}
			fmt.Printf("  stride %dB @ %dKB: %s %.2fx (%.1fns -> %.1fns)\n",
				comp.StrideBytes, comp.LengthBytes/1024,
				strings.ToLower(comp.Status), ratioFor(comp),
				comp.Baseline, comp.Current)
		}
		fmt.Println()
	}

	fmt.Println("DETAILED RESULTS:")
	fmt.Printf("%-10s %-10s %-6s %10s %10s %8s\n",
		"Stride", "Length", "Status", "Baseline", "Current", "Speedup")
	fmt.Println(strings.Repeat("-", 60))
	for _, comp := range comparisons {
		fmt.Printf("%-10s %-10s %-6s %9.1fn %9.1fn %8.2f\n",
			fmt.Sprintf("%dB", comp.StrideBytes),
			fmt.Sprintf("%dKB", comp.LengthBytes/1024),
			comp.Status, comp.Baseline, comp.Current, comp.Speedup)
	}
}

func ratioFor(comp cellComparison) float64 {
	if comp.Status == "SLOWER" {
		return 1.0 / comp.Speedup
	}
	return comp.Speedup
}

func capacityString(rec *cachescope.RunRecord) string {
	if !rec.CapacityFound {
		return "not found"
	}
	return fmt.Sprintf("%dKB", rec.CapacityKB)
}

func lineString(rec *cachescope.RunRecord) string {
	if !rec.LineFound {
		return "not found"
	}
	return fmt.Sprintf("%dB", rec.LineBytes)
}
