// Copyright ©2025 The Cachescope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cachescope measures the host CPU's cache capacity and cache
// line size by timing randomized pointer-chasing sweeps. It takes no
// flags: the sweep policy below is the whole configuration.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/LynnColeArt/cachescope"
	"github.com/cheggaaa/pb"
)

// Sweep policy: strides double from 1 to 256 elements, working sets
// double from 1KB to 512KB, each cell sampled across 100 passes.

func defaultStrides() []int {
	strides := []int{1}
	for strides[len(strides)-1] <= 128 {
		strides = append(strides, strides[len(strides)-1]*2)
	}
	return strides
}

func defaultLengths() []int {
	lengths := []int{256}
	for lengths[len(lengths)-1] <= 64*1024 {
		lengths = append(lengths, lengths[len(lengths)-1]*2)
	}
	return lengths
}

const passes = 100

func main() {
	fmt.Println("=== cachescope ===")
	fmt.Printf("Date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	cachescope.PrintCPU(os.Stdout, cachescope.DetectCPU())
	fmt.Println()
	fmt.Println("Expected to finish in 20 seconds")

	bar := pb.New(passes)
	bar.Output = os.Stderr
	bar.ShowTimeLeft = true
	bar.Start()

	res, err := cachescope.Run(&cachescope.RunConfig{
		Strides: defaultStrides(),
		Lengths: defaultLengths(),
		Passes:  passes,
		Progress: func(_, _ int) {
			bar.Increment()
		},
	})
	bar.Finish()
	if err != nil {
		log.Fatalf("Measurement failed: %v", err)
	}

	fmt.Println()
	cachescope.PrintTable(os.Stdout, res.Table)
	cachescope.PrintSummary(os.Stdout, res)

	path, err := cachescope.SaveRunRecord("", res.Record)
	if err != nil {
		log.Fatalf("Failed to save run record: %v", err)
	}
	fmt.Printf("\nRun record saved to %s\n", path)
}
