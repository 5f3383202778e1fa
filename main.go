package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/pkg/profile"
)

const defaultInputPath = "measurements.txt"

func main() {
	if len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s [<measurements-file>] [<profile-dir>]\n", os.Args[0])
		os.Exit(1)
	}

	path := defaultInputPath
	if len(os.Args) >= 2 {
		path = os.Args[1]
	}
	if len(os.Args) == 3 {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(os.Args[2])).Stop()
	}

	// Everything after startup allocates a small, bounded amount; GC
	// cycles during the scan only cost time.
	debug.SetGCPercent(-1)

	if err := run(path, runtime.NumCPU(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to process %s: %v\n", path, err)
		os.Exit(1)
	}
}

// run maps the input, fans it out to workers, and writes the sorted
// report to out. The mapping outlives every worker: it is released only
// after the workers have joined and the merge has completed.
func run(path string, maxProcs int, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	data, err := mapFile(f)
	if err != nil {
		return err
	}
	defer unmapFile(data)

	merged, err := aggregate(data, workerCount(len(data), maxProcs))
	if err != nil {
		return err
	}
	return writeReport(out, merged)
}
