package main

import "bytes"

// splitChunks cuts data into n contiguous ranges whose boundaries fall
// just past a line terminator, so no record straddles two chunks. The
// ideal boundary for chunk i sits at len(data)*i/n; the actual one is
// found by scanning forward (never backward) to the next newline. Near
// the end of the file that scan can run out of terminators, in which
// case the boundary collapses to len(data) and the remaining chunks
// come back empty; workers treat an empty chunk as a no-op.
// Concatenating the returned chunks in order reproduces data exactly.
func splitChunks(data []byte, n int) [][]byte {
	if n < 1 {
		n = 1
	}
	chunks := make([][]byte, 0, n)
	l := len(data)
	start := 0
	for i := 1; i < n; i++ {
		ideal := l * i / n
		if ideal < start {
			ideal = start
		}
		end := l
		if j := bytes.IndexByte(data[ideal:], '\n'); j >= 0 {
			end = ideal + j + 1
		}
		chunks = append(chunks, data[start:end])
		start = end
	}
	return append(chunks, data[start:])
}
