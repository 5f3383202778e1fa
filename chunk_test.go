package main

import (
	"bytes"
	"fmt"
	"testing"
)

func TestSplitChunksBoundaryIntegrity(t *testing.T) {
	var input bytes.Buffer
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&input, "station-%d;%d.%d\n", i%7, i%90, i%10)
	}
	data := input.Bytes()

	for _, n := range []int{1, 2, 3, 4, 7, 8, 16, 100, 1000} {
		chunks := splitChunks(data, n)
		if len(chunks) != n {
			t.Fatalf("n=%d: got %d chunks", n, len(chunks))
		}

		// Concatenating the chunks in order must reproduce the input.
		var joined []byte
		for _, c := range chunks {
			joined = append(joined, c...)
		}
		if !bytes.Equal(joined, data) {
			t.Fatalf("n=%d: concatenated chunks differ from input", n)
		}

		// Every boundary is 0, len(data), or just past a newline: each
		// non-final chunk is either empty or ends with the terminator.
		for i, c := range chunks[:len(chunks)-1] {
			if len(c) > 0 && c[len(c)-1] != '\n' {
				t.Fatalf("n=%d: chunk %d ends mid-line: %q", n, i, c)
			}
		}
	}
}

func TestSplitChunksSingle(t *testing.T) {
	data := []byte("a;1.0\nb;2.0\n")
	chunks := splitChunks(data, 1)
	if len(chunks) != 1 || !bytes.Equal(chunks[0], data) {
		t.Fatalf("n=1 must return the whole buffer, got %q", chunks)
	}
}

func TestSplitChunksEmptyTrailing(t *testing.T) {
	// One short line split many ways: every ideal boundary lands past
	// the final terminator, so all chunks after the first are empty.
	data := []byte("a;1.0\n")
	chunks := splitChunks(data, 4)
	if !bytes.Equal(chunks[0], data) {
		t.Fatalf("chunk 0 = %q, want whole input", chunks[0])
	}
	for i, c := range chunks[1:] {
		if len(c) != 0 {
			t.Fatalf("chunk %d = %q, want empty", i+1, c)
		}
	}
}

func TestSplitChunksNoTrailingNewline(t *testing.T) {
	data := []byte("a;1.0\nb;2.0\nc;3.0")
	for _, n := range []int{1, 2, 3, 5} {
		chunks := splitChunks(data, n)
		var joined []byte
		for _, c := range chunks {
			joined = append(joined, c...)
		}
		if !bytes.Equal(joined, data) {
			t.Fatalf("n=%d: concatenated chunks differ from input", n)
		}
	}
}

func TestSplitChunksEmptyInput(t *testing.T) {
	chunks := splitChunks(nil, 4)
	if len(chunks) != 4 {
		t.Fatalf("got %d chunks, want 4", len(chunks))
	}
	for i, c := range chunks {
		if len(c) != 0 {
			t.Fatalf("chunk %d = %q, want empty", i, c)
		}
	}
}
