package main

import (
	"bytes"
	"fmt"
)

// scanChunk walks one chunk of the mapped file in a single forward pass
// and feeds every record into tab. Station name spans alias the mapped
// buffer; nothing is copied here. bytes.IndexByte is the search
// primitive for both delimiters since it dispatches to a vectorized
// implementation where the platform has one, and the two searches never
// revisit a byte.
//
// A chunk normally ends just past a line terminator, but the final
// record of the file may lack its trailing newline; end of chunk then
// acts as the terminator.
func scanChunk(chunk []byte, tab *statTable) error {
	for len(chunk) > 0 {
		sep := bytes.IndexByte(chunk, ';')
		if sep < 0 {
			return fmt.Errorf("record %q: missing ';'", clip(chunk))
		}
		name := chunk[:sep]
		rest := chunk[sep+1:]

		var field []byte
		if nl := bytes.IndexByte(rest, '\n'); nl >= 0 {
			field = rest[:nl]
			chunk = rest[nl+1:]
		} else {
			field = rest
			chunk = nil
		}

		tenths, err := parseTemp(field)
		if err != nil {
			return fmt.Errorf("station %q: %w", name, err)
		}
		tab.upsert(name, tenths)
	}
	return nil
}

// clip bounds the bytes quoted in an error so a chunk-sized tail does
// not end up in the message.
func clip(b []byte) []byte {
	const n = 40
	if len(b) <= n {
		return b
	}
	return b[:n]
}
