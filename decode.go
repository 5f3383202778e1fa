package main

import "fmt"

// parseTemp converts an ASCII temperature into an integer count of
// tenths of a degree: "-15.7" -> -157. The grammar is an optional '-',
// one or two integer digits, '.', and exactly one fractional digit.
// The generator guarantees that shape, so anything else is corrupt
// input, not a value to recover from.
func parseTemp(b []byte) (int32, error) {
	s := b
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var v int32
	switch len(s) {
	case 3: // x.x
		if !isDigit(s[0]) || s[1] != '.' || !isDigit(s[2]) {
			return 0, fmt.Errorf("malformed temperature %q", b)
		}
		v = int32(s[0]-'0')*10 + int32(s[2]-'0')
	case 4: // xx.x
		if !isDigit(s[0]) || !isDigit(s[1]) || s[2] != '.' || !isDigit(s[3]) {
			return 0, fmt.Errorf("malformed temperature %q", b)
		}
		v = int32(s[0]-'0')*100 + int32(s[1]-'0')*10 + int32(s[3]-'0')
	default:
		return 0, fmt.Errorf("malformed temperature %q", b)
	}

	if neg {
		v = -v
	}
	return v, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
