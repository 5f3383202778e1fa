package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// writeReport emits one line per station, sorted by byte-lexicographic
// name order: <station>=<min>/<mean>/<max>, each value with exactly one
// fractional digit and a '-' only when negative. The mean is rounded to
// the nearest tenth, halves away from zero.
func writeReport(w io.Writer, tab *statTable) error {
	type row struct {
		name  string
		stats stationStats
	}
	rows := make([]row, 0, tab.len())
	tab.iterate(func(name string, s stationStats) {
		rows = append(rows, row{name, s})
	})
	slices.SortFunc(rows, func(a, b row) int {
		return strings.Compare(a.name, b.name)
	})

	bw := bufio.NewWriter(w)
	for _, r := range rows {
		bw.WriteString(r.name)
		bw.WriteByte('=')
		writeTenths(bw, r.stats.min)
		bw.WriteByte('/')
		writeTenths(bw, meanTenths(r.stats.sum, r.stats.count))
		bw.WriteByte('/')
		writeTenths(bw, r.stats.max)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// meanTenths divides a tenths sum by count, rounding half away from
// zero. Integer arithmetic throughout; the division happens on the
// magnitude so truncation cannot pull negative means toward zero.
func meanTenths(sum int64, count uint64) int32 {
	c := int64(count)
	if sum >= 0 {
		return int32((sum + c/2) / c)
	}
	return int32(-((-sum + c/2) / c))
}

// writeTenths renders a tenths value as a signed decimal with one
// fractional digit: -5 -> "-0.5".
func writeTenths(bw *bufio.Writer, v int32) {
	if v < 0 {
		bw.WriteByte('-')
		v = -v
	}
	bw.WriteString(strconv.Itoa(int(v / 10)))
	bw.WriteByte('.')
	bw.WriteByte('0' + byte(v%10))
}
