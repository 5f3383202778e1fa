package main

// A statTable maps station names to their running aggregates. It is an
// open-addressed table built for the shape of this workload: a few
// hundred distinct keys at most, each hit millions of times, mutated by
// exactly one goroutine. Lookups hash the name content (the same
// station arrives as many different spans of the mapped file), probe
// linearly, and allocate only when a station is seen for the first
// time, at which point the name bytes are copied once into table-owned
// storage. Entries are never deleted; count==0 marks an empty slot.

// FNV-1a constants.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// stationStats is the running aggregate for one station. count is at
// least 1 from the moment the entry exists. sum is in tenths and stays
// far below the int64 limit even at 10^9 rows of 3-digit magnitudes.
type stationStats struct {
	count uint64
	sum   int64
	min   int32
	max   int32
}

type tableEntry struct {
	hash  uint64
	name  string
	stats stationStats
}

type statTable struct {
	entries []tableEntry
	mask    uint64
	used    int
}

const defaultTableCap = 1024

// newStatTable returns a table with at least the given capacity,
// rounded up to a power of two.
func newStatTable(capacity int) *statTable {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &statTable{
		entries: make([]tableEntry, size),
		mask:    uint64(size - 1),
	}
}

func hashName(name []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range name {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

// upsert records one measurement for name. A first sighting inserts a
// fresh aggregate with count=1 and min=max=sum=tenths; after that the
// entry is updated in place and nothing allocates.
func (t *statTable) upsert(name []byte, tenths int32) {
	h := hashName(name)
	i := h & t.mask
	for {
		e := &t.entries[i]
		if e.stats.count == 0 {
			t.insert(i, h, string(name), stationStats{
				count: 1,
				sum:   int64(tenths),
				min:   tenths,
				max:   tenths,
			})
			return
		}
		if e.hash == h && e.name == string(name) {
			e.stats.count++
			e.stats.sum += int64(tenths)
			e.stats.min = min(e.stats.min, tenths)
			e.stats.max = max(e.stats.max, tenths)
			return
		}
		i = (i + 1) & t.mask
	}
}

// mergeFrom folds every aggregate of src into t. Combining aggregates
// is commutative and associative, so a set of tables may be merged in
// any order or grouping with the same result.
func (t *statTable) mergeFrom(src *statTable) {
	for i := range src.entries {
		if e := &src.entries[i]; e.stats.count > 0 {
			t.absorb(e.hash, e.name, e.stats)
		}
	}
}

func (t *statTable) absorb(h uint64, name string, s stationStats) {
	i := h & t.mask
	for {
		e := &t.entries[i]
		if e.stats.count == 0 {
			t.insert(i, h, name, s)
			return
		}
		if e.hash == h && e.name == name {
			e.stats.count += s.count
			e.stats.sum += s.sum
			e.stats.min = min(e.stats.min, s.min)
			e.stats.max = max(e.stats.max, s.max)
			return
		}
		i = (i + 1) & t.mask
	}
}

// iterate calls f for every station in unspecified order.
func (t *statTable) iterate(f func(name string, s stationStats)) {
	for i := range t.entries {
		if e := &t.entries[i]; e.stats.count > 0 {
			f(e.name, e.stats)
		}
	}
}

func (t *statTable) len() int { return t.used }

func (t *statTable) insert(i uint64, h uint64, name string, s stationStats) {
	t.entries[i] = tableEntry{hash: h, name: name, stats: s}
	t.used++
	// The known station cardinality never gets near this threshold, but
	// adversarial inputs must still hash correctly.
	if t.used*2 > len(t.entries) {
		t.grow()
	}
}

func (t *statTable) grow() {
	old := t.entries
	t.entries = make([]tableEntry, 2*len(old))
	t.mask = uint64(len(t.entries) - 1)
	t.used = 0
	for i := range old {
		if old[i].stats.count == 0 {
			continue
		}
		j := old[i].hash & t.mask
		for t.entries[j].stats.count != 0 {
			j = (j + 1) & t.mask
		}
		t.entries[j] = old[i]
		t.used++
	}
}
