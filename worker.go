package main

import "golang.org/x/sync/errgroup"

// smallFileCutoff is the input size below which spawning workers costs
// more than the scan itself; such inputs run on a single worker.
const smallFileCutoff = 10000

// workerCount picks the number of workers for an input of the given
// size, capped at maxProcs (normally runtime.NumCPU()).
func workerCount(size, maxProcs int) int {
	if size < smallFileCutoff || maxProcs < 1 {
		return 1
	}
	return maxProcs
}

// aggregate scans data with the given number of parallel workers and
// returns the merged per-station table. Each worker owns one chunk and
// one private table, so the hot path takes no locks; the only
// synchronization is the final join. The result is independent of the
// worker count and of which worker got which chunk. If any worker hits
// a malformed record, the partial tables are discarded and the first
// error is returned.
func aggregate(data []byte, workers int) (*statTable, error) {
	chunks := splitChunks(data, workers)
	tables := make([]*statTable, len(chunks))

	var g errgroup.Group
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			tab := newStatTable(defaultTableCap)
			if err := scanChunk(chunk, tab); err != nil {
				return err
			}
			tables[i] = tab
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := tables[0]
	for _, tab := range tables[1:] {
		merged.mergeFrom(tab)
	}
	return merged, nil
}
