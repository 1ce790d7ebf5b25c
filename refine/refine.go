package refine

import (
	"github.com/katalvlaran/graphcanon"
	"github.com/katalvlaran/graphcanon/part"
)

// Equitable refines pi in place until it is equitable with respect to
// neighbors: for every two positions in the same cell, the count of
// neighbors lying in any given cell is equal. It terminates because every
// successful split strictly increases the number of cells, which is
// bounded by pi.Len().
func Equitable(pi *part.Partition, neighbors func(graphcanon.VIdx) []graphcanon.VIdx) {
	for {
		if !refineOnePass(pi, neighbors) {
			return
		}
	}
}

// refineOnePass uses every current cell in turn as a splitter against
// every other cell, reports whether any split actually happened.
func refineOnePass(pi *part.Partition, neighbors func(graphcanon.VIdx) []graphcanon.VIdx) bool {
	changed := false
	for _, splitterBegin := range pi.Cells() {
		splitterEnd := pi.GetCellEnd(splitterBegin)
		inSplitter := make(map[graphcanon.VIdx]bool, splitterEnd-splitterBegin)
		for pos := splitterBegin; pos < splitterEnd; pos++ {
			inSplitter[pi.Get(pos)] = true
		}

		key := func(v graphcanon.VIdx) int {
			count := 0
			for _, u := range neighbors(v) {
				if inSplitter[u] {
					count++
				}
			}
			return count
		}

		for _, begin := range pi.Cells() {
			end := pi.GetCellEnd(begin)
			if end-begin <= 1 {
				continue
			}
			starts := pi.Split(begin, end, key)
			if len(starts) > 1 {
				changed = true
			}
		}
	}
	return changed
}

// FirstNonTrivialCell returns the begin position of the first cell of size
// greater than 1, in position order, and true. If pi is discrete it returns
// (0, false).
func FirstNonTrivialCell(pi *part.Partition) (graphcanon.CIdx, bool) {
	for _, begin := range pi.Cells() {
		if pi.GetCellEnd(begin)-begin > 1 {
			return begin, true
		}
	}
	return 0, false
}
