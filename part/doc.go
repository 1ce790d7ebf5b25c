// Package part implements the ordered partition π over a fixed universe
// [0, n) of graphcanon.VIdx, as used by a single search-tree node.
//
// π is a bijection between the n vertices and n positions, grouped into
// contiguous cells. It exposes Get (position → vertex), GetInverse (vertex
// → position), and GetCellEnd (position → end of its containing cell).
//
// The underlying storage — parallel index/element slices swapped in place as
// cells split — is grounded on the splitting-tree partition representation
// in the Jaxan-partition pack entry, narrowed to a dense contiguous-cell
// model with no witness/splitter bookkeeping: the refine package owns
// splitting, part.Partition only owns the resulting bijection and its cell
// boundaries.
package part
