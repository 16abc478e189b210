// Package algorithms implements the query engines that operate on an
// already-compiled *core.DecisionDNNF:
//
//   - ModelCounter — memoized, assumption-aware model/path counting.
//   - DirectAccessEngine — materializes the k-th model by descending the
//     graph using memoized counts.
//   - OrderedDirectAccessEngine — the same query under a caller-supplied
//     variable order, restoring portability across structurally different
//     but logically equivalent graphs.
//   - ModelEnumerator — stateful incremental enumeration of every model.
//   - ModelFinder — first-model search (optionally under assumptions).
//   - OrphanFinder — cycle and unreachable-node detection plus compaction.
//
// All engines hold an immutable *core.DecisionDNNF and their own
// memoization tables; they are cheap to construct and safe to run
// concurrently over disjoint index ranges, one engine per goroutine.
package algorithms
