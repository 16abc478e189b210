// Package core defines the Decision-DNNF data model shared by every query
// engine in this module: literals, the dense InvolvedVars bitset, the node
// and edge representation of the graph, the DecisionDNNF container itself,
// the free-variable analyzer cache, and the assumptions container used to
// restrict queries to a subset of models.
//
// What
//
// A Decision-DNNF is a rooted DAG. Internal nodes are either decomposable
// conjunctions (children share no variable) or deterministic disjunctions
// (children are pairwise contradictory); leaves are the Boolean constants
// True and False. Edges carry a list of propagated literals that are
// conjoined with the child subformula whenever the edge is traversed.
//
// Why
//
// Keeping the graph representation immutable and borrow-only (Go: read-only
// after construction) lets every query engine in package algorithms hold a
// plain pointer to a *DecisionDNNF and run single-threaded, lock-free
// traversals, while still allowing several engines — or several goroutines,
// each owning its own engine — to query the same graph concurrently.
//
// Key Types & Constants
//
//   - Literal: a variable index plus a polarity bit, encoded as one integer.
//   - InvolvedVars: a word-parallel bitset over [0, NVars).
//   - Node, Edge, NodeIndex, EdgeIndex: the graph's storage types.
//   - DecisionDNNF: the graph itself, plus its lazily computed FreeVariables.
//   - Assumptions: a fixed partial assignment restricting queries.
//
// Complexity
//
// Construction is O(nodes + edges). FreeVariables is computed once, lazily,
// in O(nodes + edges) via a single post-order DFS, and cached thereafter.
//
// Errors
//
// This package panics on programmer errors (malformed assumptions, shrinking
// n_vars) since these indicate a broken caller invariant, not a data
// condition a caller can recover from. Structural validation of freshly
// parsed graphs (cycles, unreachable nodes) is the loader's responsibility,
// not this package's; see package ioformat.
package core
