package core

import (
	"fmt"
	"sync"
)

// DecisionDNNF is an immutable-after-construction rooted DAG: node 0 is the
// root, every other node is reachable from it, and the graph contains no
// cycles. Nodes and edges are stored as two flat, densely indexed slices.
//
// Concurrency: once built, a *DecisionDNNF may be read from multiple
// goroutines without synchronization, except for the first call to
// FreeVars, which is guarded internally by a sync.Once.
type DecisionDNNF struct {
	nVars int
	nodes []Node
	edges []Edge

	freeVarsOnce sync.Once
	freeVars     *FreeVariables
}

// NewDecisionDNNF builds a graph directly from already-validated nodes and
// edges. Loaders (package ioformat) are responsible for structural
// validation (reachability, acyclicity) before calling this constructor;
// NewDecisionDNNF itself performs no such checks, mirroring the teacher's
// convention of keeping validation in the builder layer and construction
// itself a thin, trusting assembly step.
func NewDecisionDNNF(nVars int, nodes []Node, edges []Edge) *DecisionDNNF {
	return &DecisionDNNF{nVars: nVars, nodes: nodes, edges: edges}
}

// NVars returns the number of variables the graph is declared over.
func (d *DecisionDNNF) NVars() int {
	return d.nVars
}

// UpdateNVars grows the variable count. It panics if asked to shrink it,
// since a shrinking n_vars would silently invalidate any InvolvedVars sized
// against the old count.
func (d *DecisionDNNF) UpdateNVars(n int) {
	if n < d.nVars {
		panic(fmt.Sprintf("%v: from %d to %d", ErrNVarsShrink, d.nVars, n))
	}
	d.nVars = n
	d.freeVarsOnce = sync.Once{}
	d.freeVars = nil
}

// Nodes returns the graph's node slice. The returned slice must not be
// mutated by callers.
func (d *DecisionDNNF) Nodes() []Node {
	return d.nodes
}

// Edges returns the graph's edge slice. The returned slice must not be
// mutated by callers.
func (d *DecisionDNNF) Edges() []Edge {
	return d.edges
}

// Node returns the node at i.
func (d *DecisionDNNF) Node(i NodeIndex) Node {
	return d.nodes[i]
}

// Edge returns the edge at i.
func (d *DecisionDNNF) Edge(i EdgeIndex) Edge {
	return d.edges[i]
}

// NNodes returns the number of nodes in the graph.
func (d *DecisionDNNF) NNodes() int {
	return len(d.nodes)
}

// NEdges returns the number of edges in the graph.
func (d *DecisionDNNF) NEdges() int {
	return len(d.edges)
}

// Root is always node index 0.
func (d *DecisionDNNF) Root() NodeIndex {
	return 0
}

// FreeVars computes (on first call) and returns the graph's FreeVariables
// cache. Subsequent calls are O(1).
func (d *DecisionDNNF) FreeVars() *FreeVariables {
	d.freeVarsOnce.Do(func() {
		d.freeVars = computeFreeVariables(d)
	})
	return d.freeVars
}

// Subformula produces a new owned graph containing every node reachable
// from root, with indices compacted to be dense starting at 0 (root itself
// becomes index 0 of the result), preserving n_vars and edge semantics.
//
// Complexity: O(nodes + edges) reachable from root, via one memoized DFS.
func (d *DecisionDNNF) Subformula(root NodeIndex) *DecisionDNNF {
	b := &subformulaBuilder{
		src:      d,
		newIndex: make(map[NodeIndex]NodeIndex),
	}
	b.copyNode(root)
	return NewDecisionDNNF(d.nVars, b.nodes, b.edges)
}

// subformulaBuilder performs the memoized DFS copy behind Subformula.
type subformulaBuilder struct {
	src      *DecisionDNNF
	newIndex map[NodeIndex]NodeIndex
	nodes    []Node
	edges    []Edge
}

func (b *subformulaBuilder) copyNode(from NodeIndex) NodeIndex {
	if idx, ok := b.newIndex[from]; ok {
		return idx
	}
	node := b.src.Node(from)
	newIdx := NodeIndex(len(b.nodes))
	b.newIndex[from] = newIdx
	// Reserve the slot before recursing so cycles through shared children
	// (impossible in a valid DAG, but defensive against reentrancy during
	// the reservation itself) see a stable index.
	b.nodes = append(b.nodes, Node{Kind: node.Kind})

	var newChildren []EdgeIndex
	for _, ei := range node.Children {
		newChildren = append(newChildren, b.copyEdge(ei))
	}
	b.nodes[newIdx].Children = newChildren
	return newIdx
}

func (b *subformulaBuilder) copyEdge(from EdgeIndex) EdgeIndex {
	edge := b.src.Edge(from)
	target := b.copyNode(edge.Target)
	propagated := make([]Literal, len(edge.Propagated))
	copy(propagated, edge.Propagated)
	newIdx := EdgeIndex(len(b.edges))
	b.edges = append(b.edges, Edge{Target: target, Propagated: propagated})
	return newIdx
}
