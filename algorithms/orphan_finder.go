package algorithms

import (
	"errors"

	"github.com/crillab/decdnnf-go/core"
)

// ErrCycleDetected is returned by OrphanFinder.Search when the graph
// contains a cycle, which would make every downstream engine's assumption
// of a finite DAG unsound.
var ErrCycleDetected = errors.New("algorithms: cycle detected")

// OrphanFinder performs a DFS from the root, marking every node and edge it
// reaches. Anything left unmarked afterward is "orphan": unreachable from
// the root and therefore dead weight a loader should strip before handing
// the graph to a query engine.
//
// Cycle detection uses two marker sets, exactly like the "on current path"
// vs. "ever visited" split used for cycle detection elsewhere in this
// module's DFS-based components: a node on its own current path is a
// cycle; a node visited on an earlier path is shared, not cyclic.
type OrphanFinder struct {
	orphanNodes []core.NodeIndex
	orphanEdges []core.EdgeIndex
}

// NewOrphanFinder returns an empty OrphanFinder; call Search to populate it.
func NewOrphanFinder() *OrphanFinder {
	return &OrphanFinder{}
}

// Search walks d from its root, returning ErrCycleDetected if a cycle is
// found. On success, OrphanNodes and OrphanEdges report the unreachable
// parts of the graph.
func (o *OrphanFinder) Search(d *core.DecisionDNNF) error {
	seenOnce := make([]bool, d.NNodes())
	seenOnPath := make([]bool, d.NNodes())
	edgeSeen := make([]bool, d.NEdges())

	var visit func(core.NodeIndex) error
	visit = func(idx core.NodeIndex) error {
		if seenOnPath[idx] {
			return ErrCycleDetected
		}
		if seenOnce[idx] {
			return nil
		}
		seenOnce[idx] = true
		seenOnPath[idx] = true
		for _, ei := range d.Node(idx).Children {
			edgeSeen[ei] = true
			if err := visit(d.Edge(ei).Target); err != nil {
				return err
			}
		}
		seenOnPath[idx] = false
		return nil
	}
	if err := visit(d.Root()); err != nil {
		return err
	}

	o.orphanNodes = nil
	for i, seen := range seenOnce {
		if !seen {
			o.orphanNodes = append(o.orphanNodes, core.NodeIndex(i))
		}
	}
	o.orphanEdges = nil
	for i, seen := range edgeSeen {
		if !seen {
			o.orphanEdges = append(o.orphanEdges, core.EdgeIndex(i))
		}
	}
	return nil
}

// OrphanNodes returns the node indices unreachable from the root, sorted
// ascending.
func (o *OrphanFinder) OrphanNodes() []core.NodeIndex {
	return o.orphanNodes
}

// OrphanEdges returns the edge indices unreachable from the root, sorted
// ascending.
func (o *OrphanFinder) OrphanEdges() []core.EdgeIndex {
	return o.orphanEdges
}

// RemoveFromFormula returns a new graph with every orphan node and edge
// stripped and every remaining index shifted down by the number of removed
// predecessors, so the result is densely indexed again.
func (o *OrphanFinder) RemoveFromFormula(d *core.DecisionDNNF) *core.DecisionDNNF {
	nodeOrphan := make([]bool, d.NNodes())
	for _, ni := range o.orphanNodes {
		nodeOrphan[ni] = true
	}
	edgeOrphan := make([]bool, d.NEdges())
	for _, ei := range o.orphanEdges {
		edgeOrphan[ei] = true
	}

	var newNodes []core.Node
	for i, nd := range d.Nodes() {
		if nodeOrphan[i] {
			continue
		}
		var newChildren []core.EdgeIndex
		for _, ei := range nd.Children {
			if edgeOrphan[ei] {
				continue
			}
			newChildren = append(newChildren, core.EdgeIndex(shiftIndex(int(ei), o.orphanEdgesInt())))
		}
		newNodes = append(newNodes, core.Node{Kind: nd.Kind, Children: newChildren})
	}

	var newEdges []core.Edge
	for i, e := range d.Edges() {
		if edgeOrphan[i] {
			continue
		}
		newEdges = append(newEdges, core.Edge{
			Target:     core.NodeIndex(shiftIndex(int(e.Target), o.orphanNodesInt())),
			Propagated: e.Propagated,
		})
	}
	return core.NewDecisionDNNF(d.NVars(), newNodes, newEdges)
}

func (o *OrphanFinder) orphanNodesInt() []int {
	out := make([]int, len(o.orphanNodes))
	for i, n := range o.orphanNodes {
		out[i] = int(n)
	}
	return out
}

func (o *OrphanFinder) orphanEdgesInt() []int {
	out := make([]int, len(o.orphanEdges))
	for i, e := range o.orphanEdges {
		out[i] = int(e)
	}
	return out
}

// shiftIndex subtracts from index the count of orphans strictly less than
// it, since orphans is sorted ascending and every such orphan's removal
// shifts index down by one slot.
func shiftIndex(index int, orphans []int) int {
	offset := 0
	for _, o := range orphans {
		if o >= index {
			break
		}
		offset++
	}
	return index - offset
}
