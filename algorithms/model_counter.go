package algorithms

import (
	"math/big"

	"github.com/crillab/decdnnf-go/core"
)

// ModelCounter computes, via memoized post-order recursion, either the
// number of full models (partial == false) or the number of root-to-leaf
// paths (partial == true, "path count") of a Decision-DNNF, optionally
// restricted by a set of fixed assumptions.
//
// Complexity: O(nodes + edges) per distinct call to GlobalCount/CountFrom
// after assumptions last changed; each node's count is memoized once.
type ModelCounter struct {
	ddnnf       *core.DecisionDNNF
	partial     bool
	assumptions *core.Assumptions

	counts []*big.Int
	global *big.Int
}

// NewModelCounter builds a counter over ddnnf. When partial is true, the
// counter reports path counts (one root-free-var multiplier and one
// or-child weight of 1 throughout) rather than full model counts.
func NewModelCounter(ddnnf *core.DecisionDNNF, partial bool) *ModelCounter {
	return &ModelCounter{ddnnf: ddnnf, partial: partial}
}

// SetAssumptions fixes a set of literals and invalidates the memo table, so
// subsequent counts reflect the new restriction.
func (c *ModelCounter) SetAssumptions(assumptions *core.Assumptions) {
	c.assumptions = assumptions
	c.counts = nil
	c.global = nil
}

// Assumptions returns the currently fixed assumptions, or nil.
func (c *ModelCounter) Assumptions() *core.Assumptions {
	return c.assumptions
}

// PartialModels reports whether this counter is in path-count mode.
func (c *ModelCounter) PartialModels() bool {
	return c.partial
}

// DDNNF returns the graph this counter was built over.
func (c *ModelCounter) DDNNF() *core.DecisionDNNF {
	return c.ddnnf
}

// GlobalCount returns the model (or path) count of the whole formula,
// computing and caching it on first call.
func (c *ModelCounter) GlobalCount() *big.Int {
	if c.global != nil {
		return c.global
	}
	root := c.CountFrom(c.ddnnf.Root())
	result := new(big.Int).Set(root)
	if !c.partial {
		unassumed := c.unassumedCount(c.ddnnf.FreeVars().RootFreeVars)
		result.Lsh(result, uint(unassumed))
	}
	c.global = result
	return c.global
}

// unassumedCount counts how many of the given literals' variables are not
// fixed by the current assumptions.
func (c *ModelCounter) unassumedCount(lits []core.Literal) int {
	if c.assumptions == nil {
		return len(lits)
	}
	n := 0
	for _, l := range lits {
		if c.assumptions.PolarityOf(l.VarIndex()) == nil {
			n++
		}
	}
	return n
}

// CountFrom returns the memoized model/path count rooted at node.
func (c *ModelCounter) CountFrom(node core.NodeIndex) *big.Int {
	if c.counts == nil {
		c.counts = make([]*big.Int, c.ddnnf.NNodes())
	}
	if c.counts[node] != nil {
		return c.counts[node]
	}
	n := c.ddnnf.Node(node)
	var result *big.Int
	switch n.Kind {
	case core.NodeTrue:
		result = big.NewInt(1)
	case core.NodeFalse:
		result = big.NewInt(0)
	case core.NodeAnd:
		result = big.NewInt(1)
		for _, ei := range n.Children {
			result.Mul(result, c.countViaEdge(ei))
		}
	case core.NodeOr:
		result = big.NewInt(0)
		for i, ei := range n.Children {
			via := c.countViaEdge(ei)
			weight := 0
			if !c.partial {
				weight = len(c.ddnnf.FreeVars().OrFreeVars(node, i))
				if c.assumptions != nil {
					weight = c.unassumedCount(c.ddnnf.FreeVars().OrFreeVars(node, i))
				}
			}
			term := new(big.Int).Lsh(via, uint(weight))
			result.Add(result, term)
		}
	}
	c.counts[node] = result
	return result
}

// countViaEdge returns 0 (without recursing) when the edge's propagated
// literals conflict with the current assumptions; otherwise it defers to
// CountFrom on the edge's target.
func (c *ModelCounter) countViaEdge(ei core.EdgeIndex) *big.Int {
	edge := c.ddnnf.Edge(ei)
	if c.assumptions != nil && c.assumptions.ConflictsAny(edge.Propagated) {
		return big.NewInt(0)
	}
	return c.CountFrom(edge.Target)
}
