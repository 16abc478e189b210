package algorithms

import "github.com/crillab/decdnnf-go/core"

// ModelFinder returns a single satisfying model of a Decision-DNNF,
// optionally restricted by assumptions, via depth-first graph walk.
type ModelFinder struct {
	ddnnf *core.DecisionDNNF
}

// NewModelFinder builds a finder over ddnnf.
func NewModelFinder(ddnnf *core.DecisionDNNF) *ModelFinder {
	return &ModelFinder{ddnnf: ddnnf}
}

// FindModel is FindModelUnderAssumptions with no assumptions.
func (f *ModelFinder) FindModel() []core.Literal {
	return f.FindModelUnderAssumptions(nil)
}

// FindModelUnderAssumptions returns a full model (every variable assigned)
// consistent with assumptions, or nil if none exists. It panics if any
// assumption literal's variable index is >= n_vars.
func (f *ModelFinder) FindModelUnderAssumptions(assumptions []core.Literal) []core.Literal {
	a := core.NewAssumptions(f.ddnnf.NVars(), assumptions)
	model := make([]*core.Literal, f.ddnnf.NVars())
	if !f.search(f.ddnnf.Root(), model, a) {
		return nil
	}
	return fillFreeVars(model, a)
}

// search implements the and-satisfy-all/or-first-success/true-false base
// cases; it mutates model in place. On failure, searchEdge undoes only the
// literals of its own edge: when a later child of an and-node fails, the
// literals written below its earlier, successful children stay in model.
func (f *ModelFinder) search(node core.NodeIndex, model []*core.Literal, a *core.Assumptions) bool {
	nd := f.ddnnf.Node(node)
	switch nd.Kind {
	case core.NodeTrue:
		return true
	case core.NodeFalse:
		return false
	case core.NodeAnd:
		for _, ei := range nd.Children {
			if !f.searchEdge(ei, model, a) {
				return false
			}
		}
		return true
	case core.NodeOr:
		for _, ei := range nd.Children {
			if f.searchEdge(ei, model, a) {
				return true
			}
		}
		return false
	}
	return false
}

func (f *ModelFinder) searchEdge(ei core.EdgeIndex, model []*core.Literal, a *core.Assumptions) bool {
	edge := f.ddnnf.Edge(ei)
	if a.ConflictsAny(edge.Propagated) {
		return false
	}
	writeLiterals(model, edge.Propagated)
	if !f.search(edge.Target, model, a) {
		for _, l := range edge.Propagated {
			model[l.VarIndex()] = nil
		}
		return false
	}
	return true
}

// fillFreeVars assigns every unassigned slot a polarity compatible with
// the assumptions: positive by default, flipped only if an assumption
// forbids the positive literal.
func fillFreeVars(model []*core.Literal, a *core.Assumptions) []core.Literal {
	out := make([]core.Literal, len(model))
	for i, l := range model {
		if l != nil {
			out[i] = *l
			continue
		}
		lit := core.NewLiteral(i, false)
		if pol := a.PolarityOf(i); pol != nil && !*pol {
			lit = lit.Flip()
		}
		out[i] = lit
	}
	return out
}
