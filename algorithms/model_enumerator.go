package algorithms

import (
	"math/big"

	"github.com/crillab/decdnnf-go/core"
)

// ModelEnumerator produces the models of a Decision-DNNF one at a time, in
// the graph's canonical order, by mutating a shared buffer and advancing a
// cursor instead of materializing a set. It supports jumping to an
// arbitrary start index (synchronized with a DirectAccessEngine sharing
// the same *core.Assumptions), resetting, and an "elide free variables"
// mode that emits one representative path per group of otherwise-identical
// models (with free slots left nil).
type ModelEnumerator struct {
	ddnnf         *core.DecisionDNNF
	assumptions   *core.Assumptions
	elideFreeVars bool

	// orChildIndex[node] is the index, within that disjunction's children,
	// currently selected.
	orChildIndex []int
	// orFreeVarAssignment[node][childIndex] holds the current polarity
	// assignment for that child's free variables.
	orFreeVarAssignment [][][]core.Literal
	rootFreeVarAssign   []core.Literal

	model         []*core.Literal
	firstComputed bool
	hasModel      bool
}

// NewModelEnumerator builds an enumerator over ddnnf. Buffers are sized at
// construction from the graph's free-variable cache, and allocated afresh
// by SetAssumptions and Reset.
func NewModelEnumerator(ddnnf *core.DecisionDNNF, elideFreeVars bool) *ModelEnumerator {
	e := &ModelEnumerator{
		ddnnf:         ddnnf,
		elideFreeVars: elideFreeVars,
	}
	e.initState()
	return e
}

func (e *ModelEnumerator) initState() {
	freeVars := e.ddnnf.FreeVars()
	n := e.ddnnf.NNodes()
	e.orChildIndex = make([]int, n)
	e.orFreeVarAssignment = make([][][]core.Literal, n)
	for i := 0; i < n; i++ {
		nd := e.ddnnf.Node(core.NodeIndex(i))
		if nd.Kind != core.NodeOr {
			continue
		}
		perChild := make([][]core.Literal, len(nd.Children))
		for c := range nd.Children {
			lits := freeVars.OrFreeVars(core.NodeIndex(i), c)
			perChild[c] = cloneAllNegative(lits)
		}
		e.orFreeVarAssignment[i] = perChild
	}
	e.rootFreeVarAssign = cloneAllNegative(freeVars.RootFreeVars)
	e.model = make([]*core.Literal, e.ddnnf.NVars())
	e.firstComputed = false
	e.hasModel = false
}

func cloneAllNegative(lits []core.Literal) []core.Literal {
	out := make([]core.Literal, len(lits))
	for i, l := range lits {
		out[i] = l.SetNegative()
	}
	return out
}

// SetAssumptions fixes a set of literals and resets all enumeration state.
func (e *ModelEnumerator) SetAssumptions(assumptions *core.Assumptions) {
	e.assumptions = assumptions
	e.reinitWithAssumptions()
}

func (e *ModelEnumerator) reinitWithAssumptions() {
	freeVars := e.ddnnf.FreeVars()
	if e.assumptions != nil {
		freeVars = freeVars.ApplyAssumptions(e.assumptions)
	}
	n := e.ddnnf.NNodes()
	e.orChildIndex = make([]int, n)
	e.orFreeVarAssignment = make([][][]core.Literal, n)
	for i := 0; i < n; i++ {
		nd := e.ddnnf.Node(core.NodeIndex(i))
		if nd.Kind != core.NodeOr {
			continue
		}
		perChild := make([][]core.Literal, len(nd.Children))
		for c := range nd.Children {
			lits := freeVars.OrFreeVars(core.NodeIndex(i), c)
			perChild[c] = cloneAllNegative(lits)
		}
		e.orFreeVarAssignment[i] = perChild
	}
	e.rootFreeVarAssign = cloneAllNegative(freeVars.RootFreeVars)
	e.model = make([]*core.Literal, e.ddnnf.NVars())
	if a := e.assumptions; a != nil {
		for _, l := range a.Literals() {
			lit := l
			e.model[l.VarIndex()] = &lit
		}
	}
	e.firstComputed = false
	e.hasModel = false
}

// Reset restores the enumerator to the state of a freshly constructed one
// (bit-for-bit identical enumeration thereafter), preserving assumptions.
func (e *ModelEnumerator) Reset() {
	e.reinitWithAssumptions()
}

// Assumptions returns the currently fixed assumptions, or nil.
func (e *ModelEnumerator) Assumptions() *core.Assumptions {
	return e.assumptions
}

// JumpTo forces the enumerator's state to "having just enumerated model
// modelID", using engine's DirectAccessEngine to materialize that model and
// its or-edge selections. It requires engine's ModelCounter to share the
// same *core.Assumptions object (pointer identity) and the same graph.
func (e *ModelEnumerator) JumpTo(engine *DirectAccessEngine, modelID *big.Int) []*core.Literal {
	if engine.ModelCounter().DDNNF() != e.ddnnf {
		panic("algorithms: JumpTo requires engines over the same graph")
	}
	if engine.ModelCounter().Assumptions() != e.assumptions {
		panic("algorithms: JumpTo requires engines sharing the same Assumptions")
	}
	model, selected := engine.ModelWithGraph(modelID)
	if model == nil {
		e.hasModel = false
		return nil
	}
	e.model = model
	copy(e.orChildIndex, selected)
	e.syncFreeVarAssignmentsFromModel()
	e.firstComputed = true
	e.hasModel = true
	return e.model
}

// syncFreeVarAssignmentsFromModel updates every free-variable assignment
// buffer to reflect the polarities currently written in e.model, so that a
// subsequent increment starts from the jumped-to model rather than from
// whatever default state initState left behind.
func (e *ModelEnumerator) syncFreeVarAssignmentsFromModel() {
	if e.elideFreeVars {
		return
	}
	for i, l := range e.rootFreeVarAssign {
		if v := e.model[l.VarIndex()]; v != nil {
			e.rootFreeVarAssign[i] = *v
		}
	}
	for node, perChild := range e.orFreeVarAssignment {
		if len(perChild) == 0 {
			continue
		}
		child := e.orChildIndex[node]
		if child >= len(perChild) {
			continue
		}
		for i, l := range perChild[child] {
			if v := e.model[l.VarIndex()]; v != nil {
				perChild[child][i] = *v
			}
		}
	}
}

// ComputeNextModel returns the next model in sequence, or nil once
// enumeration is exhausted.
func (e *ModelEnumerator) ComputeNextModel() []*core.Literal {
	if !e.firstComputed {
		e.firstComputed = true
		e.hasModel = e.firstPathFrom(e.ddnnf.Root())
		if e.hasModel {
			e.writePropagations(e.rootFreeVarAssign, e.elideFreeVars)
			return e.model
		}
		return nil
	}
	if !e.hasModel {
		return nil
	}
	if e.nextFreeVarInterpretation(e.rootFreeVarAssign) {
		e.writePropagations(e.rootFreeVarAssign, e.elideFreeVars)
		return e.model
	}
	e.writePropagations(e.rootFreeVarAssign, e.elideFreeVars)
	if e.nextPathFrom(e.ddnnf.Root()) {
		return e.model
	}
	e.hasModel = false
	return nil
}

// nextFreeVarInterpretation advances interp to its successor: a binary
// counter where the all-negative state is zero and the last entry is the
// least significant bit (it flips fastest), matching the canonical order
// "all-negative first, then lex by flipping least-significant-by-order
// first". Scanning from the last entry toward the first, every positive
// entry carries (resets to negative); the scan stops at the first negative
// entry, which flips to positive. It returns false, leaving every entry
// negative, once the scan finds no negative entry to stop at (the block
// was already at its maximum, all-positive, state).
func (e *ModelEnumerator) nextFreeVarInterpretation(interp []core.Literal) bool {
	if e.elideFreeVars {
		return false
	}
	for i := len(interp) - 1; i >= 0; i-- {
		if interp[i].Polarity() {
			interp[i] = interp[i].SetNegative()
			continue
		}
		interp[i] = interp[i].SetPositive()
		return true
	}
	return false
}

// nextPathFrom attempts to advance the subtree rooted at from to its
// successor path. It returns false when the subtree has no further
// successor (every path has been emitted).
func (e *ModelEnumerator) nextPathFrom(from core.NodeIndex) bool {
	nd := e.ddnnf.Node(from)
	switch nd.Kind {
	case core.NodeTrue, core.NodeFalse:
		return false
	case core.NodeAnd:
		for i := len(nd.Children) - 1; i >= 0; i-- {
			target := e.ddnnf.Edge(nd.Children[i]).Target
			if e.nextPathFrom(target) {
				return true
			}
			if !e.firstPathFrom(target) {
				return false
			}
		}
		return false
	case core.NodeOr:
		childIndex := e.orChildIndex[from]
		assignments := e.orFreeVarAssignment[from]
		if childIndex < len(assignments) {
			if e.nextFreeVarInterpretation(assignments[childIndex]) {
				e.writePropagations(assignments[childIndex], e.elideFreeVars)
				return true
			}
			e.writePropagations(assignments[childIndex], e.elideFreeVars)
		}
		edge := e.ddnnf.Edge(nd.Children[childIndex])
		if !e.assumptionsConflict(edge.Propagated) {
			e.writePropagations(edge.Propagated, false)
			if e.nextPathFrom(edge.Target) {
				return true
			}
		}
		for childIndex+1 < len(nd.Children) {
			childIndex++
			e.orChildIndex[from] = childIndex
			if e.updateOrEdge(from, childIndex) {
				return true
			}
		}
		return false
	}
	return false
}

// firstPathFrom (re)initializes the subtree rooted at from to its first
// path, writing propagated literals into the model as it goes. It returns
// false if no satisfiable path exists under from (the subtree is
// effectively False, or every branch conflicts with assumptions).
func (e *ModelEnumerator) firstPathFrom(from core.NodeIndex) bool {
	nd := e.ddnnf.Node(from)
	switch nd.Kind {
	case core.NodeTrue:
		return true
	case core.NodeFalse:
		return false
	case core.NodeAnd:
		for _, ei := range nd.Children {
			edge := e.ddnnf.Edge(ei)
			if e.assumptionsConflict(edge.Propagated) {
				return false
			}
			e.writePropagations(edge.Propagated, false)
			if !e.firstPathFrom(edge.Target) {
				return false
			}
		}
		return true
	case core.NodeOr:
		e.orChildIndex[from] = 0
		for childIndex := 0; childIndex < len(nd.Children); childIndex++ {
			e.orChildIndex[from] = childIndex
			if e.updateOrEdge(from, childIndex) {
				return true
			}
		}
		return false
	}
	return false
}

// updateOrEdge writes the free-variable assignment and propagated literals
// for the given child of an or-node, then recurses. Free-variable slots are
// elided (written as nil) only when the enumerator is in elide mode;
// propagated literals are always written.
func (e *ModelEnumerator) updateOrEdge(orNode core.NodeIndex, childIndex int) bool {
	assignments := e.orFreeVarAssignment[orNode]
	if childIndex < len(assignments) {
		e.writePropagations(assignments[childIndex], e.elideFreeVars)
	}
	edge := e.ddnnf.Edge(e.ddnnf.Node(orNode).Children[childIndex])
	if e.assumptionsConflict(edge.Propagated) {
		return false
	}
	e.writePropagations(edge.Propagated, false)
	return e.firstPathFrom(edge.Target)
}

func (e *ModelEnumerator) writePropagations(lits []core.Literal, writeNil bool) {
	for _, l := range lits {
		if writeNil {
			e.model[l.VarIndex()] = nil
			continue
		}
		lit := l
		e.model[l.VarIndex()] = &lit
	}
}

func (e *ModelEnumerator) assumptionsConflict(lits []core.Literal) bool {
	return e.assumptions.ConflictsAny(lits)
}
