package algorithms

import (
	"math/big"

	"github.com/crillab/decdnnf-go/core"
)

// DirectAccessEngine materializes the k-th model of a Decision-DNNF under
// the graph's own canonical order, in time proportional to the number of
// nodes it descends into (every child of an and-node, one child of an
// or-node) times the word size of the bignum index (not to global_count).
//
// Order definition: at each disjunction descended into, children are
// visited in their stored order; and-node children are visited in reverse
// when distributing the residual index across the Cartesian product of
// their counts; free-variable bits are consumed from the free-var list's
// tail first. This order is NOT portable across structurally different but
// logically equivalent graphs — see OrderedDirectAccessEngine for that.
type DirectAccessEngine struct {
	counter *ModelCounter
}

// NewDirectAccessEngine builds an engine over an already-configured
// ModelCounter (assumptions, if any, must already be set on it).
func NewDirectAccessEngine(counter *ModelCounter) *DirectAccessEngine {
	return &DirectAccessEngine{counter: counter}
}

// ModelCounter returns the counter this engine delegates counting to.
func (e *DirectAccessEngine) ModelCounter() *ModelCounter {
	return e.counter
}

// NModels returns the same count ModelCounter.GlobalCount would.
func (e *DirectAccessEngine) NModels() *big.Int {
	return e.counter.GlobalCount()
}

// Model returns the k-th model (0-based), or nil if k >= global count. Each
// slot is a *core.Literal; in partial-count mode, unset free-variable slots
// are nil.
func (e *DirectAccessEngine) Model(k *big.Int) []*core.Literal {
	model, _ := e.ModelWithGraph(k)
	return model
}

// ModelWithGraph is Model plus, per node, the index of the or-child
// selected while building this model (0 for non-disjunction nodes).
func (e *DirectAccessEngine) ModelWithGraph(k *big.Int) ([]*core.Literal, []int) {
	if k.Sign() < 0 || k.Cmp(e.counter.GlobalCount()) >= 0 {
		return nil, nil
	}
	ddnnf := e.counter.DDNNF()
	model := make([]*core.Literal, ddnnf.NVars())
	selected := make([]int, ddnnf.NNodes())

	if assumptions := e.counter.Assumptions(); assumptions != nil {
		for _, l := range assumptions.Literals() {
			lit := l
			model[l.VarIndex()] = &lit
		}
	}

	n := new(big.Int).Set(k)
	if !e.counter.PartialModels() {
		rootFree := ddnnf.FreeVars().RootFreeVars
		rootFree = unassumedLiterals(rootFree, e.counter.Assumptions())
		n = consumeFreeVarBits(model, rootFree, n)
	}

	e.buildFrom(model, selected, ddnnf.Root(), n)
	return model, selected
}

// buildFrom implements the recursive descent of specification 4.E.
func (e *DirectAccessEngine) buildFrom(model []*core.Literal, selected []int, node core.NodeIndex, n *big.Int) {
	nd := e.counter.DDNNF().Node(node)
	switch nd.Kind {
	case core.NodeTrue, core.NodeFalse:
		return
	case core.NodeAnd:
		for i := len(nd.Children) - 1; i >= 0; i-- {
			ei := nd.Children[i]
			edge := e.counter.DDNNF().Edge(ei)
			c := e.counter.countViaEdge(ei)
			q, r := new(big.Int), new(big.Int)
			q.QuoRem(n, c, r)
			writeLiterals(model, edge.Propagated)
			e.buildFrom(model, selected, edge.Target, r)
			n = q
		}
	case core.NodeOr:
		for i, ei := range nd.Children {
			edge := e.counter.DDNNF().Edge(ei)
			childCount := e.counter.countViaEdge(ei)
			var freeLits []core.Literal
			if !e.counter.PartialModels() {
				freeLits = unassumedLiterals(e.counter.DDNNF().FreeVars().OrFreeVars(node, i), e.counter.Assumptions())
			}
			total := new(big.Int).Lsh(childCount, uint(len(freeLits)))
			if n.Cmp(total) < 0 {
				residual := consumeFreeVarBits(model, freeLits, n)
				selected[node] = i
				writeLiterals(model, edge.Propagated)
				e.buildFrom(model, selected, edge.Target, residual)
				return
			}
			n = new(big.Int).Sub(n, total)
		}
	}
}

// consumeFreeVarBits consumes len(freeVars) low bits from n, writing each
// free variable's chosen literal into model; the list is consumed tail
// first, so the first variable in freeVars ends up keyed to the index's
// highest-order bits. It returns the remaining (shifted) index.
func consumeFreeVarBits(model []*core.Literal, freeVars []core.Literal, n *big.Int) *big.Int {
	remaining := new(big.Int).Set(n)
	for i := len(freeVars) - 1; i >= 0; i-- {
		bit := remaining.Bit(0)
		lit := freeVars[i]
		if bit == 1 {
			lit = lit.Flip()
		}
		model[lit.VarIndex()] = &lit
		remaining.Rsh(remaining, 1)
	}
	return remaining
}

func writeLiterals(model []*core.Literal, lits []core.Literal) {
	for _, l := range lits {
		lit := l
		model[l.VarIndex()] = &lit
	}
}

// unassumedLiterals filters out literals whose variable is already fixed
// by assumptions, since those free-variable slots carry no choice.
func unassumedLiterals(lits []core.Literal, a *core.Assumptions) []core.Literal {
	if a == nil {
		return lits
	}
	out := make([]core.Literal, 0, len(lits))
	for _, l := range lits {
		if a.PolarityOf(l.VarIndex()) == nil {
			out = append(out, l)
		}
	}
	return out
}
