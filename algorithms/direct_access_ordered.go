package algorithms

import (
	"fmt"
	"math/big"

	"github.com/crillab/decdnnf-go/core"
)

// OrderedDirectAccessEngine is the portable counterpart of
// DirectAccessEngine: given a caller-supplied total order over the
// variables (most significant first), it returns the k-th model under
// that order. Two structurally different but logically equivalent graphs
// sharing the same order produce the same model sequence, at the cost of
// O(n_vars) counter re-evaluations per query instead of a single descent.
type OrderedDirectAccessEngine struct {
	ddnnf        *core.DecisionDNNF
	order        []core.Literal
	globalNModel *big.Int
}

// NewOrderedDirectAccessEngine validates that order contains exactly one
// literal per variable in [0, n_vars) and builds the engine. It returns an
// error (not a panic) because a bad order is plausible, recoverable input
// from a CLI or a long-lived caller, unlike the per-query preconditions the
// other engines panic on.
func NewOrderedDirectAccessEngine(ddnnf *core.DecisionDNNF, order []core.Literal) (*OrderedDirectAccessEngine, error) {
	nVars := ddnnf.NVars()
	if len(order) != nVars {
		return nil, fmt.Errorf("algorithms: order must involve all %d variables exactly once, got %d entries", nVars, len(order))
	}
	seen := make([]bool, nVars)
	for _, l := range order {
		vi := l.VarIndex()
		if vi < 0 || vi >= nVars {
			return nil, fmt.Errorf("algorithms: order literal %v refers to an unknown variable", l)
		}
		if seen[vi] {
			return nil, fmt.Errorf("algorithms: order repeats variable %d", vi)
		}
		seen[vi] = true
	}

	global := NewModelCounter(ddnnf, false).GlobalCount()
	return &OrderedDirectAccessEngine{
		ddnnf:        ddnnf,
		order:        append([]core.Literal(nil), order...),
		globalNModel: new(big.Int).Set(global),
	}, nil
}

// DDNNF returns the underlying graph.
func (e *OrderedDirectAccessEngine) DDNNF() *core.DecisionDNNF {
	return e.ddnnf
}

// NModels returns the total model count, independent of k.
func (e *OrderedDirectAccessEngine) NModels() *big.Int {
	return e.globalNModel
}

// Model returns the k-th model (0-based) under the engine's order, or nil
// if k >= NModels(). Complexity: O(n_vars) counter evaluations, each
// O(nodes+edges).
func (e *OrderedDirectAccessEngine) Model(k *big.Int) []*core.Literal {
	if k.Sign() < 0 || k.Cmp(e.globalNModel) >= 0 {
		return nil
	}
	remaining := new(big.Int).Set(k)
	nVars := e.ddnnf.NVars()
	assigned := make([]core.Literal, 0, nVars)
	counter := NewModelCounter(e.ddnnf, false)

	for len(assigned) != nVars {
		assigned = append(assigned, e.order[len(assigned)])
		counter.SetAssumptions(core.NewAssumptions(nVars, assigned))
		current := counter.GlobalCount()
		if remaining.Cmp(current) >= 0 {
			assigned[len(assigned)-1] = assigned[len(assigned)-1].Flip()
			remaining.Sub(remaining, current)
		}
	}
	model := make([]*core.Literal, nVars)
	for i := range assigned {
		l := assigned[i]
		model[l.VarIndex()] = &l
	}
	return model
}
