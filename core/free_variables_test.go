package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crillab/decdnnf-go/core"
)

// andOrProductGraph builds the scenario-4 graph from the specification:
//
//	a 1 0
//	o 2 0
//	o 3 0
//	t 4 0
//	1 2 0
//	1 3 0
//	2 4 -1 0
//	2 4 1 0
//	3 4 -2 0
//	3 4 2 0
func andOrProductGraph() *core.DecisionDNNF {
	nodes := []core.Node{
		{Kind: core.NodeAnd, Children: []core.EdgeIndex{0, 1}},
		{Kind: core.NodeOr, Children: []core.EdgeIndex{2, 3}},
		{Kind: core.NodeOr, Children: []core.EdgeIndex{4, 5}},
		{Kind: core.NodeTrue},
	}
	edges := []core.Edge{
		{Target: 1, Propagated: nil},
		{Target: 2, Propagated: nil},
		{Target: 3, Propagated: []core.Literal{core.LiteralFromDIMACS(-1)}},
		{Target: 3, Propagated: []core.Literal{core.LiteralFromDIMACS(1)}},
		{Target: 3, Propagated: []core.Literal{core.LiteralFromDIMACS(-2)}},
		{Target: 3, Propagated: []core.Literal{core.LiteralFromDIMACS(2)}},
	}
	return core.NewDecisionDNNF(2, nodes, edges)
}

func TestFreeVariablesRootFreeVarsEmptyWhenFullyDetermined(t *testing.T) {
	d := andOrProductGraph()
	fv := d.FreeVars()
	assert.Empty(t, fv.RootFreeVars)
}

func TestFreeVariablesOrChildrenHaveNoFreeVarsWhenBothAssign(t *testing.T) {
	d := andOrProductGraph()
	fv := d.FreeVars()
	assert.Empty(t, fv.OrFreeVars(1, 0))
	assert.Empty(t, fv.OrFreeVars(1, 1))
	assert.Empty(t, fv.OrFreeVars(2, 0))
	assert.Empty(t, fv.OrFreeVars(2, 1))
}

func TestFreeVariablesTautologyRootFreeVars(t *testing.T) {
	nodes := []core.Node{{Kind: core.NodeTrue}}
	d := core.NewDecisionDNNF(2, nodes, nil)
	fv := d.FreeVars()
	var dimacs []int
	for _, l := range fv.RootFreeVars {
		dimacs = append(dimacs, l.ToDIMACS())
	}
	assert.ElementsMatch(t, []int{-1, -2}, dimacs)
}

func TestFreeVariablesClauseWithFreeVariable(t *testing.T) {
	// o 1 0
	// o 2 0
	// t 3 0
	// 2 3 -1 -2 0
	// 2 3 1 0
	// 1 2 0
	nodes := []core.Node{
		{Kind: core.NodeOr, Children: []core.EdgeIndex{0}},
		{Kind: core.NodeOr, Children: []core.EdgeIndex{1, 2}},
		{Kind: core.NodeTrue},
	}
	edges := []core.Edge{
		{Target: 1, Propagated: nil},
		{Target: 2, Propagated: []core.Literal{core.LiteralFromDIMACS(-1), core.LiteralFromDIMACS(-2)}},
		{Target: 2, Propagated: []core.Literal{core.LiteralFromDIMACS(1)}},
	}
	d := core.NewDecisionDNNF(2, nodes, edges)
	fv := d.FreeVars()
	// Node 1's second child only fixes var 0; var 1 is free along that
	// branch relative to the sibling, which also fixes var 1.
	free := fv.OrFreeVars(1, 1)
	assert.Len(t, free, 1)
	assert.Equal(t, -2, free[0].ToDIMACS())
	assert.Empty(t, fv.OrFreeVars(1, 0))
}
