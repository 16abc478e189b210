package algorithms_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crillab/decdnnf-go/algorithms"
	"github.com/crillab/decdnnf-go/core"
)

func enumerateAll(e *algorithms.ModelEnumerator) [][]int {
	var out [][]int
	for {
		m := e.ComputeNextModel()
		if m == nil {
			break
		}
		out = append(out, dimacsModel(m))
	}
	return out
}

func TestModelEnumeratorTautology2Vars(t *testing.T) {
	d := tautologyGraph(2)
	e := algorithms.NewModelEnumerator(d, false)
	assert.Equal(t, [][]int{{-1, -2}, {-1, 2}, {1, -2}, {1, 2}}, enumerateAll(e))
}

func TestModelEnumeratorTrivialSat(t *testing.T) {
	// a 1 0
	// t 2 0
	// 1 2 1 0
	nodes := []core.Node{
		{Kind: core.NodeAnd, Children: []core.EdgeIndex{0}},
		{Kind: core.NodeTrue},
	}
	edges := []core.Edge{{Target: 1, Propagated: []core.Literal{core.LiteralFromDIMACS(1)}}}
	d := core.NewDecisionDNNF(1, nodes, edges)
	e := algorithms.NewModelEnumerator(d, false)
	assert.Equal(t, [][]int{{1}}, enumerateAll(e))
}

func TestModelEnumeratorSymmetricOr(t *testing.T) {
	// o 1 0
	// t 2 0
	// 1 2 -1 0
	// 1 2 1 0
	nodes := []core.Node{
		{Kind: core.NodeOr, Children: []core.EdgeIndex{0, 1}},
		{Kind: core.NodeTrue},
	}
	edges := []core.Edge{
		{Target: 1, Propagated: []core.Literal{core.LiteralFromDIMACS(-1)}},
		{Target: 1, Propagated: []core.Literal{core.LiteralFromDIMACS(1)}},
	}
	d := core.NewDecisionDNNF(1, nodes, edges)
	e := algorithms.NewModelEnumerator(d, false)
	assert.Equal(t, [][]int{{-1}, {1}}, enumerateAll(e))
}

func TestModelEnumeratorAndOrProduct(t *testing.T) {
	d := andOrProductGraph()
	e := algorithms.NewModelEnumerator(d, false)
	assert.Equal(t, [][]int{{-1, -2}, {-1, 2}, {1, -2}, {1, 2}}, enumerateAll(e))
}

func TestModelEnumeratorPartialMatchesDirectAccessOrder(t *testing.T) {
	d := andOrProductGraph()
	e := algorithms.NewModelEnumerator(d, true)
	assert.Equal(t, [][]int{{-1, -2}, {-1, 2}, {1, -2}, {1, 2}}, enumerateAll(e))
}

func TestModelEnumeratorWithAssumptions(t *testing.T) {
	d := andOrProductGraph()
	e := algorithms.NewModelEnumerator(d, false)
	e.SetAssumptions(core.NewAssumptions(2, []core.Literal{core.LiteralFromDIMACS(1)}))
	assert.Equal(t, [][]int{{1, -2}, {1, 2}}, enumerateAll(e))
}

func TestModelEnumeratorReset(t *testing.T) {
	d := andOrProductGraph()
	e := algorithms.NewModelEnumerator(d, false)
	first := enumerateAll(e)
	e.Reset()
	second := enumerateAll(e)
	assert.Equal(t, first, second)
}

func TestModelEnumeratorJumpToMatchesEnumeratingFromK(t *testing.T) {
	d := andOrProductGraph()
	counter := algorithms.NewModelCounter(d, false)
	dae := algorithms.NewDirectAccessEngine(counter)
	e := algorithms.NewModelEnumerator(d, false)

	jumped := e.JumpTo(dae, big.NewInt(2))
	assert.Equal(t, []int{1, -2}, dimacsModel(jumped))

	assert.Equal(t, []int{1, 2}, dimacsModel(e.ComputeNextModel()))
	assert.Nil(t, e.ComputeNextModel())
}

func TestModelEnumeratorUnsatYieldsNothing(t *testing.T) {
	d := unsatGraph()
	e := algorithms.NewModelEnumerator(d, false)
	assert.Nil(t, e.ComputeNextModel())
}
