package algorithms_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/decdnnf-go/algorithms"
	"github.com/crillab/decdnnf-go/core"
)

func litOrder(dimacs ...int) []core.Literal {
	out := make([]core.Literal, len(dimacs))
	for i, v := range dimacs {
		out[i] = core.LiteralFromDIMACS(v)
	}
	return out
}

func TestOrderedDirectAccessDifferentOrdersDifferentSequences(t *testing.T) {
	d := tautologyGraph(2)
	orders := [][]int{{-1, -2}, {1, 2}, {-2, -1}, {2, 1}}
	seenSequences := map[string]bool{}
	for _, ord := range orders {
		e, err := algorithms.NewOrderedDirectAccessEngine(d, litOrder(ord...))
		require.NoError(t, err)
		n := e.NModels().Int64()
		var seq string
		for k := int64(0); k < n; k++ {
			m := e.Model(big.NewInt(k))
			for _, l := range m {
				seq += l.String() + ","
			}
			seq += "|"
		}
		assert.False(t, seenSequences[seq], "order %v produced a duplicate sequence", ord)
		seenSequences[seq] = true
	}
}

func TestOrderedDirectAccessRejectsBadOrders(t *testing.T) {
	d := tautologyGraph(2)

	_, err := algorithms.NewOrderedDirectAccessEngine(d, litOrder(1))
	assert.Error(t, err)

	_, err = algorithms.NewOrderedDirectAccessEngine(d, litOrder(1, 3))
	assert.Error(t, err)

	_, err = algorithms.NewOrderedDirectAccessEngine(d, litOrder(1, 1))
	assert.Error(t, err)
}

func TestOrderedDirectAccessOutOfRangeReturnsNil(t *testing.T) {
	d := tautologyGraph(2)
	e, err := algorithms.NewOrderedDirectAccessEngine(d, litOrder(-1, -2))
	require.NoError(t, err)
	assert.Nil(t, e.Model(big.NewInt(4)))
}

func TestOrderedDirectAccessMatchesGlobalCount(t *testing.T) {
	d := andOrProductGraph()
	e, err := algorithms.NewOrderedDirectAccessEngine(d, litOrder(-1, -2))
	require.NoError(t, err)
	assert.Equal(t, "4", e.NModels().String())
}
