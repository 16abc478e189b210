package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crillab/decdnnf-go/core"
)

func TestAssumptionsPolarityOf(t *testing.T) {
	a := core.NewAssumptions(3, []core.Literal{core.LiteralFromDIMACS(1), core.LiteralFromDIMACS(-3)})
	assert.NotNil(t, a.PolarityOf(0))
	assert.True(t, *a.PolarityOf(0))
	assert.NotNil(t, a.PolarityOf(2))
	assert.False(t, *a.PolarityOf(2))
	assert.Nil(t, a.PolarityOf(1))
}

func TestAssumptionsConflicts(t *testing.T) {
	a := core.NewAssumptions(2, []core.Literal{core.LiteralFromDIMACS(1)})
	assert.True(t, a.Conflicts(core.LiteralFromDIMACS(-1)))
	assert.False(t, a.Conflicts(core.LiteralFromDIMACS(1)))
	assert.False(t, a.Conflicts(core.LiteralFromDIMACS(2)))
}

func TestAssumptionsPanicsOnOutOfRangeVariable(t *testing.T) {
	assert.Panics(t, func() {
		core.NewAssumptions(2, []core.Literal{core.LiteralFromDIMACS(5)})
	})
}

func TestAssumptionsPanicsOnDuplicateVariable(t *testing.T) {
	assert.Panics(t, func() {
		core.NewAssumptions(2, []core.Literal{core.LiteralFromDIMACS(1), core.LiteralFromDIMACS(-1)})
	})
}

func TestNilAssumptionsNeverConflict(t *testing.T) {
	var a *core.Assumptions
	assert.False(t, a.ConflictsAny([]core.Literal{core.LiteralFromDIMACS(1)}))
	assert.Equal(t, 0, a.NVars())
}
