package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crillab/decdnnf-go/core"
)

func TestInvolvedVarsSetAndIsSet(t *testing.T) {
	v := core.NewInvolvedVars(10)
	assert.False(t, v.Any())
	v.SetLiteral(core.LiteralFromDIMACS(3))
	assert.True(t, v.Any())
	assert.True(t, v.IsSet(core.LiteralFromDIMACS(3)))
	assert.True(t, v.IsSet(core.LiteralFromDIMACS(-3)))
	assert.False(t, v.IsSet(core.LiteralFromDIMACS(4)))
}

func TestInvolvedVarsIterMissingLiterals(t *testing.T) {
	v := core.NewInvolvedVars(4)
	v.SetLiteral(core.LiteralFromDIMACS(2))
	missing := v.IterMissingLiterals()
	var dimacs []int
	for _, l := range missing {
		dimacs = append(dimacs, l.ToDIMACS())
	}
	assert.ElementsMatch(t, []int{-1, -3, -4}, dimacs)
}

func TestInvolvedVarsBitwiseOps(t *testing.T) {
	a := core.NewInvolvedVars(4)
	b := core.NewInvolvedVars(4)
	a.SetLiteral(core.LiteralFromDIMACS(1))
	a.SetLiteral(core.LiteralFromDIMACS(2))
	b.SetLiteral(core.LiteralFromDIMACS(2))
	b.SetLiteral(core.LiteralFromDIMACS(3))

	and := a.Clone()
	and.AndAssign(b)
	assert.True(t, and.IsSet(core.LiteralFromDIMACS(2)))
	assert.False(t, and.IsSet(core.LiteralFromDIMACS(1)))

	or := a.Clone()
	or.OrAssign(b)
	assert.True(t, or.IsSet(core.LiteralFromDIMACS(1)))
	assert.True(t, or.IsSet(core.LiteralFromDIMACS(3)))

	xor := a.Clone()
	xor.XorAssign(b)
	assert.True(t, xor.IsSet(core.LiteralFromDIMACS(1)))
	assert.False(t, xor.IsSet(core.LiteralFromDIMACS(2)))
	assert.True(t, xor.IsSet(core.LiteralFromDIMACS(3)))
}

func TestInvolvedVarsAcrossWordBoundary(t *testing.T) {
	v := core.NewInvolvedVars(130)
	v.SetLiteral(core.LiteralFromDIMACS(65))
	v.SetLiteral(core.LiteralFromDIMACS(130))
	assert.True(t, v.IsSet(core.LiteralFromDIMACS(65)))
	assert.True(t, v.IsSet(core.LiteralFromDIMACS(130)))
	missing := v.IterMissingLiterals()
	assert.Len(t, missing, 128)
}

func TestIterXorNegLiterals(t *testing.T) {
	a := core.NewInvolvedVars(4)
	b := core.NewInvolvedVars(4)
	a.SetLiteral(core.LiteralFromDIMACS(1))
	b.SetLiteral(core.LiteralFromDIMACS(2))
	xor := core.IterXorNegLiterals(a, b)
	var dimacs []int
	for _, l := range xor {
		dimacs = append(dimacs, l.ToDIMACS())
	}
	assert.ElementsMatch(t, []int{-1, -2}, dimacs)
}
