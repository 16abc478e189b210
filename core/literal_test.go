package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crillab/decdnnf-go/core"
)

func TestLiteralDIMACSRoundTrip(t *testing.T) {
	for _, v := range []int{1, -1, 2, -2, 37, -37} {
		l := core.LiteralFromDIMACS(v)
		assert.Equal(t, v, l.ToDIMACS())
	}
}

func TestLiteralVarIndexAndPolarity(t *testing.T) {
	pos := core.LiteralFromDIMACS(3)
	neg := core.LiteralFromDIMACS(-3)
	assert.Equal(t, 2, pos.VarIndex())
	assert.Equal(t, 2, neg.VarIndex())
	assert.True(t, pos.Polarity())
	assert.False(t, neg.Polarity())
}

func TestLiteralFlip(t *testing.T) {
	pos := core.LiteralFromDIMACS(5)
	assert.Equal(t, -5, pos.Flip().ToDIMACS())
	assert.Equal(t, 5, pos.Flip().Flip().ToDIMACS())
}

func TestLiteralSetNegativeSetPositive(t *testing.T) {
	pos := core.LiteralFromDIMACS(4)
	assert.Equal(t, -4, pos.SetNegative().ToDIMACS())
	assert.Equal(t, 4, pos.SetNegative().SetPositive().ToDIMACS())
}

func TestLiteralFromDIMACSPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() {
		core.LiteralFromDIMACS(0)
	})
}
