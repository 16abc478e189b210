package core

import "fmt"

// Literal is a variable index paired with a polarity bit, encoded as a
// single non-negative integer: 2*varIndex + (1 if negative else 0).
//
// Complexity: every operation is O(1).
type Literal uint

// NewLiteral builds a Literal from a variable index and a polarity
// (negated == true means the literal is the negation of the variable).
func NewLiteral(varIndex int, negated bool) Literal {
	l := Literal(varIndex) << 1
	if negated {
		l |= 1
	}
	return l
}

// LiteralFromDIMACS converts a signed DIMACS literal (1-based, nonzero) into
// a Literal. It panics if given zero, since zero is the DIMACS terminator,
// never a literal.
func LiteralFromDIMACS(v int) Literal {
	if v == 0 {
		panic("core: 0 is not a valid DIMACS literal")
	}
	if v < 0 {
		return NewLiteral(-v-1, true)
	}
	return NewLiteral(v-1, false)
}

// VarIndex returns the 0-based variable index of l.
func (l Literal) VarIndex() int {
	return int(l >> 1)
}

// Polarity reports whether l is positive (true) or negative (false).
func (l Literal) Polarity() bool {
	return l&1 == 0
}

// Flip returns the negation of l.
func (l Literal) Flip() Literal {
	return l ^ 1
}

// SetNegative returns l with its polarity forced to negative.
func (l Literal) SetNegative() Literal {
	return l | 1
}

// SetPositive returns l with its polarity forced to positive.
func (l Literal) SetPositive() Literal {
	return l &^ 1
}

// ToDIMACS converts l back to the signed DIMACS convention.
func (l Literal) ToDIMACS() int {
	v := l.VarIndex() + 1
	if !l.Polarity() {
		return -v
	}
	return v
}

// String renders l as a bare signed DIMACS integer, e.g. "3" or "-3", to
// match the d4/DIMACS convention.
func (l Literal) String() string {
	return fmt.Sprintf("%d", l.ToDIMACS())
}
