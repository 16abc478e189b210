package core

import "fmt"

// Assumptions is a fixed partial assignment that restricts the models a
// query engine considers. It stores both the literals in the order the
// caller supplied them and a dense mapping variable index -> polarity for
// O(1) lookup.
//
// Engines that must agree on "the same fixed literals" (ModelEnumerator and
// DirectAccessEngine, via jump_to) compare Assumptions by pointer identity,
// never by value, so callers that want two engines to share assumptions
// must share a single *Assumptions.
type Assumptions struct {
	literals []Literal
	mapping  []*bool
}

// NewAssumptions builds an Assumptions over nVars variables from the given
// literals. It panics if any literal's variable index is out of
// [0, nVars), or if the same variable appears twice — both are programmer
// errors per the specification's resolution of assumption-range handling.
func NewAssumptions(nVars int, literals []Literal) *Assumptions {
	a := &Assumptions{
		literals: append([]Literal(nil), literals...),
		mapping:  make([]*bool, nVars),
	}
	for _, l := range literals {
		vi := l.VarIndex()
		if vi < 0 || vi >= nVars {
			panic(fmt.Sprintf("core: no such literal: %v (the formula has %d variables)", l, nVars))
		}
		if a.mapping[vi] != nil {
			panic(fmt.Sprintf("%v: %d", ErrDuplicateVariable, vi))
		}
		pol := l.Polarity()
		a.mapping[vi] = &pol
	}
	return a
}

// Literals returns the assumed literals in the order they were supplied.
func (a *Assumptions) Literals() []Literal {
	if a == nil {
		return nil
	}
	return a.literals
}

// PolarityOf returns the assumed polarity of varIndex, or nil if the
// variable is unassumed.
func (a *Assumptions) PolarityOf(varIndex int) *bool {
	if a == nil || varIndex >= len(a.mapping) {
		return nil
	}
	return a.mapping[varIndex]
}

// Conflicts reports whether l contradicts a fixed assumption.
func (a *Assumptions) Conflicts(l Literal) bool {
	pol := a.PolarityOf(l.VarIndex())
	return pol != nil && *pol != l.Polarity()
}

// ConflictsAny reports whether any literal in ls contradicts a fixed
// assumption.
func (a *Assumptions) ConflictsAny(ls []Literal) bool {
	if a == nil {
		return false
	}
	for _, l := range ls {
		if a.Conflicts(l) {
			return true
		}
	}
	return false
}

// NVars returns the variable range this Assumptions was built against.
func (a *Assumptions) NVars() int {
	if a == nil {
		return 0
	}
	return len(a.mapping)
}
