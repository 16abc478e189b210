package core

import "errors"

// Sentinel errors of this package. No function of this package returns
// them: the first two only supply the text of panic messages.
var (
	// ErrNVarsShrink is the text UpdateNVars panics with when asked to
	// lower the variable count of a DecisionDNNF.
	ErrNVarsShrink = errors.New("core: n_vars can only grow")

	// ErrDuplicateVariable is the text NewAssumptions panics with when an
	// assumptions list mentions the same variable more than once.
	ErrDuplicateVariable = errors.New("core: duplicate variable")

	// ErrVariableOutOfRange describes a literal whose variable index is
	// not within [0, n_vars). Nothing in this package uses it.
	ErrVariableOutOfRange = errors.New("core: variable index out of range")
)
