package ioformat

import "errors"

// Sentinel errors returned by this package. Callers must branch on these
// with errors.Is, never by matching error message strings.
var (
	// ErrParse is returned when the input bytes do not follow the
	// expected token grammar of the format being read.
	ErrParse = errors.New("ioformat: parse error")

	// ErrStructural is returned when the tokens parse cleanly but the
	// graph they describe is not a valid Decision-DNNF: a node not
	// reachable from the root, a cycle, an edge from a
	// leaf node, or (on c2d export) an or-node that cannot be converted
	// to decision form.
	ErrStructural = errors.New("ioformat: structural error")

	// ErrIO wraps an underlying I/O failure (short read, write failure).
	ErrIO = errors.New("ioformat: io error")
)
