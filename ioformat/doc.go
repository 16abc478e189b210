// Package ioformat reads and writes Decision-DNNF formulas using the three
// wire formats this project's compilers and downstream tools exchange: the
// line-oriented d4 text format (input only), a compact fixed-width binary
// codec (round-trip), and the c2d text format (output only, for
// interoperability with c2d-based tooling).
//
// None of these adapters carry algorithmic weight of their own; they exist
// to get bytes in and out of a *core.DecisionDNNF in the shape an external
// compiler or consumer expects.
package ioformat
