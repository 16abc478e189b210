package ioformat

import (
	"bytes"
	"fmt"
	"io"

	"github.com/crillab/decdnnf-go/core"
)

// WriteC2D exports d using the c2d nnf text format: a header line `nnf
// n_nodes n_edges n_vars`, then one line per node in post-order — `A k i1
// .. ik` for a conjunction over already-written node indices, `O v k i1 ..
// ik` for a disjunction decided by the polarity of variable v, and `L lit`
// for a literal leaf. True is written as `A 0`, False as `O 0 0`.
//
// Every or-node in d must be convertible to decision form: exactly two
// children whose own edges carry opposite-polarity literals of some common
// variable. WriteC2D fails with ErrStructural on the first or-node that
// is not.
func WriteC2D(w io.Writer, d *core.DecisionDNNF) error {
	state := &c2dWriter{
		ddnnf:     d,
		posLitIdx: make([]int, d.NVars()),
		negLitIdx: make([]int, d.NVars()),
	}
	for i := range state.posLitIdx {
		state.posLitIdx[i] = -1
		state.negLitIdx[i] = -1
	}
	state.trueIdx = -1
	state.falseIdx = -1

	if _, err := state.writeFrom(d.Root(), nil); err != nil {
		return err
	}
	if state.err != nil {
		return state.err
	}

	_, err := fmt.Fprintf(w, "nnf %d %d %d\n", state.nextIndex, state.nEdges, d.NVars())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := io.Copy(w, &state.body); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

type c2dWriter struct {
	ddnnf *core.DecisionDNNF
	body  bytes.Buffer
	err   error

	nextIndex int
	nEdges    int
	trueIdx   int
	falseIdx  int
	posLitIdx []int
	negLitIdx []int
}

// writeFrom writes node index's subformula conjoined with propagations,
// returning the c2d index of the resulting (already-written) node.
func (w *c2dWriter) writeFrom(index core.NodeIndex, propagations []core.Literal) (int, error) {
	nd := w.ddnnf.Node(index)
	switch nd.Kind {
	case core.NodeAnd:
		children := make([]int, 0, len(nd.Children)+len(propagations))
		for _, ei := range nd.Children {
			edge := w.ddnnf.Edge(ei)
			idx, err := w.writeFrom(edge.Target, edge.Propagated)
			if err != nil {
				return 0, err
			}
			children = append(children, idx)
		}
		for _, l := range propagations {
			children = append(children, w.writeLiteral(l))
		}
		return w.writeAnd(children), nil
	case core.NodeOr:
		childIndices := make([]int, len(nd.Children))
		for i, ei := range nd.Children {
			edge := w.ddnnf.Edge(ei)
			idx, err := w.writeFrom(edge.Target, edge.Propagated)
			if err != nil {
				return 0, err
			}
			childIndices[i] = idx
		}
		decisionVar, err := decisionVariable(w.ddnnf, nd.Children)
		if err != nil {
			return 0, err
		}
		orIdx := w.writeOr(decisionVar, childIndices)
		if len(propagations) == 0 {
			return orIdx, nil
		}
		children := make([]int, 0, len(propagations)+1)
		for _, l := range propagations {
			children = append(children, w.writeLiteral(l))
		}
		children = append(children, orIdx)
		return w.writeAnd(children), nil
	case core.NodeTrue:
		switch len(propagations) {
		case 0:
			return w.writeTrue(), nil
		case 1:
			return w.writeLiteral(propagations[0]), nil
		default:
			children := make([]int, len(propagations))
			for i, l := range propagations {
				children[i] = w.writeLiteral(l)
			}
			return w.writeAnd(children), nil
		}
	case core.NodeFalse:
		return w.writeFalse(), nil
	}
	return 0, fmt.Errorf("%w: unknown node kind", ErrStructural)
}

func (w *c2dWriter) writeTrue() int {
	if w.trueIdx >= 0 {
		return w.trueIdx
	}
	w.trueIdx = w.nextIndex
	w.nextIndex++
	fmt.Fprintf(&w.body, "A 0\n")
	return w.trueIdx
}

func (w *c2dWriter) writeFalse() int {
	if w.falseIdx >= 0 {
		return w.falseIdx
	}
	w.falseIdx = w.nextIndex
	w.nextIndex++
	fmt.Fprintf(&w.body, "O 0 0\n")
	return w.falseIdx
}

func (w *c2dWriter) writeLiteral(l core.Literal) int {
	cache := w.negLitIdx
	if l.Polarity() {
		cache = w.posLitIdx
	}
	if idx := cache[l.VarIndex()]; idx >= 0 {
		return idx
	}
	idx := w.nextIndex
	w.nextIndex++
	cache[l.VarIndex()] = idx
	fmt.Fprintf(&w.body, "L %s\n", l.String())
	return idx
}

func (w *c2dWriter) writeAnd(children []int) int {
	idx := w.nextIndex
	w.nextIndex++
	w.nEdges += len(children)
	fmt.Fprintf(&w.body, "A %d", len(children))
	for _, c := range children {
		fmt.Fprintf(&w.body, " %d", c)
	}
	fmt.Fprintf(&w.body, "\n")
	return idx
}

func (w *c2dWriter) writeOr(decisionVar int, children []int) int {
	idx := w.nextIndex
	w.nextIndex++
	w.nEdges += len(children)
	fmt.Fprintf(&w.body, "O %d %d", decisionVar, len(children))
	for _, c := range children {
		fmt.Fprintf(&w.body, " %d", c)
	}
	fmt.Fprintf(&w.body, "\n")
	return idx
}

// decisionVariable finds the single variable that splits an or-node's
// children into decision form: exactly two children, whose own edges carry
// opposite-polarity literals of that variable.
func decisionVariable(d *core.DecisionDNNF, children []core.EdgeIndex) (int, error) {
	if len(children) != 2 {
		return 0, fmt.Errorf("%w: or-node with %d children is not convertible to decision form", ErrStructural, len(children))
	}
	first := d.Edge(children[0]).Propagated
	second := d.Edge(children[1]).Propagated
	for _, l1 := range first {
		for _, l2 := range second {
			if l1.VarIndex() == l2.VarIndex() && l1.Polarity() != l2.Polarity() {
				return l1.VarIndex() + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: or-node children share no conflicting variable", ErrStructural)
}
