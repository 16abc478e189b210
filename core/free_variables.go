package core

// FreeVariables holds the result of the free-variable analysis: which
// variables are free at the formula's top level, and which are free along
// each individual child of each disjunction node.
//
// A variable is "free" along a branch when no assignment to it is forced
// by traversing that branch to a leaf, so each such variable doubles the
// number of full models reachable through that branch.
//
// Storage: OrFreeVars is flattened into one Literal slice plus, per node, a
// slice of (offset, length) pairs — one pair per child — to avoid one
// small allocation per disjunction child.
type FreeVariables struct {
	// RootFreeVars lists, as negative-polarity placeholder literals, every
	// variable absent from every edge reachable from the root.
	RootFreeVars []Literal

	// orFreeVars maps a disjunction node's index to one (offset, length)
	// pair per child, indexing into flatOrFreeVars.
	orFreeVars     map[NodeIndex][]offsetLen
	flatOrFreeVars []Literal
}

type offsetLen struct {
	offset int
	length int
}

// OrFreeVars returns the free-variable literals (negative polarity) for
// the child at childIndex of the disjunction at node.
func (f *FreeVariables) OrFreeVars(node NodeIndex, childIndex int) []Literal {
	pairs, ok := f.orFreeVars[node]
	if !ok || childIndex >= len(pairs) {
		return nil
	}
	ol := pairs[childIndex]
	return f.flatOrFreeVars[ol.offset : ol.offset+ol.length]
}

// NumOrChildren reports how many children the disjunction at node has
// recorded free-variable lists for.
func (f *FreeVariables) NumOrChildren(node NodeIndex) int {
	return len(f.orFreeVars[node])
}

// computeFreeVariables runs the single post-order DFS described in the
// specification: for every node, involved(node) is the union, over its
// outgoing edges, of (edge.Propagated ∪ involved(edge.Target)). At a
// disjunction node d, the free set of a child c reached via edge e is
// (involved(c) ∪ e.Propagated) XOR involved(d), i.e. the variables present
// in the node's combined support but absent from this particular branch.
func computeFreeVariables(d *DecisionDNNF) *FreeVariables {
	involved := make([]*InvolvedVars, d.NNodes())
	fv := &FreeVariables{orFreeVars: make(map[NodeIndex][]offsetLen)}

	var visit func(NodeIndex) InvolvedVars
	visit = func(idx NodeIndex) InvolvedVars {
		if involved[idx] != nil {
			return *involved[idx]
		}
		node := d.Node(idx)
		set := NewInvolvedVars(d.NVars())
		switch node.Kind {
		case NodeTrue, NodeFalse:
			// set stays empty; leaves involve no variables.
		case NodeAnd:
			for _, ei := range node.Children {
				edge := d.Edge(ei)
				childInvolved := visit(edge.Target)
				set.OrAssign(childInvolved)
				set.SetLiterals(edge.Propagated)
			}
		case NodeOr:
			pairs := make([]offsetLen, len(node.Children))
			for i, ei := range node.Children {
				edge := d.Edge(ei)
				childInvolved := visit(edge.Target)
				branch := childInvolved.Clone()
				branch.SetLiterals(edge.Propagated)
				set.OrAssign(branch)
				// placeholder pairs filled in a second pass below, once
				// the node's own combined `set` is final.
				_ = i
			}
			// Second pass: now that `set` (the Or node's own involved
			// vars) is final, compute each child's free vars as the XOR
			// against the combined set.
			for i, ei := range node.Children {
				edge := d.Edge(ei)
				childInvolved := visit(edge.Target)
				branch := childInvolved.Clone()
				branch.SetLiterals(edge.Propagated)
				freeLits := IterXorNegLiterals(branch, set)
				offset := len(fv.flatOrFreeVars)
				fv.flatOrFreeVars = append(fv.flatOrFreeVars, freeLits...)
				pairs[i] = offsetLen{offset: offset, length: len(freeLits)}
			}
			fv.orFreeVars[idx] = pairs
		}
		involved[idx] = &set
		return set
	}

	rootInvolved := visit(d.Root())
	fv.RootFreeVars = rootInvolved.IterMissingLiterals()
	return fv
}

// ApplyAssumptions returns a new FreeVariables with any literal whose
// variable is assumed removed from every list.
func (f *FreeVariables) ApplyAssumptions(a *Assumptions) *FreeVariables {
	if a == nil {
		return f
	}
	out := &FreeVariables{orFreeVars: make(map[NodeIndex][]offsetLen)}
	out.RootFreeVars = filterAssumed(f.RootFreeVars, a)
	for node, pairs := range f.orFreeVars {
		newPairs := make([]offsetLen, len(pairs))
		for i, ol := range pairs {
			lits := filterAssumed(f.flatOrFreeVars[ol.offset:ol.offset+ol.length], a)
			offset := len(out.flatOrFreeVars)
			out.flatOrFreeVars = append(out.flatOrFreeVars, lits...)
			newPairs[i] = offsetLen{offset: offset, length: len(lits)}
		}
		out.orFreeVars[node] = newPairs
	}
	return out
}

func filterAssumed(lits []Literal, a *Assumptions) []Literal {
	var out []Literal
	for _, l := range lits {
		if a.PolarityOf(l.VarIndex()) == nil {
			out = append(out, l)
		}
	}
	return out
}
