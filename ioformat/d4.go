package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/decdnnf-go/core"
)

// D4ReaderOption customizes ReadD4.
type D4ReaderOption func(*d4Config)

type d4Config struct {
	doNotCheck bool
}

// WithDoNotCheck skips the post-parse reachability/acyclicity check,
// trusting the input to already be a well-formed DAG rooted at node 1. Use
// this only on input already validated by its producer, since downstream
// engines assume a root-reachable, cycle-free graph and will misbehave
// (infinite recursion, or silently ignoring nodes) otherwise.
func WithDoNotCheck() D4ReaderOption {
	return func(c *d4Config) {
		c.doNotCheck = true
	}
}

// ReadD4 parses the d4 compiler's output format: one node per line (`a`/`o`
// for And/Or, `t`/`f` for the True/False leaves, each followed by its
// 1-based index and a terminating 0), then one edge per line (`<src> <dst>
// <literals...> 0`, literals in signed DIMACS form). The first node must
// have index 1 and becomes the root.
func ReadD4(r io.Reader, opts ...D4ReaderOption) (*core.DecisionDNNF, error) {
	cfg := d4Config{}
	for _, o := range opts {
		o(&cfg)
	}

	rd := &d4Reader{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		var err error
		switch fields[0] {
		case "a", "o", "t", "f":
			err = rd.addNode(fields)
		default:
			if _, convErr := strconv.Atoi(fields[0]); convErr == nil {
				err = rd.addEdge(fields)
			} else {
				err = fmt.Errorf(`%w: unexpected first word %q`, ErrParse, fields[0])
			}
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	if !cfg.doNotCheck {
		if err := checkConnectivity(rd.nodes, rd.edges); err != nil {
			return nil, err
		}
	}
	return core.NewDecisionDNNF(rd.nVars, rd.nodes, rd.edges), nil
}

type d4Reader struct {
	nVars int
	nodes []core.Node
	edges []core.Edge
}

func (rd *d4Reader) addNode(fields []string) error {
	label := fields[0]
	if len(fields) < 2 {
		return fmt.Errorf("%w: missing node index", ErrParse)
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: while parsing the node index: %v", ErrParse, err)
	}
	if len(fields) < 3 || fields[2] != "0" {
		return fmt.Errorf("%w: expected 0 as third word", ErrParse)
	}
	if len(fields) > 3 {
		return fmt.Errorf("%w: unexpected content after 0", ErrParse)
	}
	expected := 1 + len(rd.nodes)
	if index != expected {
		return fmt.Errorf("%w: wrong node index; expected %d, got %d", ErrParse, expected, index)
	}
	var kind core.NodeKind
	switch label {
	case "a":
		kind = core.NodeAnd
	case "o":
		kind = core.NodeOr
	case "t":
		kind = core.NodeTrue
	case "f":
		kind = core.NodeFalse
	}
	rd.nodes = append(rd.nodes, core.Node{Kind: kind})
	return nil
}

func (rd *d4Reader) addEdge(fields []string) error {
	source, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: while parsing the source index: %v", ErrParse, err)
	}
	if len(fields) < 2 {
		return fmt.Errorf("%w: missing target index", ErrParse)
	}
	target, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: while parsing the target index: %v", ErrParse, err)
	}
	var propagated []core.Literal
	i := 2
	for {
		if i >= len(fields) {
			return fmt.Errorf("%w: missing final 0", ErrParse)
		}
		if fields[i] == "0" {
			i++
			break
		}
		v, convErr := strconv.Atoi(fields[i])
		if convErr != nil || v == 0 {
			return fmt.Errorf(`%w: expected a literal, got %q`, ErrParse, fields[i])
		}
		propagated = append(propagated, core.LiteralFromDIMACS(v))
		i++
	}
	if i != len(fields) {
		return fmt.Errorf("%w: unexpected content after 0", ErrParse)
	}

	propagated, err = sortDedupLiterals(propagated)
	if err != nil {
		return err
	}
	if source > len(rd.nodes) {
		return fmt.Errorf("%w: wrong source index; max is %d, got %d", ErrParse, len(rd.nodes), source)
	}
	if target > len(rd.nodes) {
		return fmt.Errorf("%w: wrong target index; max is %d, got %d", ErrParse, len(rd.nodes), target)
	}
	if source == target {
		return fmt.Errorf("%w: source and target index must be different", ErrParse)
	}
	for _, l := range propagated {
		if v := l.VarIndex() + 1; v > rd.nVars {
			rd.nVars = v
		}
	}
	edgeIdx := core.EdgeIndex(len(rd.edges))
	rd.edges = append(rd.edges, core.Edge{Target: core.NodeIndex(target - 1), Propagated: propagated})

	srcNode := &rd.nodes[source-1]
	if srcNode.Kind == core.NodeTrue || srcNode.Kind == core.NodeFalse {
		return fmt.Errorf("%w: cannot add an edge from a leaf node", ErrStructural)
	}
	srcNode.Children = append(srcNode.Children, edgeIdx)
	return nil
}

// sortDedupLiterals sorts propagated literals by variable index, drops
// exact duplicates, and rejects a same-variable opposite-polarity pair,
// which would propagate a contradiction.
func sortDedupLiterals(lits []core.Literal) ([]core.Literal, error) {
	for i := 1; i < len(lits); i++ {
		for j := i; j > 0 && lits[j-1].VarIndex() > lits[j].VarIndex(); j-- {
			lits[j-1], lits[j] = lits[j], lits[j-1]
		}
	}
	out := lits[:0]
	for i, l := range lits {
		if i > 0 {
			prev := out[len(out)-1]
			if prev.VarIndex() == l.VarIndex() {
				if prev.Polarity() != l.Polarity() {
					return nil, fmt.Errorf("%w: conflicting propagated literals for variable %d", ErrParse, l.VarIndex()+1)
				}
				continue
			}
		}
		out = append(out, l)
	}
	return out, nil
}

// checkConnectivity walks from node 0 (the declared root) and fails if a
// cycle is found or if any declared node is unreachable.
func checkConnectivity(nodes []core.Node, edges []core.Edge) error {
	seenOnce := make([]bool, len(nodes))
	seenOnPath := make([]bool, len(nodes))
	var visit func(int) error
	visit = func(i int) error {
		if seenOnPath[i] {
			return fmt.Errorf("%w: cycle detected", ErrStructural)
		}
		if seenOnce[i] {
			return nil
		}
		seenOnce[i] = true
		seenOnPath[i] = true
		for _, ei := range nodes[i].Children {
			if err := visit(int(edges[ei].Target)); err != nil {
				return err
			}
		}
		seenOnPath[i] = false
		return nil
	}
	if len(nodes) == 0 {
		return nil
	}
	if err := visit(0); err != nil {
		return err
	}
	for i, seen := range seenOnce {
		if !seen {
			return fmt.Errorf("%w: no path to the node with index %d", ErrStructural, i+1)
		}
	}
	return nil
}
