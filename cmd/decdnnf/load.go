package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/crillab/decdnnf-go/core"
	"github.com/crillab/decdnnf-go/ioformat"
)

// loadDDNNF reads the formula at -i, detecting its wire format from the
// file's leading byte: a d4 file always starts with one of "a", "o", "t",
// "f" followed by whitespace, while the binary codec starts with an 8-byte
// big-endian n_vars that is vanishingly unlikely to look like that.
func loadDDNNF() (*core.DecisionDNNF, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("-i is required")
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, 1)
	if _, err := f.Read(head); err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	var d *core.DecisionDNNF
	switch head[0] {
	case 'a', 'o', 't', 'f':
		var opts []ioformat.D4ReaderOption
		if doNotCheck {
			opts = append(opts, ioformat.WithDoNotCheck())
		}
		d, err = ioformat.ReadD4(f, opts...)
	default:
		d, err = ioformat.ReadBinary(f)
	}
	if err != nil {
		return nil, err
	}
	if nVarsFlag > d.NVars() {
		d.UpdateNVars(nVarsFlag)
	}
	logger.Debug("loaded formula", "nodes", d.NNodes(), "edges", d.NEdges(), "n_vars", d.NVars())
	return d, nil
}

// parseAssumptions turns the -a flag's accumulated strings (each itself a
// space-separated run of signed DIMACS literals) into an *core.Assumptions,
// or nil if none were given.
func parseAssumptions(nVars int) (*core.Assumptions, error) {
	if len(assumeLits) == 0 {
		return nil, nil
	}
	var lits []core.Literal
	for _, group := range assumeLits {
		for _, tok := range strings.Fields(group) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("invalid assumption literal %q: %w", tok, err)
			}
			lits = append(lits, core.LiteralFromDIMACS(v))
		}
	}
	return core.NewAssumptions(nVars, lits), nil
}

func modelToDIMACS(model []*core.Literal) []int {
	out := make([]int, 0, len(model))
	for _, l := range model {
		if l == nil {
			continue
		}
		out = append(out, l.ToDIMACS())
	}
	return out
}
