package ioformat

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/crillab/decdnnf-go/core"
)

const (
	andByte   byte = 0x00
	orByte    byte = 0x01
	trueByte  byte = 0x02
	falseByte byte = 0x03
)

// WriteBinary encodes d in this package's fixed-width binary codec: a
// length-prefixed sequence of big-endian uint64s and single kind bytes,
// round-tripped exactly by ReadBinary. It is not compatible with any other
// tool's binary format; it exists purely to avoid re-parsing d4 text on
// repeated runs over the same compiled formula.
func WriteBinary(w io.Writer, d *core.DecisionDNNF) error {
	bw := &binWriter{w: w}
	bw.writeUint(uint64(d.NVars()))
	bw.writeUint(uint64(d.NNodes()))
	for _, n := range d.Nodes() {
		switch n.Kind {
		case core.NodeAnd:
			bw.writeByte(andByte)
			bw.writeEdges(n.Children)
		case core.NodeOr:
			bw.writeByte(orByte)
			bw.writeEdges(n.Children)
		case core.NodeTrue:
			bw.writeByte(trueByte)
		case core.NodeFalse:
			bw.writeByte(falseByte)
		}
	}
	bw.writeUint(uint64(d.NEdges()))
	for _, e := range d.Edges() {
		bw.writeUint(uint64(e.Target))
		bw.writeUint(uint64(len(e.Propagated)))
		for _, l := range e.Propagated {
			bw.writeUint(uint64(l))
		}
	}
	return bw.err
}

type binWriter struct {
	w   io.Writer
	err error
}

func (bw *binWriter) writeByte(b byte) {
	if bw.err != nil {
		return
	}
	_, bw.err = bw.w.Write([]byte{b})
}

func (bw *binWriter) writeUint(n uint64) {
	if bw.err != nil {
		return
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	_, bw.err = bw.w.Write(buf[:])
}

func (bw *binWriter) writeEdges(edges []core.EdgeIndex) {
	bw.writeUint(uint64(len(edges)))
	for _, ei := range edges {
		bw.writeUint(uint64(ei))
	}
}

// ReadBinary decodes a formula written by WriteBinary.
func ReadBinary(r io.Reader) (*core.DecisionDNNF, error) {
	br := &binReader{r: r}
	nVars := int(br.readUint())
	nNodes := int(br.readUint())
	nodes := make([]core.Node, nNodes)
	for i := 0; i < nNodes && br.err == nil; i++ {
		kind := br.readByte()
		switch kind {
		case andByte:
			nodes[i] = core.Node{Kind: core.NodeAnd, Children: br.readEdges()}
		case orByte:
			nodes[i] = core.Node{Kind: core.NodeOr, Children: br.readEdges()}
		case trueByte:
			nodes[i] = core.Node{Kind: core.NodeTrue}
		case falseByte:
			nodes[i] = core.Node{Kind: core.NodeFalse}
		default:
			if br.err == nil {
				br.err = fmt.Errorf("%w: unknown node code %d", ErrParse, kind)
			}
		}
	}
	nEdges := int(br.readUint())
	var edges []core.Edge
	if nEdges > 0 {
		edges = make([]core.Edge, nEdges)
	}
	for i := 0; i < nEdges && br.err == nil; i++ {
		target := core.NodeIndex(br.readUint())
		nProp := int(br.readUint())
		var propagated []core.Literal
		if nProp > 0 {
			propagated = make([]core.Literal, nProp)
		}
		for j := 0; j < nProp; j++ {
			propagated[j] = core.Literal(br.readUint())
		}
		edges[i] = core.Edge{Target: target, Propagated: propagated}
	}
	if br.err != nil {
		return nil, br.err
	}
	return core.NewDecisionDNNF(nVars, nodes, edges), nil
}

type binReader struct {
	r   io.Reader
	err error
}

func (br *binReader) readByte() byte {
	if br.err != nil {
		return 0
	}
	var buf [1]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		br.err = fmt.Errorf("%w: %v", ErrIO, err)
		return 0
	}
	return buf[0]
}

func (br *binReader) readUint() uint64 {
	if br.err != nil {
		return 0
	}
	var buf [8]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		br.err = fmt.Errorf("%w: %v", ErrIO, err)
		return 0
	}
	return binary.BigEndian.Uint64(buf[:])
}

func (br *binReader) readEdges() []core.EdgeIndex {
	n := int(br.readUint())
	if n == 0 || br.err != nil {
		return nil
	}
	out := make([]core.EdgeIndex, n)
	for i := range out {
		out[i] = core.EdgeIndex(br.readUint())
	}
	return out
}
