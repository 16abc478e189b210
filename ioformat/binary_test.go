package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/decdnnf-go/ioformat"
)

func assertBinaryRoundTrip(t *testing.T, instance string) {
	t.Helper()
	init, err := ioformat.ReadD4(strings.NewReader(instance))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteBinary(&buf, init))

	got, err := ioformat.ReadBinary(&buf)
	require.NoError(t, err)

	assert.Equal(t, init.NVars(), got.NVars())
	assert.Equal(t, init.Nodes(), got.Nodes())
	assert.Equal(t, init.Edges(), got.Edges())
}

func TestBinaryRoundTripTrivial(t *testing.T) {
	assertBinaryRoundTrip(t, "t 1 0")
	assertBinaryRoundTrip(t, "f 1 0")
}

func TestBinaryRoundTripAnd(t *testing.T) {
	assertBinaryRoundTrip(t, "a 1 0\nt 2 0\n1 2 1 2 0")
}

func TestBinaryRoundTripOr(t *testing.T) {
	assertBinaryRoundTrip(t, "o 1 0\nt 2 0\n1 2 -1 0\n1 2 1 2 0\n")
}

func TestBinaryReadUnknownNodeCode(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, 0, 0, 0, 0, 0}) // n_vars = 0
	buf.Write([]byte{0, 0, 0, 0, 0, 0, 0, 1}) // n_nodes = 1
	buf.Write([]byte{0xff})                   // unknown node code
	_, err := ioformat.ReadBinary(&buf)
	assert.Error(t, err)
}
