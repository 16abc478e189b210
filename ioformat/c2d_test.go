package ioformat_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/decdnnf-go/ioformat"
)

func TestWriteC2DTrivial(t *testing.T) {
	d, err := ioformat.ReadD4(strings.NewReader("t 1 0"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteC2D(&buf, d))

	lines := splitLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "nnf 1 0 0", lines[0])
	assert.Equal(t, "A 0", lines[1])
}

func TestWriteC2DDecisionOr(t *testing.T) {
	instance := "o 1 0\nt 2 0\n1 2 -1 0\n1 2 1 0\n"
	d, err := ioformat.ReadD4(strings.NewReader(instance))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteC2D(&buf, d))

	lines := splitLines(t, &buf)
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "nnf "))
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "O 1 2 "))
}

func TestWriteC2DRejectsNonDecisionOr(t *testing.T) {
	// or-node with three children: not convertible to a binary decision.
	instance := "o 1 0\nt 2 0\n1 2 -1 0\n1 2 1 0\n1 2 2 0\n"
	d, err := ioformat.ReadD4(strings.NewReader(instance))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = ioformat.WriteC2D(&buf, d)
	assert.Error(t, err)
}

func splitLines(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return lines
}
