package dimacs

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babysub/internal/console"
)

func TestWritePlain(t *testing.T) {
	f := mustParse(t, "p cnf 3 2\n1 -2 0\n2 3 0\n")
	var out bytes.Buffer
	require.NoError(t, Write(&out, f, false, console.New(io.Discard, -1)))
	assert.Equal(t, "p cnf 3 2\n1 -2 0\n2 3 0\n", out.String())
}

func TestWriteSigned(t *testing.T) {
	f := mustParse(t, "p cnf 2 1\n1 2 0\n")
	var out bytes.Buffer
	require.NoError(t, Write(&out, f, true, console.New(io.Discard, -1)))
	assert.Equal(t, "p cnf 2 1\nc hash-signature: 13730316899549720340\n1 2 0\n", out.String())
}

func TestWriteEmptyFormula(t *testing.T) {
	f := mustParse(t, "p cnf 0 0\n")
	var out bytes.Buffer
	require.NoError(t, Write(&out, f, true, console.New(io.Discard, -1)))
	assert.Equal(t, "p cnf 0 0\nc hash-signature: 0\n", out.String())
}

func TestWriteFailurePropagates(t *testing.T) {
	f := mustParse(t, "p cnf 1 1\n1 0\n")
	err := Write(failingWriter{}, f, false, console.New(io.Discard, -1))
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}
