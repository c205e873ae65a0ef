package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkClauseBracket(t *testing.T) {
	m := NewMarks(4)
	c := &Clause{Literals: []Lit{1, -2, 4}}

	assert.True(t, m.Clean())
	m.MarkClause(c)
	assert.True(t, m.Marked(1))
	assert.True(t, m.Marked(-2))
	assert.True(t, m.Marked(4))
	assert.False(t, m.Marked(-1))
	assert.False(t, m.Marked(2))
	assert.False(t, m.Marked(3))
	m.UnmarkClause(c)
	assert.True(t, m.Clean())
}

func TestMarksSizedToTwoV(t *testing.T) {
	m := NewMarks(3)
	assert.Len(t, m, 6)
}
