package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureGoldenValues(t *testing.T) {
	cases := []struct {
		name    string
		clauses [][]Lit
		want    uint64
	}{
		{"empty set", nil, 0},
		{"single binary", [][]Lit{{1, 2}}, 13730316899549720340},
		{"unit pair", [][]Lit{{1}, {-1}}, 6302962180752638144},
		{"empty clause", [][]Lit{{}}, 71876167},
		{"ternary", [][]Lit{{1, 2, 3}}, 13935087807228490939},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := build(4, c.clauses...)
			assert.Equal(t, c.want, f.Signature())
		})
	}
}

func TestSignatureClauseOrderInvariance(t *testing.T) {
	a := build(3, []Lit{1, 2}, []Lit{-3}, []Lit{2, 3})
	b := build(3, []Lit{2, 3}, []Lit{1, 2}, []Lit{-3})
	assert.Equal(t, a.Signature(), b.Signature())
}

func TestSignatureLiteralOrderInvariance(t *testing.T) {
	a := build(3, []Lit{1, -2, 3})
	b := build(3, []Lit{3, 1, -2})
	assert.Equal(t, a.Signature(), b.Signature())
}

func TestSignaturePolaritySensitive(t *testing.T) {
	a := build(2, []Lit{1, 2})
	b := build(2, []Lit{1, -2})
	assert.NotEqual(t, a.Signature(), b.Signature())
}

func TestSignatureMembershipSensitive(t *testing.T) {
	a := build(3, []Lit{1, 2})
	b := build(3, []Lit{1, 2}, []Lit{3})
	assert.NotEqual(t, a.Signature(), b.Signature())
}
