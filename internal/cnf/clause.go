package cnf

import "strings"

// A Clause is a disjunction of literals. Once created by the parser a clause
// is never mutated, except that Garbage may flip from false to true when a
// subsuming clause is found. It never flips back.
type Clause struct {
	Garbage  bool
	Literals []Lit
}

func (c *Clause) Len() int {
	return len(c.Literals)
}

func (c *Clause) String() string {
	sb := strings.Builder{}
	for _, l := range c.Literals {
		sb.WriteString(l.String())
		sb.WriteByte(' ')
	}
	sb.WriteByte('0')
	return sb.String()
}
