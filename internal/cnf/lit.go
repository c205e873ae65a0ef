package cnf

import "strconv"

// A Lit is a DIMACS literal: a non-zero signed integer whose sign encodes
// polarity and whose absolute value is the variable id. 0 terminates clauses
// in the DIMACS stream and never appears inside a clause in memory.
type Lit int32

// Var returns the variable id of the literal.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Neg returns the literal with opposite polarity.
func (l Lit) Neg() Lit {
	return -l
}

// Slot maps a literal to its dense index: slot(+v) = 2v-1, slot(-v) = 2(v-1).
// A literal and its negation occupy adjacent slots, and all slots of a formula
// with V variables lie in [0, 2V). The occurrence matrix and the mark array
// are keyed on this mapping.
func (l Lit) Slot() int {
	if l > 0 {
		return 2*int(l) - 1
	}
	return 2 * (int(-l) - 1)
}

func (l Lit) String() string {
	return strconv.Itoa(int(l))
}
