package cnf

import (
	"math/bits"
	"slices"
)

// nonces feeding the signature hash. The exact constants are part of the
// output contract: golden files record signatures computed with them.
var nonces = [16]uint64{
	71876167, 708592741, 1483128881, 907283241,
	442951013, 537146759, 1366999021, 1854614941,
	647800535, 53523743, 783815875, 1643643143,
	682599717, 291474505, 229233697, 1633529763,
}

// Signature returns a 64-bit digest of the current clause set, invariant
// under clause order and under literal order within a clause, and sensitive
// to clause membership and literal polarity.
//
// Literals are widened through their unsigned 32-bit bit pattern, not
// sign-extended: a negative literal contributes a value near 2^32. All
// arithmetic wraps at 64 bits.
func (f *Formula) Signature() uint64 {
	var hash uint64
	for _, c := range f.Clauses {
		d := make([]uint32, c.Len())
		for i, l := range c.Literals {
			d[i] = uint32(l)
		}
		slices.Sort(d)

		tmp := (uint64(len(d)) + 1) * nonces[0]
		i := 1
		for _, u := range d {
			tmp = bits.RotateLeft64(tmp, 4)
			tmp += uint64(u)
			tmp *= nonces[i]
			i = (i + 1) % len(nonces)
		}
		hash += tmp
	}
	return hash
}
