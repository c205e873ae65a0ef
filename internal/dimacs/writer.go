package dimacs

import (
	"bufio"
	"io"
	"strconv"

	"babysub/internal/cnf"
	"babysub/internal/console"
)

// Write emits the DIMACS payload: the 'p cnf' header, one 'c hash-signature'
// comment when signing is requested, then the surviving clauses in store
// order, each terminated by ' 0'. A write or flush failure is fatal to the
// caller.
func Write(w io.Writer, f *cnf.Formula, sign bool, log *console.Logger) error {
	if sign {
		log.Verbose(1, "computing hash-signature")
	}
	bw := bufio.NewWriter(w)

	bw.WriteString("p cnf ")
	bw.WriteString(strconv.Itoa(f.Variables))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(len(f.Clauses)))
	bw.WriteByte('\n')

	if sign {
		bw.WriteString("c hash-signature: ")
		bw.WriteString(strconv.FormatUint(f.Signature(), 10))
		bw.WriteByte('\n')
	}

	for _, c := range f.Clauses {
		for _, l := range c.Literals {
			bw.WriteString(strconv.Itoa(int(l)))
			bw.WriteByte(' ')
		}
		bw.WriteString("0\n")
	}
	return bw.Flush()
}
