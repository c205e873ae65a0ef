package dimacs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"babysub/internal/cnf"
	"babysub/internal/console"
)

// ParseError is a fatal defect in the DIMACS input. It carries the offending
// line so the CLI can render a caret-style diagnostic.
type ParseError struct {
	Path     string
	Line     int
	Column   int
	LineText string
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: at line %d in '%s': %s", e.Line, e.Path, e.Msg)
}

type parser struct {
	s        *Scanner
	path     string
	f        *cnf.Formula
	log      *console.Logger
	buf      []cnf.Lit // literals of the clause being read
	norm     []cnf.Lit // normalization scratch
	declared int
}

// Parse consumes a DIMACS CNF stream and returns the clause database.
// Tautologies and duplicate literals are dropped during parsing; an empty
// clause sets the formula's HasEmpty flag. A mismatch between the declared
// and parsed clause counts is fatal.
func Parse(r io.Reader, path string, log *console.Logger) (*cnf.Formula, error) {
	p := &parser{s: NewScanner(r), path: path, f: cnf.NewFormula(), log: log}
	if err := p.header(); err != nil {
		return nil, err
	}
	if err := p.clauses(); err != nil {
		return nil, err
	}
	log.Verbose(1, "parsed %d clauses", p.f.Parsed)
	return p.f, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{
		Path:     p.path,
		Line:     p.s.Line(),
		Column:   p.s.Column(),
		LineText: p.s.LineText(),
		Msg:      fmt.Sprintf(format, args...),
	}
}

// header expects 'p cnf <variables> <clauses>' as the first non-comment line
// and sizes the formula's matrix and marks from it.
func (p *parser) header() error {
	if err := p.s.SkipSpace(); err != nil {
		return p.errorf("read failed: %s", err)
	}
	if p.s.AtEnd() {
		return p.errorf("CNF header not found")
	}
	if p.s.Peek() != 'p' {
		return p.errorf("expected 'p cnf' header")
	}
	p.s.ScanWord()

	fields := strings.Fields(p.s.RestOfLine())
	if len(fields) != 3 || fields[0] != "cnf" {
		return p.errorf("invalid header format")
	}
	vars, err := strconv.Atoi(fields[1])
	if err != nil || vars < 0 {
		return p.errorf("could not read number of variables")
	}
	declared, err := strconv.Atoi(fields[2])
	if err != nil || declared < 0 {
		return p.errorf("could not read number of clauses")
	}

	p.declared = declared
	p.f.Init(vars)
	p.log.Message("parsed 'p cnf %d %d' header", vars, declared)
	return nil
}

// clauses reads whitespace-separated literals until end of input. A zero
// terminates the clause in progress; clauses are free to span lines or share
// one.
func (p *parser) clauses() error {
	for {
		if err := p.s.SkipSpace(); err != nil {
			return p.errorf("read failed: %s", err)
		}
		if p.s.AtEnd() {
			break
		}
		n, err := p.s.ScanInt()
		if err != nil {
			return p.errorf("%s", err)
		}
		if n == 0 {
			p.endClause()
			continue
		}
		v := n
		if v < 0 {
			v = -v
		}
		if v > p.f.Variables {
			return p.errorf("literal %d exceeds maximum variable %d", n, p.f.Variables)
		}
		p.buf = append(p.buf, cnf.Lit(n))
	}
	if len(p.buf) > 0 {
		return p.errorf("terminating zero missing")
	}
	if p.f.Parsed != p.declared {
		return p.errorf("mismatch in declared and parsed clauses: expected %d, got %d",
			p.declared, p.f.Parsed)
	}
	return nil
}

// endClause normalizes the buffered literals and adds the clause to the
// store. Duplicate literals are dropped; a clause containing a literal and
// its negation is a tautology and is discarded entirely. The mark array is
// all-zero again when this returns.
func (p *parser) endClause() {
	p.f.Parsed++
	marks := p.f.Marks
	tautology := false
	p.norm = p.norm[:0]
	for _, l := range p.buf {
		if marks.Marked(l) {
			continue
		}
		if marks.Marked(l.Neg()) {
			tautology = true
			break
		}
		marks.Mark(l)
		p.norm = append(p.norm, l)
	}
	for _, l := range p.norm {
		marks.Unmark(l)
	}
	p.buf = p.buf[:0]

	if tautology {
		p.log.Verbose(2, "dropping tautological clause")
		return
	}
	lits := make([]cnf.Lit, len(p.norm))
	copy(lits, p.norm)
	if len(lits) == 0 {
		p.f.HasEmpty = true
	}
	p.f.Add(lits)
}
