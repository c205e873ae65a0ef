package subsume

import (
	"sort"

	"babysub/internal/cnf"
	"babysub/internal/console"
)

// Mode selects the simplification direction.
type Mode int

const (
	// Backward checks each clause as a potential subsumer of the longer
	// clauses already connected. This is the default.
	Backward Mode = iota
	// Forward checks each clause against the shorter clauses already
	// connected.
	Forward
)

func (m Mode) String() string {
	if m == Forward {
		return "forward"
	}
	return "backward"
}

// Engine removes subsumed clauses from a formula. It owns the formula's
// occurrence matrix and mark array for the duration of a pass; the mark array
// is all-zero on entry and exit of every exported operation.
type Engine struct {
	f     *cnf.Formula
	log   *console.Logger
	Stats Stats
}

func New(f *cnf.Formula, log *console.Logger) *Engine {
	return &Engine{f: f, log: log}
}

// Simplify runs one subsumption pass in the given direction and compacts the
// clause store. If the parser saw an empty clause the pass is skipped: the
// formula is unsatisfiable and a single empty clause is the minimal witness.
func (e *Engine) Simplify(mode Mode) {
	e.log.Verbose(1, "starting to simplify formula")
	switch {
	case e.f.HasEmpty:
		e.reduceToEmpty()
	case mode == Forward:
		e.forward()
	default:
		e.backward()
	}
	e.log.Verbose(1, "simplification complete")
	e.f.CollectGarbage()
}

// reduceToEmpty replaces the whole store with a single empty clause. Every
// other clause ever added counts as subsumed.
func (e *Engine) reduceToEmpty() {
	e.log.Verbose(1, "empty clause present, reducing formula")
	e.f.Clauses = []*cnf.Clause{{}}
	e.Stats.Subsumed += e.f.Added - 1
}

// forward sorts the store by ascending length so that every potential
// subsumer is connected before the clauses it might subsume are examined.
// Each surviving clause is connected on its least-occurring literal only:
// any future superset must contain that literal too.
func (e *Engine) forward() {
	e.log.Verbose(1, "starting forward subsumption")
	f := e.f
	sort.SliceStable(f.Clauses, func(i, j int) bool {
		return f.Clauses[i].Len() < f.Clauses[j].Len()
	})
	f.Matrix.Reset()

	for id, c := range f.Clauses {
		if e.forwardSubsumed(c) {
			c.Garbage = true
			e.Stats.Subsumed++
			continue
		}
		if lit, _ := f.LeastOccurring(c); lit != 0 {
			f.ConnectLit(lit, id)
		}
	}
}

// forwardSubsumed reports whether some already-connected clause subsumes c.
// It brackets c's literals in the mark array and scans the occurrence list
// of each of them; a candidate d subsumes c exactly when all of d's literals
// are marked.
func (e *Engine) forwardSubsumed(c *cnf.Clause) bool {
	f := e.f
	f.Marks.MarkClause(c)
	subsumed := false
outer:
	for _, l := range c.Literals {
		for _, id := range f.Matrix.Occurrences(l) {
			d := f.Clauses[id]
			e.Stats.Checked++
			if d.Garbage {
				continue
			}
			if e.allMarked(d) {
				subsumed = true
				break outer
			}
		}
	}
	f.Marks.UnmarkClause(c)
	return subsumed
}

func (e *Engine) allMarked(d *cnf.Clause) bool {
	for _, l := range d.Literals {
		if !e.f.Marks.Marked(l) {
			return false
		}
	}
	return true
}

// backward sorts the store by descending length so that the longer clauses a
// given clause might subsume are already connected when it is processed.
// Every clause is connected on all of its literals, because a later, shorter
// clause enumerates candidates through a single occurrence list.
func (e *Engine) backward() {
	e.log.Verbose(1, "starting backward subsumption")
	f := e.f
	sort.SliceStable(f.Clauses, func(i, j int) bool {
		return f.Clauses[i].Len() > f.Clauses[j].Len()
	})
	f.Matrix.Reset()

	for id, c := range f.Clauses {
		e.backwardSubsume(c)
		f.ConnectClause(id)
	}
}

// backwardSubsume marks garbage every already-connected clause that c
// subsumes. Candidates are enumerated through the occurrence list of c's
// least-occurring literal; every connected superset of c must appear there.
func (e *Engine) backwardSubsume(c *cnf.Clause) {
	f := e.f
	lit, occ := f.LeastOccurring(c)
	if lit == 0 || occ == 0 {
		return
	}
	f.Marks.MarkClause(c)
	for _, id := range f.Matrix.Occurrences(lit) {
		d := f.Clauses[id]
		e.Stats.Checked++
		if d.Garbage {
			continue
		}
		matched := 0
		for _, l := range d.Literals {
			if f.Marks.Marked(l) {
				matched++
				if matched == c.Len() {
					break
				}
			}
		}
		if matched == c.Len() {
			d.Garbage = true
			e.Stats.Subsumed++
		}
	}
	f.Marks.UnmarkClause(c)
}
