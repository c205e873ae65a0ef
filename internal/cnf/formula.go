package cnf

// A Formula is the clause database together with the scratch structures the
// subsumption engine works on. A clause's id is its current position in
// Clauses; ids stay valid within a simplification pass and are renumbered only
// by CollectGarbage.
type Formula struct {
	Variables int
	Parsed    int  // clauses seen by the parser, tautologies included
	Added     int  // clauses ever added to the store
	HasEmpty  bool // an empty clause was parsed

	Clauses []*Clause
	Matrix  Matrix
	Marks   Marks
}

func NewFormula() *Formula {
	return &Formula{}
}

// Init sizes the occurrence matrix and the mark array for the declared
// variable count. It is called once, after the header is parsed; neither
// structure is ever re-sized.
func (f *Formula) Init(vars int) {
	f.Variables = vars
	f.Matrix = NewMatrix(vars)
	f.Marks = NewMarks(vars)
}

// Add appends a normalized clause to the store.
func (f *Formula) Add(lits []Lit) {
	f.Added++
	f.Clauses = append(f.Clauses, &Clause{Literals: lits})
}

// ConnectLit records that the clause with the given id is indexed on l.
func (f *Formula) ConnectLit(l Lit, id int) {
	f.Matrix.Connect(l, id)
}

// ConnectClause indexes the clause with the given id on every one of its
// literals.
func (f *Formula) ConnectClause(id int) {
	for _, l := range f.Clauses[id].Literals {
		f.ConnectLit(l, id)
	}
}

// LeastOccurring returns the literal of c whose occurrence list is currently
// shortest, together with that length. Ties go to the literal encountered
// first. For the empty clause it returns (0, 0).
func (f *Formula) LeastOccurring(c *Clause) (Lit, int) {
	if c.Len() == 0 {
		return 0, 0
	}
	best := c.Literals[0]
	count := f.Matrix.Count(best)
	for _, l := range c.Literals[1:] {
		if n := f.Matrix.Count(l); n < count {
			best, count = l, n
		}
	}
	return best, count
}

// CollectGarbage drops garbage clauses, keeping the survivors in their current
// order. Clause ids are the post-compaction positions afterwards.
func (f *Formula) CollectGarbage() {
	live := f.Clauses[:0]
	for _, c := range f.Clauses {
		if !c.Garbage {
			live = append(live, c)
		}
	}
	f.Clauses = live
}
